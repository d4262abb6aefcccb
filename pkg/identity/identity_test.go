package identity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/store"
)

func TestDeviceIDPrefersNative(t *testing.T) {
	kv := store.NewMemory()
	s := &Store{KV: kv, Native: NativeFunc(func() (string, bool) { return "vendor-123", true })}

	id, err := s.DeviceID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "vendor-123" {
		t.Fatalf("expected native id, got %q", id)
	}
	stored, ok, _ := kv.Get(context.Background(), store.KeyDeviceID)
	if !ok || stored != "vendor-123" {
		t.Fatalf("expected id to be persisted, got %q", stored)
	}
}

func TestDeviceIDFallsBackToUUID(t *testing.T) {
	s := &Store{KV: store.NewMemory(), Native: None}
	id, err := s.DeviceID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a uuid, got %q", id)
	}
}

func TestDeviceIDIsStable(t *testing.T) {
	kv := store.NewMemory()
	calls := 0
	gen := func() string {
		calls++
		return "generated"
	}
	first := &Store{KV: kv, NewID: gen}
	a, err := first.DeviceID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := first.DeviceID(context.Background())

	// A new process sees the persisted value and never generates again.
	second := &Store{KV: kv, NewID: gen, Native: NativeFunc(func() (string, bool) { return "other", true })}
	c, _ := second.DeviceID(context.Background())

	if a != "generated" || b != a || c != a {
		t.Fatalf("expected stable id, got %q %q %q", a, b, c)
	}
	if calls != 1 {
		t.Fatalf("expected one generation, got %d", calls)
	}
}

func TestDeviceIDStorageFailure(t *testing.T) {
	kv := store.NewMemory()
	kv.FailSet = func(key string) error {
		return errs.Storage("write", key, errors.New("disk full"))
	}
	s := &Store{KV: kv}
	if _, err := s.DeviceID(context.Background()); !errors.Is(err, errs.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestForgetRereadsStorage(t *testing.T) {
	kv := store.NewMemory()
	s := &Store{KV: kv, NewID: func() string { return "one" }}
	if _, err := s.DeviceID(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = kv.Erase(context.Background(), store.KeyDeviceID)
	s.Forget()
	s.NewID = func() string { return "two" }
	id, _ := s.DeviceID(context.Background())
	if id != "two" {
		t.Fatalf("expected rotated id after reset, got %q", id)
	}
}

func TestMachineID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine-id")
	if err := os.WriteFile(path, []byte("abc123\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	id, ok := MachineID{Paths: []string{filepath.Join(dir, "missing"), path}}.NativeID()
	if !ok || id != "abc123" {
		t.Fatalf("unexpected machine id %q %v", id, ok)
	}
	if _, ok := (MachineID{}).NativeID(); ok {
		t.Fatalf("expected no id without paths")
	}
}
