// Package identity owns the stable per-install device identifier.
package identity

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/meditary/pkg/store"
)

// NativeProvider yields a platform identifier when one is available.
type NativeProvider interface {
	NativeID() (string, bool)
}

// NativeFunc adapts a function to NativeProvider.
type NativeFunc func() (string, bool)

func (f NativeFunc) NativeID() (string, bool) { return f() }

// None is a NativeProvider that never has an identifier.
var None = NativeFunc(func() (string, bool) { return "", false })

// MachineID reads the host machine id, the closest desktop analogue of a
// vendor device identifier.
type MachineID struct {
	Paths []string
}

// DefaultMachineID looks in the usual systemd and dbus locations.
func DefaultMachineID() MachineID {
	return MachineID{Paths: []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}}
}

func (m MachineID) NativeID() (string, bool) {
	for _, p := range m.Paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, true
		}
	}
	return "", false
}

// Store resolves the device id once per process and persists it under
// store.KeyDeviceID.
type Store struct {
	KV     store.KeyValue
	Native NativeProvider
	NewID  func() string

	mu sync.Mutex
	id string
}

// DeviceID returns the persisted device id, creating it on first use: native
// id first, random UUID otherwise. The new id is persisted before returning.
func (s *Store) DeviceID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id != "" {
		return s.id, nil
	}

	stored, ok, err := s.KV.Get(ctx, store.KeyDeviceID)
	if err != nil {
		return "", fmt.Errorf("identity: read device id: %w", err)
	}
	if id := strings.TrimSpace(stored); ok && id != "" {
		s.id = id
		return id, nil
	}

	id := ""
	if s.Native != nil {
		if native, ok := s.Native.NativeID(); ok {
			id = strings.TrimSpace(native)
		}
	}
	if id == "" {
		id = s.newID()
	}
	if err := s.KV.Set(ctx, store.KeyDeviceID, id); err != nil {
		return "", fmt.Errorf("identity: persist device id: %w", err)
	}
	s.id = id
	return id, nil
}

// Forget drops the cached id so the next call re-reads storage. Used after a
// full data reset.
func (s *Store) Forget() {
	s.mu.Lock()
	s.id = ""
	s.mu.Unlock()
}

func (s *Store) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
