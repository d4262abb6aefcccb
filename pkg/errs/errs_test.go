package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestStorageErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("app: save entries: %w", Storage("write", "entries", io.ErrUnexpectedEOF))
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StorageError")
	}
	if se.Key != "entries" || se.Op != "write" {
		t.Fatalf("unexpected storage error fields: %+v", se)
	}
}

func TestStorageNil(t *testing.T) {
	if Storage("read", "k", nil) != nil {
		t.Fatalf("expected nil passthrough")
	}
}

func TestStorageDoesNotDoubleWrap(t *testing.T) {
	inner := Storage("read", "a", io.EOF)
	if got := Storage("write", "b", inner); got != inner {
		t.Fatalf("expected inner storage error to be returned as-is")
	}
}

func TestValidationAndNotFound(t *testing.T) {
	if err := Validationf("text %q", "x"); !errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected classification for %v", err)
	}
	if err := NotFoundf("question %q", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected classification for %v", err)
	}
}
