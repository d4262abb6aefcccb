package store

import (
	"context"
	"encoding/json"
	"fmt"

	"tableflip.dev/meditary/pkg/errs"
)

// Keys under which each collection is persisted. One logical record per key.
const (
	KeyEntries   = "entries"
	KeySessions  = "sessions"
	KeyQuestions = "questions"
	KeySettings  = "settings"
	KeyDeviceID  = "deviceId"
)

// AllKeys lists every key the application owns.
func AllKeys() []string {
	return []string{KeyEntries, KeySessions, KeyQuestions, KeySettings, KeyDeviceID}
}

// KeyValue is the persistence gateway contract. Set overwrites a key
// atomically; there is no compare-and-swap, so callers serialise
// read-modify-write sequences themselves.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Erase(ctx context.Context, key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// LoadJSON decodes the value stored at key into v. It reports false when the
// key is absent, leaving v untouched.
func LoadJSON(ctx context.Context, kv KeyValue, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errs.Storage("decode", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and overwrites key with it.
func SaveJSON(ctx context.Context, kv KeyValue, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errs.Storage("encode", key, fmt.Errorf("marshal: %w", err))
	}
	return kv.Set(ctx, key, string(data))
}
