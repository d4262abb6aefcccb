package store

import (
	"context"
	"sort"
	"sync"

	"tableflip.dev/meditary/pkg/errs"
)

// Memory is an in-process KeyValue used by tests and dry runs. Fail hooks let
// tests inject storage failures per key.
type Memory struct {
	mu       sync.Mutex
	data     map[string]string
	watchers []chan Event

	// FailGet and FailSet, when set, are consulted before every operation.
	FailGet func(key string) error
	FailSet func(key string) error
}

var _ KeyValue = (*Memory)(nil)

// NewMemory returns an empty in-memory KeyValue.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		if err := m.FailGet(key); err != nil {
			return "", false, errs.Storage("get", key, err)
		}
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		if err := m.FailSet(key); err != nil {
			return errs.Storage("set", key, err)
		}
	}
	m.data[key] = value
	m.notify(key)
	return nil
}

func (m *Memory) Erase(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.notify(key)
	return nil
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Watch reports every Set and Erase until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify(key string) {
	for _, w := range m.watchers {
		select {
		case w <- Event{Key: key}:
		default:
		}
	}
}
