// Package app is the application-state object the UI and CLI talk to. It
// loads every collection in a fixed order, serialises mutations per
// collection, persists each change before exposing it, and derives
// statistics on demand.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/identity"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/settings"
	"tableflip.dev/meditary/pkg/store"
)

// ErrNotLoaded is returned by mutations attempted before Load.
var ErrNotLoaded = errors.New("app: service not loaded")

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source used for defaults and statistics.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs sets the unique id generator for new records.
func WithIDs(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithNativeID sets the platform identity provider.
func WithNativeID(p identity.NativeProvider) Option {
	return func(s *Service) {
		s.native = p
	}
}

// Service owns the in-memory state of every collection. Reads return
// snapshots; each collection has a single mutation path guarded by its own
// lock so read-modify-write sequences never interleave.
type Service struct {
	kv     store.KeyValue
	log    *zap.Logger
	now    func() time.Time
	newID  func() string
	native identity.NativeProvider
	ident  *identity.Store

	questionsMu sync.Mutex
	entriesMu   sync.Mutex
	sessionsMu  sync.Mutex
	settingsMu  sync.Mutex

	mu       sync.RWMutex
	loaded   bool
	loading  bool
	deviceID string
	// loadErrs records collections that could not be read; writing them
	// would overwrite data we never saw.
	loadErrs  map[string]error
	questions *question.Registry
	entries   *entry.Store
	sessions  *session.Store
	settings  settings.Settings
}

// New creates a Service over kv. Call Load before using it.
func New(kv store.KeyValue, opts ...Option) *Service {
	s := &Service{
		kv:     kv,
		log:    zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
		native: identity.DefaultMachineID(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ident = &identity.Store{KV: kv, Native: s.native, NewID: s.newID}
	s.questions = question.DefaultRegistry(s.newID)
	s.entries = entry.NewStore(nil, s.newID)
	s.sessions = session.NewStore(nil, s.newID)
	s.settings = settings.Default()
	return s
}

// Load reads state in the order identity, questions, entries, sessions,
// settings. Only an identity failure is returned; any other collection that
// cannot be read falls back to its default and is logged.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	deviceID, err := s.ident.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("app: load identity: %w", err)
	}

	loadErrs := make(map[string]error)

	questions := question.DefaultRegistry(s.newID)
	var storedQuestions []question.Question
	switch ok, err := store.LoadJSON(ctx, s.kv, store.KeyQuestions, &storedQuestions); {
	case err != nil:
		loadErrs[store.KeyQuestions] = err
		s.log.Warn("questions unreadable, using defaults", zap.Error(err))
	case ok:
		questions = question.NewRegistry(storedQuestions, s.newID)
	default:
		if err := store.SaveJSON(ctx, s.kv, store.KeyQuestions, questions.List()); err != nil {
			s.log.Warn("seed default questions", zap.Error(err))
		}
	}

	var storedEntries []entry.Entry
	if _, err := store.LoadJSON(ctx, s.kv, store.KeyEntries, &storedEntries); err != nil {
		loadErrs[store.KeyEntries] = err
		storedEntries = nil
		s.log.Warn("entries unreadable, starting empty", zap.Error(err))
	}

	var storedSessions []session.Session
	if _, err := store.LoadJSON(ctx, s.kv, store.KeySessions, &storedSessions); err != nil {
		loadErrs[store.KeySessions] = err
		storedSessions = nil
		s.log.Warn("sessions unreadable, starting empty", zap.Error(err))
	}

	prefs := settings.Default()
	if _, err := store.LoadJSON(ctx, s.kv, store.KeySettings, &prefs); err != nil {
		loadErrs[store.KeySettings] = err
		prefs = settings.Default()
		s.log.Warn("settings unreadable, using defaults", zap.Error(err))
	}

	s.mu.Lock()
	s.deviceID = deviceID
	s.questions = questions
	s.entries = entry.NewStore(storedEntries, s.newID)
	s.sessions = session.NewStore(storedSessions, s.newID)
	s.settings = prefs
	s.loadErrs = loadErrs
	s.loaded = true
	s.mu.Unlock()

	s.log.Debug("state loaded",
		zap.String("deviceId", deviceID),
		zap.Int("questions", questions.Len()),
		zap.Int("entries", len(storedEntries)),
		zap.Int("sessions", len(storedSessions)),
	)
	return nil
}

// Reload re-reads every collection from storage. It waits for in-flight
// mutations so a reload never races a commit.
func (s *Service) Reload(ctx context.Context) error {
	unlock := s.lockAll()
	defer unlock()
	return s.Load(ctx)
}

// lockAll takes every collection lock in the fixed order used by mutations.
func (s *Service) lockAll() func() {
	s.questionsMu.Lock()
	s.entriesMu.Lock()
	s.sessionsMu.Lock()
	s.settingsMu.Lock()
	return func() {
		s.settingsMu.Unlock()
		s.sessionsMu.Unlock()
		s.entriesMu.Unlock()
		s.questionsMu.Unlock()
	}
}

// Reset erases every stored key, forgets the cached device identity and
// reloads defaults. The identity is re-resolved, so a host with a native
// machine id keeps it. It is irreversible.
func (s *Service) Reset(ctx context.Context) error {
	unlock := s.lockAll()
	defer unlock()

	for _, key := range store.AllKeys() {
		if err := s.kv.Erase(ctx, key); err != nil {
			return fmt.Errorf("app: reset: %w", err)
		}
	}
	s.ident.Forget()
	s.log.Info("all data erased")
	return s.Load(ctx)
}

// Watch forwards storage change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.kv.Watch(ctx)
}

// DeviceID is the identity stamped on new records.
func (s *Service) DeviceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceID
}

// IsLoading reports whether Load is in progress.
func (s *Service) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LoadErrors reports collections that could not be read by the last Load.
func (s *Service) LoadErrors() map[string]error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]error, len(s.loadErrs))
	for k, v := range s.loadErrs {
		out[k] = v
	}
	return out
}

// writable reports whether key may be overwritten. Callers hold the
// collection lock.
func (s *Service) writable(key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	if err := s.loadErrs[key]; err != nil {
		return fmt.Errorf("app: %s could not be read and is read-only; export the journal, then reset to start over: %w", key, err)
	}
	return nil
}

// commit persists value under key and only then applies the in-memory swap.
func (s *Service) commit(ctx context.Context, key string, value any, apply func()) error {
	if err := store.SaveJSON(ctx, s.kv, key, value); err != nil {
		return fmt.Errorf("app: save %s: %w", key, err)
	}
	s.mu.Lock()
	apply()
	s.mu.Unlock()
	return nil
}

func (s *Service) today() time.Time {
	return s.now().In(time.Local)
}
