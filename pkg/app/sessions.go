package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/store"
	"tableflip.dev/meditary/pkg/timeutil"
)

// Sessions returns every timer session, newest first.
func (s *Service) Sessions() []session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions.List()
}

// SessionsForMonth returns sessions dated in year/month.
func (s *Service) SessionsForMonth(year int, month time.Month) []session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions.ForMonth(year, month)
}

// AddSession records a completed timer run. Zero Date and Timestamp default
// to now.
func (s *Service) AddSession(ctx context.Context, in session.Input) (session.Session, error) {
	now := s.today()
	if in.Date == "" {
		in.Date = timeutil.DateOf(now).String()
	}
	if in.Timestamp == 0 {
		in.Timestamp = entry.Millis(now)
	}

	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	if err := s.writable(store.KeySessions); err != nil {
		return session.Session{}, err
	}

	s.mu.RLock()
	next := s.sessions.Clone()
	deviceID := s.deviceID
	s.mu.RUnlock()

	added, err := next.Add(deviceID, in)
	if err != nil {
		return session.Session{}, err
	}
	if err := s.commit(ctx, store.KeySessions, next.List(), func() { s.sessions = next }); err != nil {
		return session.Session{}, err
	}
	s.log.Debug("session added", zap.String("id", added.ID), zap.Int("minutes", added.DurationMinutes))
	return added, nil
}

// markSessionJournaled sets HasEntry on a session. The flag is bookkeeping
// only, so failures are logged rather than returned.
func (s *Service) markSessionJournaled(ctx context.Context, id string) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	if err := s.writable(store.KeySessions); err != nil {
		s.log.Warn("mark session journaled", zap.String("id", id), zap.Error(err))
		return
	}

	s.mu.RLock()
	next := s.sessions.Clone()
	s.mu.RUnlock()

	if _, err := next.MarkHasEntry(id); err != nil {
		s.log.Warn("mark session journaled", zap.String("id", id), zap.Error(err))
		return
	}
	if err := s.commit(ctx, store.KeySessions, next.List(), func() { s.sessions = next }); err != nil {
		s.log.Warn("mark session journaled", zap.String("id", id), zap.Error(err))
	}
}
