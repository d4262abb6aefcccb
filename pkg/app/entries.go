package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/store"
	"tableflip.dev/meditary/pkg/timeutil"
)

// EntryInput is what the journal workflow submits. Zero Date and Timestamp
// default to the current local day and instant. SessionID, when set, marks
// that timer session as journaled.
type EntryInput struct {
	Date            string
	Timestamp       int64
	Answers         []entry.Answer
	Notes           *string
	DurationMinutes *int
	SessionID       string
}

// Entries returns every entry, newest first.
func (s *Service) Entries() []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.List()
}

// Entry returns the entry with id.
func (s *Service) Entry(id string) (entry.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Get(id)
}

// EntryByDate returns the first entry found for date. A day may hold several
// entries; use EntriesByDate to get them all.
func (s *Service) EntryByDate(date string) (entry.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.ByDate(date)
}

// EntriesByDate returns every entry dated date, newest first.
func (s *Service) EntriesByDate(date string) []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.AllByDate(date)
}

// EntriesInRange returns entries dated within [start, end].
func (s *Service) EntriesInRange(start, end timeutil.Date) []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.ByDateRange(start, end)
}

// EntriesForMonth returns entries dated in year/month.
func (s *Service) EntriesForMonth(year int, month time.Month) []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.ForMonth(year, month)
}

func (s *Service) validateAnswers(answers []entry.Answer) error {
	s.mu.RLock()
	reg := s.questions.Clone()
	s.mu.RUnlock()
	if err := entry.ValidateAnswers(answers, reg.Get); err != nil {
		return fmt.Errorf("entry: %w", err)
	}
	return nil
}

// AddEntry validates answers against the question registry, stamps the
// device id and persists the new entry.
func (s *Service) AddEntry(ctx context.Context, in EntryInput) (entry.Entry, error) {
	if err := s.validateAnswers(in.Answers); err != nil {
		return entry.Entry{}, err
	}
	now := s.today()
	if in.Date == "" {
		in.Date = timeutil.DateOf(now).String()
	}
	if in.Timestamp == 0 {
		in.Timestamp = entry.Millis(now)
	}

	s.entriesMu.Lock()
	defer s.entriesMu.Unlock()
	if err := s.writable(store.KeyEntries); err != nil {
		return entry.Entry{}, err
	}

	s.mu.RLock()
	next := s.entries.Clone()
	deviceID := s.deviceID
	s.mu.RUnlock()

	added, err := next.Add(deviceID, entry.Input{
		Date:            in.Date,
		Timestamp:       in.Timestamp,
		Answers:         in.Answers,
		Notes:           in.Notes,
		DurationMinutes: in.DurationMinutes,
	})
	if err != nil {
		return entry.Entry{}, err
	}
	if err := s.commit(ctx, store.KeyEntries, next.List(), func() { s.entries = next }); err != nil {
		return entry.Entry{}, err
	}
	s.log.Debug("entry added", zap.String("id", added.ID), zap.String("date", added.Date))

	if in.SessionID != "" {
		s.markSessionJournaled(ctx, in.SessionID)
	}
	return added, nil
}

// UpdateEntry merges p into the entry with id.
func (s *Service) UpdateEntry(ctx context.Context, id string, p entry.Patch) (entry.Entry, error) {
	if p.Answers != nil {
		if err := s.validateAnswers(p.Answers); err != nil {
			return entry.Entry{}, err
		}
	}

	s.entriesMu.Lock()
	defer s.entriesMu.Unlock()
	if err := s.writable(store.KeyEntries); err != nil {
		return entry.Entry{}, err
	}

	s.mu.RLock()
	next := s.entries.Clone()
	s.mu.RUnlock()

	updated, err := next.Update(id, p)
	if err != nil {
		return entry.Entry{}, err
	}
	if err := s.commit(ctx, store.KeyEntries, next.List(), func() { s.entries = next }); err != nil {
		return entry.Entry{}, err
	}
	s.log.Debug("entry updated", zap.String("id", id))
	return updated, nil
}

// DeleteEntry removes the entry with id.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	s.entriesMu.Lock()
	defer s.entriesMu.Unlock()
	if err := s.writable(store.KeyEntries); err != nil {
		return err
	}

	s.mu.RLock()
	next := s.entries.Clone()
	s.mu.RUnlock()

	if err := next.Delete(id); err != nil {
		return err
	}
	if err := s.commit(ctx, store.KeyEntries, next.List(), func() { s.entries = next }); err != nil {
		return err
	}
	s.log.Debug("entry deleted", zap.String("id", id))
	return nil
}
