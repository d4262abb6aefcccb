// Package session defines completed timer runs and the store that owns them.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/timeutil"
)

// Session is a completed timer run with no journal answers.
type Session struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Timestamp       int64  `json:"timestamp"`
	DeviceID        string `json:"deviceId"`
	DurationMinutes int    `json:"durationMinutes"`
	HasEntry        bool   `json:"hasEntry"`
}

// Day parses the session date. Malformed dates report false.
func (s Session) Day() (timeutil.Date, bool) {
	d, err := timeutil.ParseDate(s.Date)
	return d, err == nil
}

// Input is what a caller supplies when a timer run completes.
type Input struct {
	Date            string
	Timestamp       int64
	DurationMinutes int
}

// Store owns the session collection, kept sorted by Timestamp descending.
// Sessions are never edited or deleted through it, apart from the HasEntry
// bookkeeping flag.
type Store struct {
	items []Session
	newID func() string
}

func NewStore(items []Session, newID func() string) *Store {
	if newID == nil {
		newID = uuid.NewString
	}
	s := &Store{items: append([]Session(nil), items...), newID: newID}
	s.sort()
	return s
}

func (s *Store) Clone() *Store {
	return NewStore(s.items, s.newID)
}

func (s *Store) List() []Session {
	return append([]Session(nil), s.items...)
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) Get(id string) (Session, bool) {
	for _, v := range s.items {
		if v.ID == id {
			return v, true
		}
	}
	return Session{}, false
}

// Add records a completed run stamped with deviceID.
func (s *Store) Add(deviceID string, in Input) (Session, error) {
	if _, err := timeutil.ParseDate(in.Date); err != nil {
		return Session{}, errs.Validationf("session: %v", err)
	}
	if in.DurationMinutes <= 0 {
		return Session{}, errs.Validationf("session: duration must be positive, got %d", in.DurationMinutes)
	}
	v := Session{
		ID:              s.newID(),
		Date:            in.Date,
		Timestamp:       in.Timestamp,
		DeviceID:        deviceID,
		DurationMinutes: in.DurationMinutes,
	}
	s.items = append(s.items, v)
	s.sort()
	return v, nil
}

// MarkHasEntry flags the session as having a journal entry written for it.
func (s *Store) MarkHasEntry(id string) (Session, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].HasEntry = true
			return s.items[i], nil
		}
	}
	return Session{}, errs.NotFoundf("session %q", id)
}

// ForMonth returns sessions whose local calendar date falls in year/month.
func (s *Store) ForMonth(year int, month time.Month) []Session {
	var out []Session
	for _, v := range s.items {
		if d, ok := v.Day(); ok && d.InMonth(year, month) {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store) sort() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Timestamp > s.items[j].Timestamp
	})
}
