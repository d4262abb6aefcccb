package entry

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/timeutil"
)

// Input is what a caller supplies to create an entry.
type Input struct {
	Date            string
	Timestamp       int64
	Answers         []Answer
	Notes           *string
	DurationMinutes *int
}

// Patch carries the fields Update may replace. Nil fields are left alone;
// use an empty non-nil Answers slice to clear answers.
type Patch struct {
	Date            *string
	Timestamp       *int64
	Answers         []Answer
	Notes           *string
	DurationMinutes *int
}

// Store owns the entry collection, kept sorted by Timestamp descending.
type Store struct {
	items []Entry
	newID func() string
}

// NewStore builds a store from persisted items. A nil newID generates random
// UUIDs.
func NewStore(items []Entry, newID func() string) *Store {
	if newID == nil {
		newID = uuid.NewString
	}
	s := &Store{newID: newID}
	for _, e := range items {
		s.items = append(s.items, e.Clone())
	}
	s.sort()
	return s
}

// Clone returns an independent copy sharing the id generator.
func (s *Store) Clone() *Store {
	return NewStore(s.items, s.newID)
}

// List returns copies of every entry, newest first.
func (s *Store) List() []Entry {
	return cloneAll(s.items)
}

func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the entry with id.
func (s *Store) Get(id string) (Entry, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return Entry{}, false
}

// Add creates an entry stamped with deviceID. Several entries may share a date.
func (s *Store) Add(deviceID string, in Input) (Entry, error) {
	if _, err := timeutil.ParseDate(in.Date); err != nil {
		return Entry{}, errs.Validationf("entry: %v", err)
	}
	if in.DurationMinutes != nil && *in.DurationMinutes <= 0 {
		return Entry{}, errs.Validationf("entry: duration must be positive, got %d", *in.DurationMinutes)
	}
	e := Entry{
		ID:              s.newID(),
		Date:            in.Date,
		Timestamp:       in.Timestamp,
		DeviceID:        deviceID,
		Answers:         append([]Answer{}, in.Answers...),
		Notes:           normalizeNotes(in.Notes),
		DurationMinutes: in.DurationMinutes,
	}
	e = e.Clone()
	s.items = append(s.items, e)
	s.sort()
	return e.Clone(), nil
}

// Update merges p into the entry with id. ID and DeviceID never change.
func (s *Store) Update(id string, p Patch) (Entry, error) {
	i := s.index(id)
	if i < 0 {
		return Entry{}, errs.NotFoundf("entry %q", id)
	}
	e := s.items[i].Clone()
	if p.Date != nil {
		if _, err := timeutil.ParseDate(*p.Date); err != nil {
			return Entry{}, errs.Validationf("entry: %v", err)
		}
		e.Date = *p.Date
	}
	if p.Timestamp != nil {
		e.Timestamp = *p.Timestamp
	}
	if p.Answers != nil {
		e.Answers = append([]Answer{}, p.Answers...)
	}
	if p.Notes != nil {
		e.Notes = normalizeNotes(p.Notes)
	}
	if p.DurationMinutes != nil {
		switch d := *p.DurationMinutes; {
		case d < 0:
			return Entry{}, errs.Validationf("entry: duration must be positive, got %d", d)
		case d == 0:
			e.DurationMinutes = nil
		default:
			e.DurationMinutes = &d
		}
	}
	s.items[i] = e
	if p.Timestamp != nil {
		s.sort()
	}
	return e.Clone(), nil
}

// Delete removes the entry with id, leaving the rest in place.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return errs.NotFoundf("entry %q", id)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// ByDate returns the first entry, in store order, dated date. Use AllByDate
// when a day may hold several entries.
func (s *Store) ByDate(date string) (Entry, bool) {
	for _, e := range s.items {
		if e.Date == date {
			return e.Clone(), true
		}
	}
	return Entry{}, false
}

// AllByDate returns every entry dated date, newest first.
func (s *Store) AllByDate(date string) []Entry {
	var out []Entry
	for _, e := range s.items {
		if e.Date == date {
			out = append(out, e.Clone())
		}
	}
	return out
}

// ByDateRange returns entries dated within [start, end] inclusive, newest
// first. Entries with malformed dates are skipped.
func (s *Store) ByDateRange(start, end timeutil.Date) []Entry {
	var out []Entry
	for _, e := range s.items {
		if d, ok := e.Day(); ok && d.Between(start, end) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// ForMonth returns entries whose local calendar date falls in year/month.
func (s *Store) ForMonth(year int, month time.Month) []Entry {
	return InMonth(s.items, year, month)
}

// InMonth filters entries to those dated in year/month.
func InMonth(entries []Entry, year int, month time.Month) []Entry {
	var out []Entry
	for _, e := range entries {
		if d, ok := e.Day(); ok && d.InMonth(year, month) {
			out = append(out, e.Clone())
		}
	}
	return out
}

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) sort() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Timestamp > s.items[j].Timestamp
	})
}

func cloneAll(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func normalizeNotes(n *string) *string {
	if n == nil || strings.TrimSpace(*n) == "" {
		return nil
	}
	v := *n
	return &v
}
