package attendance

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
)

// Session coordinates one client's marking flow across date changes. The
// roster and record fetches for a date are independent; the caller merges
// only once both have arrived, then commits the result with the token
// handed out by Begin. A response belonging to a superseded date selection
// is rejected, so a slow fetch can never overwrite a newer view.
type Session struct {
	mu     sync.Mutex
	latest uint64
	cur    View
	loaded bool
}

// LoadToken identifies one Begin/Complete round trip.
type LoadToken struct {
	seq  uint64
	date string
}

// Date returns the calendar date this token was issued for.
func (t LoadToken) Date() string { return t.date }

// NewSession creates an empty marking session.
func NewSession() *Session {
	return &Session{}
}

// Begin registers a new date selection and returns its token. Any token
// issued earlier is superseded immediately.
func (s *Session) Begin(date string) LoadToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return LoadToken{seq: s.latest, date: date}
}

// Complete merges the fetched roster and records and commits the view, but
// only if token still belongs to the most recent Begin. A superseded token
// returns ErrStaleLoad and leaves the current view untouched.
func (s *Session) Complete(token LoadToken, roster []model.Student, records []model.AttendanceRecord) (View, error) {
	v := Load(token.date, roster, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token.seq != s.latest {
		return View{}, ErrStaleLoad
	}
	s.cur = v
	s.loaded = true
	return v, nil
}

// View returns a copy of the current merged view.
func (s *Session) View() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return View{}, ErrNoView
	}
	return s.snapshot(), nil
}

// SetStatus stages a status edit against the current view.
func (s *Session) SetStatus(studentID uuid.UUID, status model.AttendanceStatus, markedBy uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNoView
	}
	return s.cur.SetStatus(studentID, status, markedBy, now)
}

// Summary computes the status counts of the current view.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return Summary{}, ErrNoView
	}
	return Summarize(s.cur.Entries), nil
}

// Staged extracts the records to persist. ErrNothingStaged is a guard, not
// a failure: the caller must skip the replace-for-date write entirely.
func (s *Session) Staged() (string, []model.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return "", nil, ErrNoView
	}
	staged := s.cur.Staged()
	if len(staged) == 0 {
		return "", nil, ErrNothingStaged
	}
	return s.cur.Date, staged, nil
}

// snapshot deep-copies the current view so callers cannot mutate session
// state through shared record pointers.
func (s *Session) snapshot() View {
	out := View{Date: s.cur.Date, Entries: make([]Entry, len(s.cur.Entries))}
	for i, e := range s.cur.Entries {
		out.Entries[i] = Entry{Student: e.Student}
		if e.Record != nil {
			r := *e.Record
			out.Entries[i].Record = &r
		}
	}
	return out
}
