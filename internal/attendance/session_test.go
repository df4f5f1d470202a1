package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
)

func TestSessionCompleteCommitsView(t *testing.T) {
	s := NewSession()
	student := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")

	token := s.Begin("2026-08-28")
	v, err := s.Complete(token, []model.Student{student}, nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if v.Date != "2026-08-28" || len(v.Entries) != 1 {
		t.Fatalf("view = %+v", v)
	}

	got, err := s.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if got.Date != "2026-08-28" {
		t.Errorf("view date = %s", got.Date)
	}
}

// A slow response for an earlier date selection must not overwrite the view
// of a later selection, regardless of arrival order.
func TestSessionStaleLoadRejected(t *testing.T) {
	s := NewSession()
	monday := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	tuesday := makeStudent("Bob Diaz", "EE201", "Electrical Engineering", 2, "B")

	first := s.Begin("2026-08-24")
	second := s.Begin("2026-08-25")

	// Newer request's response arrives first and wins.
	if _, err := s.Complete(second, []model.Student{tuesday}, nil); err != nil {
		t.Fatalf("Complete(second): %v", err)
	}

	// Older response straggles in afterward and must be rejected.
	if _, err := s.Complete(first, []model.Student{monday}, nil); !errors.Is(err, ErrStaleLoad) {
		t.Fatalf("Complete(first) err = %v, want ErrStaleLoad", err)
	}

	v, err := s.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.Date != "2026-08-25" {
		t.Errorf("visible date = %s, want 2026-08-25", v.Date)
	}
	if v.Entries[0].Student.FullName != "Bob Diaz" {
		t.Errorf("visible roster = %s, want Bob Diaz", v.Entries[0].Student.FullName)
	}
}

func TestSessionBeforeFirstLoad(t *testing.T) {
	s := NewSession()
	if _, err := s.View(); !errors.Is(err, ErrNoView) {
		t.Errorf("View err = %v, want ErrNoView", err)
	}
	if err := s.SetStatus(uuid.New(), model.AttendancePresent, uuid.New(), time.Now()); !errors.Is(err, ErrNoView) {
		t.Errorf("SetStatus err = %v, want ErrNoView", err)
	}
	if _, _, err := s.Staged(); !errors.Is(err, ErrNoView) {
		t.Errorf("Staged err = %v, want ErrNoView", err)
	}
}

func TestSessionStagedGuard(t *testing.T) {
	s := NewSession()
	student := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")

	token := s.Begin("2026-08-28")
	if _, err := s.Complete(token, []model.Student{student}, nil); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// Nothing marked yet: the save must be skipped, not attempted.
	if _, _, err := s.Staged(); !errors.Is(err, ErrNothingStaged) {
		t.Fatalf("Staged err = %v, want ErrNothingStaged", err)
	}

	marker := uuid.New()
	if err := s.SetStatus(student.ID, model.AttendanceLate, marker, time.Now()); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	date, staged, err := s.Staged()
	if err != nil {
		t.Fatalf("Staged: %v", err)
	}
	if date != "2026-08-28" || len(staged) != 1 || staged[0].Status != model.AttendanceLate {
		t.Errorf("staged = %s %+v", date, staged)
	}
}

func TestSessionSnapshotIsolation(t *testing.T) {
	s := NewSession()
	student := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")

	token := s.Begin("2026-08-28")
	if _, err := s.Complete(token, []model.Student{student}, nil); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := s.SetStatus(student.ID, model.AttendancePresent, uuid.New(), time.Now()); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	v, _ := s.View()
	v.Entries[0].Record.Status = model.AttendanceAbsent

	sum, _ := s.Summary()
	if sum.Present != 1 || sum.Absent != 0 {
		t.Errorf("mutating a snapshot leaked into the session: %+v", sum)
	}
}
