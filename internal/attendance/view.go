// Package attendance implements the marking-session core: merging a roster
// with a day's attendance records, filtering the merged view, staging status
// edits in memory, and extracting the staged set for persistence.
package attendance

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
)

// Common marking-session errors.
var (
	ErrStaleLoad      = errors.New("load superseded by a newer request")
	ErrNoView         = errors.New("no completed view in session")
	ErrUnknownStudent = errors.New("student not in roster")
	ErrInvalidStatus  = errors.New("invalid attendance status")
	ErrNothingStaged  = errors.New("no staged attendance records")
)

// Entry pairs a roster student with their attendance record for the selected
// date. Record is nil when the student is unmarked.
type Entry struct {
	Student model.Student           `json:"student"`
	Record  *model.AttendanceRecord `json:"record,omitempty"`
}

// View is the merged roster-with-status view for one calendar date.
type View struct {
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
}

// Load merges a roster with the attendance records fetched for date.
// The roster must already be filtered to active students by the caller.
// Every roster student appears exactly once; a record whose student is not
// in the roster (deleted or deactivated since marking) is dropped silently.
// Records for a different date are ignored; dates compare by string equality.
func Load(date string, roster []model.Student, records []model.AttendanceRecord) View {
	byStudent := make(map[uuid.UUID]model.AttendanceRecord, len(records))
	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		byStudent[rec.StudentID] = rec
	}

	entries := make([]Entry, 0, len(roster))
	for _, s := range roster {
		e := Entry{Student: s}
		if rec, ok := byStudent[s.ID]; ok {
			r := rec
			e.Record = &r
		}
		entries = append(entries, e)
	}

	return View{Date: date, Entries: entries}
}

// FilterOptions are the AND-combined predicates for Filter. Zero values mean
// "no constraint". Query matches case-insensitively as a substring over the
// student's name, code, and course (OR across those three).
type FilterOptions struct {
	Query   string
	Course  string
	Section string
	Year    int
}

// Filter returns the entries matching opts. It is pure: the view is never
// mutated and repeated calls with equal inputs yield equal outputs.
func Filter(v View, opts FilterOptions) []Entry {
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	filtered := make([]Entry, 0, len(v.Entries))
	for _, e := range v.Entries {
		s := e.Student
		if query != "" &&
			!strings.Contains(strings.ToLower(s.FullName), query) &&
			!strings.Contains(strings.ToLower(s.StudentCode), query) &&
			!strings.Contains(strings.ToLower(s.Course), query) {
			continue
		}
		if opts.Course != "" && s.Course != opts.Course {
			continue
		}
		if opts.Section != "" && (s.Section == nil || *s.Section != opts.Section) {
			continue
		}
		if opts.Year != 0 && s.Year != opts.Year {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// Summary holds the per-status counts for a set of entries.
// Unmarked is always Total minus the four marked counts.
type Summary struct {
	Total    int `json:"total"`
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Late     int `json:"late"`
	Excused  int `json:"excused"`
	Unmarked int `json:"unmarked"`
}

// Summarize counts entries by attendance status.
func Summarize(entries []Entry) Summary {
	sum := Summary{Total: len(entries)}
	for _, e := range entries {
		if e.Record == nil {
			continue
		}
		switch e.Record.Status {
		case model.AttendancePresent:
			sum.Present++
		case model.AttendanceAbsent:
			sum.Absent++
		case model.AttendanceLate:
			sum.Late++
		case model.AttendanceExcused:
			sum.Excused++
		}
	}
	sum.Unmarked = sum.Total - sum.Present - sum.Absent - sum.Late - sum.Excused
	return sum
}

// SetStatus stages an in-memory status edit for the given student. An
// existing record keeps its ID and creation time; an unmarked student gets a
// fresh attachment. Nothing is persisted here.
func (v *View) SetStatus(studentID uuid.UUID, status model.AttendanceStatus, markedBy uuid.UUID, now time.Time) error {
	if !model.ValidAttendanceStatus(status) {
		return ErrInvalidStatus
	}
	for i := range v.Entries {
		if v.Entries[i].Student.ID != studentID {
			continue
		}
		rec := v.Entries[i].Record
		if rec == nil {
			rec = &model.AttendanceRecord{
				StudentID: studentID,
				Date:      v.Date,
				CreatedAt: now,
			}
			v.Entries[i].Record = rec
		}
		rec.Status = status
		rec.MarkedBy = &markedBy
		rec.UpdatedAt = now
		return nil
	}
	return ErrUnknownStudent
}

// Staged returns the records carried by marked entries, shaped for the
// replace-for-date write. An empty result means there is nothing to save.
func (v View) Staged() []model.AttendanceRecord {
	staged := make([]model.AttendanceRecord, 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Record == nil {
			continue
		}
		staged = append(staged, model.AttendanceRecord{
			StudentID: e.Student.ID,
			Date:      v.Date,
			Status:    e.Record.Status,
			Subject:   e.Record.Subject,
			Notes:     e.Record.Notes,
			MarkedBy:  e.Record.MarkedBy,
		})
	}
	return staged
}

// FilterValues holds the distinct values present in a view, used to build
// the marking screen's filter dropdowns.
type FilterValues struct {
	Courses  []string `json:"courses"`
	Sections []string `json:"sections"`
	Years    []int    `json:"years"`
}

// UniqueFilterValues collects the sorted distinct courses, sections, and
// years of a view's roster. Students without a section are skipped in the
// section list.
func UniqueFilterValues(v View) FilterValues {
	courseSet := make(map[string]struct{})
	sectionSet := make(map[string]struct{})
	yearSet := make(map[int]struct{})
	for _, e := range v.Entries {
		courseSet[e.Student.Course] = struct{}{}
		if e.Student.Section != nil && *e.Student.Section != "" {
			sectionSet[*e.Student.Section] = struct{}{}
		}
		yearSet[e.Student.Year] = struct{}{}
	}

	fv := FilterValues{
		Courses:  make([]string, 0, len(courseSet)),
		Sections: make([]string, 0, len(sectionSet)),
		Years:    make([]int, 0, len(yearSet)),
	}
	for c := range courseSet {
		fv.Courses = append(fv.Courses, c)
	}
	for s := range sectionSet {
		fv.Sections = append(fv.Sections, s)
	}
	for y := range yearSet {
		fv.Years = append(fv.Years, y)
	}
	sort.Strings(fv.Courses)
	sort.Strings(fv.Sections)
	sort.Ints(fv.Years)
	return fv
}
