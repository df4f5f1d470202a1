package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
)

func student(course string, year int, status model.StudentStatus) model.Student {
	return model.Student{
		ID:     uuid.New(),
		Course: course,
		Year:   year,
		Status: status,
	}
}

func record(date string, status model.AttendanceStatus) model.AttendanceRecord {
	return model.AttendanceRecord{
		ID:        uuid.New(),
		StudentID: uuid.New(),
		Date:      date,
		Status:    status,
	}
}

func TestCountByYear(t *testing.T) {
	students := []model.Student{
		student("Math", 1, model.StudentStatusActive),
		student("Math", 1, model.StudentStatusActive),
		student("Math", 3, model.StudentStatusActive),
		student("Math", 2, model.StudentStatusInactive), // not active, excluded
	}
	got := CountByYear(students)
	want := []YearCount{{1, 2}, {2, 0}, {3, 1}, {4, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountByYearEmptyInputKeepsBuckets(t *testing.T) {
	got := CountByYear(nil)
	want := []YearCount{{1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want four zero buckets", got)
	}
}

func TestCountByStatus(t *testing.T) {
	students := []model.Student{
		student("Math", 1, model.StudentStatusActive),
		student("Math", 2, model.StudentStatusActive),
		student("Math", 4, model.StudentStatusGraduated),
	}
	got := CountByStatus(students)
	want := []StatusCount{
		{Status: "Active", Count: 2, Fill: "hsl(var(--chart-1))"},
		{Status: "Graduated", Count: 1, Fill: "hsl(var(--chart-3))"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountByStatusUnknownGetsDefaultColor(t *testing.T) {
	students := []model.Student{
		student("Math", 1, model.StudentStatus("suspended")),
	}
	got := CountByStatus(students)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].Status != "Suspended" || got[0].Fill != defaultColor {
		t.Errorf("got %+v, want capitalized label with default color", got[0])
	}
}

func TestCountByDateWindow(t *testing.T) {
	today := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	records := []model.AttendanceRecord{
		record("2026-08-28", model.AttendancePresent),
		record("2026-08-28", model.AttendancePresent),
		record("2026-08-28", model.AttendanceAbsent),
		record("2026-08-26", model.AttendanceLate),
		record("2026-08-26", model.AttendanceExcused), // tracked elsewhere, not in series
		record("2026-08-10", model.AttendancePresent), // outside window
	}

	got := CountByDateWindow(records, today, 7)
	want := []DateCounts{
		{Date: "2026-08-26", Present: 0, Absent: 0, Late: 1},
		{Date: "2026-08-28", Present: 2, Absent: 1, Late: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// 2026-08-27 had no records: it must be absent from the series, not a
	// zero point.
	for _, b := range got {
		if b.Date == "2026-08-27" {
			t.Errorf("empty day synthesized: %v", b)
		}
	}
}

func TestCountByDateWindowBoundary(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	records := []model.AttendanceRecord{
		record("2026-08-21", model.AttendancePresent), // exactly window start, included
		record("2026-08-20", model.AttendancePresent), // one day earlier, excluded
	}
	got := CountByDateWindow(records, today, 7)
	if len(got) != 1 || got[0].Date != "2026-08-21" {
		t.Errorf("got %v, want only 2026-08-21", got)
	}
}

func TestTopCoursesByEnrollment(t *testing.T) {
	var students []model.Student
	// 10 distinct courses; course N has N students.
	for n := 1; n <= 10; n++ {
		for i := 0; i < n; i++ {
			students = append(students, student(fmt.Sprintf("Course %02d", n), 1, model.StudentStatusActive))
		}
	}

	got := TopCoursesByEnrollment(students, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if got[0].Course != "Course 10" || got[0].Count != 10 {
		t.Errorf("top = %+v, want Course 10 with 10", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("not sorted descending at %d: %v", i, got)
		}
	}
}

func TestTopCoursesTiesKeepInputOrder(t *testing.T) {
	students := []model.Student{
		student("Biology", 1, model.StudentStatusActive),
		student("Art", 1, model.StudentStatusActive),
		student("Biology", 2, model.StudentStatusActive),
		student("Art", 2, model.StudentStatusActive),
	}
	got := TopCoursesByEnrollment(students, 8)
	want := []CourseCount{{"Biology", 2}, {"Art", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (stable tie order)", got, want)
	}
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name    string
		records []model.AttendanceRecord
		want    float64
	}{
		{"empty", nil, 0},
		{"all present", []model.AttendanceRecord{
			record("2026-08-28", model.AttendancePresent),
			record("2026-08-28", model.AttendancePresent),
		}, 100},
		{"half present", []model.AttendanceRecord{
			record("2026-08-28", model.AttendancePresent),
			record("2026-08-28", model.AttendanceAbsent),
		}, 50},
		{"marked subset only", []model.AttendanceRecord{
			record("2026-08-28", model.AttendancePresent),
			record("2026-08-28", model.AttendanceLate),
			record("2026-08-28", model.AttendanceExcused),
			record("2026-08-28", model.AttendanceAbsent),
		}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceRate(tt.records); got != tt.want {
				t.Errorf("rate = %v, want %v", got, tt.want)
			}
		})
	}
}
