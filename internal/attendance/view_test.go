package attendance

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
)

func strPtr(s string) *string { return &s }

func makeStudent(name, code, course string, year int, section string) model.Student {
	s := model.Student{
		ID:          uuid.New(),
		StudentCode: code,
		FullName:    name,
		Course:      course,
		Year:        year,
		Status:      model.StudentStatusActive,
	}
	if section != "" {
		s.Section = strPtr(section)
	}
	return s
}

func makeRecord(studentID uuid.UUID, date string, status model.AttendanceStatus) model.AttendanceRecord {
	return model.AttendanceRecord{
		ID:        uuid.New(),
		StudentID: studentID,
		Date:      date,
		Status:    status,
	}
}

func TestLoadMergesRosterWithRecords(t *testing.T) {
	const date = "2026-08-28"
	s1 := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	s2 := makeStudent("Bob Diaz", "CS102", "Computer Science", 2, "")

	records := []model.AttendanceRecord{
		makeRecord(s1.ID, date, model.AttendancePresent),
		// Orphan: student was deleted after marking. Must be dropped.
		makeRecord(uuid.New(), date, model.AttendanceAbsent),
		// Wrong date: must be ignored.
		makeRecord(s2.ID, "2026-08-27", model.AttendanceLate),
	}

	v := Load(date, []model.Student{s1, s2}, records)

	if len(v.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(v.Entries))
	}
	if v.Entries[0].Record == nil || v.Entries[0].Record.Status != model.AttendancePresent {
		t.Errorf("s1 record = %+v, want present", v.Entries[0].Record)
	}
	if v.Entries[1].Record != nil {
		t.Errorf("s2 record = %+v, want unmarked", v.Entries[1].Record)
	}
}

func TestLoadEveryStudentAppearsOnce(t *testing.T) {
	const date = "2026-08-28"
	roster := make([]model.Student, 30)
	for i := range roster {
		roster[i] = makeStudent("Student", "S", "Course", 1+i%4, "")
	}
	v := Load(date, roster, nil)
	if len(v.Entries) != len(roster) {
		t.Fatalf("entries = %d, want %d", len(v.Entries), len(roster))
	}
	seen := make(map[uuid.UUID]bool)
	for _, e := range v.Entries {
		if seen[e.Student.ID] {
			t.Fatalf("student %s appears more than once", e.Student.ID)
		}
		seen[e.Student.ID] = true
	}
}

func TestFilter(t *testing.T) {
	const date = "2026-08-28"
	s1 := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	s2 := makeStudent("Bob Diaz", "EE201", "Electrical Engineering", 2, "B")
	s3 := makeStudent("Carol Evans", "CS303", "Computer Science", 3, "A")
	v := Load(date, []model.Student{s1, s2, s3}, nil)

	tests := []struct {
		name string
		opts FilterOptions
		want []string
	}{
		{"no filters", FilterOptions{}, []string{"Alice Chen", "Bob Diaz", "Carol Evans"}},
		{"query over name", FilterOptions{Query: "alice"}, []string{"Alice Chen"}},
		{"query over code", FilterOptions{Query: "ee2"}, []string{"Bob Diaz"}},
		{"query over course", FilterOptions{Query: "computer"}, []string{"Alice Chen", "Carol Evans"}},
		{"course", FilterOptions{Course: "Computer Science"}, []string{"Alice Chen", "Carol Evans"}},
		{"section", FilterOptions{Section: "B"}, []string{"Bob Diaz"}},
		{"year", FilterOptions{Year: 3}, []string{"Carol Evans"}},
		{"query AND year", FilterOptions{Query: "computer", Year: 1}, []string{"Alice Chen"}},
		{"no match", FilterOptions{Query: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(v, tt.opts)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Student.FullName)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("got %v, want %v", names, tt.want)
			}
		})
	}
}

func TestFilterIsPure(t *testing.T) {
	const date = "2026-08-28"
	s1 := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	s2 := makeStudent("Bob Diaz", "EE201", "Electrical Engineering", 2, "B")
	v := Load(date, []model.Student{s1, s2}, []model.AttendanceRecord{
		makeRecord(s1.ID, date, model.AttendancePresent),
	})

	before := len(v.Entries)
	opts := FilterOptions{Query: "chen"}
	first := Filter(v, opts)
	second := Filter(v, opts)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated filter calls differ: %v vs %v", first, second)
	}
	if len(v.Entries) != before {
		t.Errorf("filter mutated the view: %d entries, want %d", len(v.Entries), before)
	}
}

func TestSummarize(t *testing.T) {
	const date = "2026-08-28"
	roster := []model.Student{
		makeStudent("A", "1", "C", 1, ""),
		makeStudent("B", "2", "C", 1, ""),
		makeStudent("C", "3", "C", 1, ""),
		makeStudent("D", "4", "C", 1, ""),
		makeStudent("E", "5", "C", 1, ""),
	}
	records := []model.AttendanceRecord{
		makeRecord(roster[0].ID, date, model.AttendancePresent),
		makeRecord(roster[1].ID, date, model.AttendanceAbsent),
		makeRecord(roster[2].ID, date, model.AttendanceLate),
		makeRecord(roster[3].ID, date, model.AttendanceExcused),
	}
	v := Load(date, roster, records)

	sum := Summarize(v.Entries)
	want := Summary{Total: 5, Present: 1, Absent: 1, Late: 1, Excused: 1, Unmarked: 1}
	if sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}
	if sum.Unmarked != sum.Total-(sum.Present+sum.Absent+sum.Late+sum.Excused) {
		t.Errorf("unmarked identity violated: %+v", sum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum != (Summary{}) {
		t.Errorf("summary of empty view = %+v, want all zeros", sum)
	}
}

func TestSetStatusCreatesAndUpdates(t *testing.T) {
	const date = "2026-08-28"
	s := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	v := Load(date, []model.Student{s}, nil)

	marker := uuid.New()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	if err := v.SetStatus(s.ID, model.AttendancePresent, marker, now); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	rec := v.Entries[0].Record
	if rec == nil || rec.Status != model.AttendancePresent {
		t.Fatalf("record = %+v, want present", rec)
	}
	if rec.MarkedBy == nil || *rec.MarkedBy != marker {
		t.Errorf("marked_by = %v, want %s", rec.MarkedBy, marker)
	}
	if rec.CreatedAt != now || rec.UpdatedAt != now {
		t.Errorf("timestamps = %v/%v, want %v", rec.CreatedAt, rec.UpdatedAt, now)
	}

	later := now.Add(time.Minute)
	if err := v.SetStatus(s.ID, model.AttendanceLate, marker, later); err != nil {
		t.Fatalf("SetStatus update: %v", err)
	}
	rec = v.Entries[0].Record
	if rec.Status != model.AttendanceLate {
		t.Errorf("status = %s, want late", rec.Status)
	}
	if rec.CreatedAt != now {
		t.Errorf("update changed creation time: %v", rec.CreatedAt)
	}
	if rec.UpdatedAt != later {
		t.Errorf("updated_at = %v, want %v", rec.UpdatedAt, later)
	}
}

func TestSetStatusRejectsUnknownStudentAndStatus(t *testing.T) {
	const date = "2026-08-28"
	s := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	v := Load(date, []model.Student{s}, nil)

	if err := v.SetStatus(uuid.New(), model.AttendancePresent, uuid.New(), time.Now()); err != ErrUnknownStudent {
		t.Errorf("unknown student: err = %v, want ErrUnknownStudent", err)
	}
	if err := v.SetStatus(s.ID, model.AttendanceStatus("vanished"), uuid.New(), time.Now()); err != ErrInvalidStatus {
		t.Errorf("invalid status: err = %v, want ErrInvalidStatus", err)
	}
}

func TestStaged(t *testing.T) {
	const date = "2026-08-28"
	s1 := makeStudent("Alice Chen", "CS101", "Computer Science", 1, "A")
	s2 := makeStudent("Bob Diaz", "EE201", "Electrical Engineering", 2, "B")
	v := Load(date, []model.Student{s1, s2}, nil)

	if staged := v.Staged(); len(staged) != 0 {
		t.Fatalf("staged on untouched view = %d rows, want 0", len(staged))
	}

	marker := uuid.New()
	if err := v.SetStatus(s2.ID, model.AttendanceAbsent, marker, time.Now()); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	staged := v.Staged()
	if len(staged) != 1 {
		t.Fatalf("staged = %d rows, want 1", len(staged))
	}
	row := staged[0]
	if row.StudentID != s2.ID || row.Date != date || row.Status != model.AttendanceAbsent {
		t.Errorf("staged row = %+v", row)
	}
	if row.MarkedBy == nil || *row.MarkedBy != marker {
		t.Errorf("staged marked_by = %v, want %s", row.MarkedBy, marker)
	}
}

func TestUniqueFilterValues(t *testing.T) {
	const date = "2026-08-28"
	v := Load(date, []model.Student{
		makeStudent("A", "1", "Physics", 2, "B"),
		makeStudent("B", "2", "Chemistry", 1, ""),
		makeStudent("C", "3", "Physics", 2, "A"),
	}, nil)

	fv := UniqueFilterValues(v)
	if !reflect.DeepEqual(fv.Courses, []string{"Chemistry", "Physics"}) {
		t.Errorf("courses = %v", fv.Courses)
	}
	if !reflect.DeepEqual(fv.Sections, []string{"A", "B"}) {
		t.Errorf("sections = %v", fv.Sections)
	}
	if !reflect.DeepEqual(fv.Years, []int{1, 2}) {
		t.Errorf("years = %v", fv.Years)
	}
}

// Mirrors the full marking scenario: active roster of two, one inactive
// student excluded upstream, one orphan record, one present record.
func TestEndToEndMerge(t *testing.T) {
	const date = "2026-08-28"
	s1 := makeStudent("S1", "001", "Math", 1, "")
	s2 := makeStudent("S2", "002", "Math", 1, "")
	// S3 is inactive and therefore pre-filtered out of the roster by the
	// caller; it must never reach Load.
	records := []model.AttendanceRecord{
		makeRecord(s1.ID, date, model.AttendancePresent),
		makeRecord(uuid.New(), date, model.AttendanceAbsent), // unknown S4
	}

	v := Load(date, []model.Student{s1, s2}, records)
	if len(v.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(v.Entries))
	}
	if v.Entries[0].Record == nil || v.Entries[0].Record.Status != model.AttendancePresent {
		t.Errorf("S1 should be present, got %+v", v.Entries[0].Record)
	}
	if v.Entries[1].Record != nil {
		t.Errorf("S2 should be unmarked, got %+v", v.Entries[1].Record)
	}

	sum := Summarize(v.Entries)
	want := Summary{Total: 2, Present: 1, Unmarked: 1}
	if sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}
}
