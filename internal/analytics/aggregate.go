// Package analytics turns raw student and attendance row sets into small
// chart-ready aggregates. All functions are pure; callers supply snapshots.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/campustrack/campustrack-backend/internal/model"
)

// statusColors is the fixed chart palette keyed by lifecycle or attendance
// status. The keys are CSS variables resolved by the frontend theme.
var statusColors = map[string]string{
	"active":      "hsl(var(--chart-1))",
	"inactive":    "hsl(var(--chart-2))",
	"graduated":   "hsl(var(--chart-3))",
	"transferred": "hsl(var(--chart-4))",
	"present":     "hsl(var(--chart-1))",
	"absent":      "hsl(var(--chart-2))",
	"late":        "hsl(var(--chart-3))",
}

// defaultColor is used for status values outside the known palette.
const defaultColor = "hsl(var(--chart-5))"

// YearCount is one bar of the students-by-year chart.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CountByYear buckets active students into the fixed year set {1,2,3,4}.
// Zero-count buckets are emitted so chart axes stay stable. Students with a
// year outside 1–4 are not counted.
func CountByYear(students []model.Student) []YearCount {
	counts := [5]int{}
	for _, s := range students {
		if s.Status != model.StudentStatusActive {
			continue
		}
		if s.Year >= 1 && s.Year <= 4 {
			counts[s.Year]++
		}
	}
	out := make([]YearCount, 0, 4)
	for year := 1; year <= 4; year++ {
		out = append(out, YearCount{Year: year, Count: counts[year]})
	}
	return out
}

// StatusCount is one slice of the students-by-status pie chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Fill   string `json:"fill"`
}

// CountByStatus groups students by lifecycle status. Labels are capitalized
// for display and each status gets its fixed palette color; unknown values
// fall back to the default color. Groups appear in first-seen input order.
func CountByStatus(students []model.Student) []StatusCount {
	counts := make(map[string]int)
	order := make([]string, 0, 4)
	for _, s := range students {
		key := string(s.Status)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]StatusCount, 0, len(order))
	for _, key := range order {
		fill, ok := statusColors[key]
		if !ok {
			fill = defaultColor
		}
		out = append(out, StatusCount{
			Status: capitalize(key),
			Count:  counts[key],
			Fill:   fill,
		})
	}
	return out
}

// DateCounts is one point of the attendance-over-time series.
type DateCounts struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// CountByDateWindow groups attendance records by date within the trailing
// window ending at today (inclusive), counting present/absent/late per day.
// Days with no records produce no bucket at all rather than a zero bucket,
// so the series can have gaps. Buckets are sorted by date ascending.
func CountByDateWindow(records []model.AttendanceRecord, today time.Time, windowDays int) []DateCounts {
	if windowDays <= 0 {
		windowDays = 7
	}
	cutoff := today.AddDate(0, 0, -windowDays).Format("2006-01-02")
	max := today.Format("2006-01-02")

	buckets := make(map[string]*DateCounts)
	for _, rec := range records {
		if rec.Date < cutoff || rec.Date > max {
			continue
		}
		b, ok := buckets[rec.Date]
		if !ok {
			b = &DateCounts{Date: rec.Date}
			buckets[rec.Date] = b
		}
		switch rec.Status {
		case model.AttendancePresent:
			b.Present++
		case model.AttendanceAbsent:
			b.Absent++
		case model.AttendanceLate:
			b.Late++
		}
	}

	out := make([]DateCounts, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CourseCount is one bar of the top-courses chart.
type CourseCount struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// TopCoursesByEnrollment groups active students by course, sorts descending
// by count, and truncates to limit. Ties keep the order in which the course
// first appeared in the input.
func TopCoursesByEnrollment(students []model.Student, limit int) []CourseCount {
	if limit <= 0 {
		limit = 8
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, s := range students {
		if s.Status != model.StudentStatusActive {
			continue
		}
		if _, seen := counts[s.Course]; !seen {
			order = append(order, s.Course)
		}
		counts[s.Course]++
	}

	out := make([]CourseCount, 0, len(order))
	for _, course := range order {
		out = append(out, CourseCount{Course: course, Count: counts[course]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// AttendanceRate returns the share of present records among all marked
// records for a day, as a percentage. The denominator is marked records,
// not the roster; an empty input yields 0.
func AttendanceRate(records []model.AttendanceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	present := 0
	for _, rec := range records {
		if rec.Status == model.AttendancePresent {
			present++
		}
	}
	return float64(present) / float64(len(records)) * 100
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
