package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campustrack/campustrack-backend/internal/analytics"
	"github.com/campustrack/campustrack-backend/internal/repository"
)

// AnalyticsData consolidates every chart and stat card of the analytics
// screen.
type AnalyticsData struct {
	TotalStudents    int                     `json:"total_students"`
	TotalColleges    int                     `json:"total_colleges"`
	AttendanceToday  int                     `json:"attendance_today"`
	AttendanceRate   float64                 `json:"attendance_rate"`
	StudentsByYear   []analytics.YearCount   `json:"students_by_year"`
	StudentsByStatus []analytics.StatusCount `json:"students_by_status"`
	AttendanceByDate []analytics.DateCounts  `json:"attendance_by_date"`
	StudentsByCourse []analytics.CourseCount `json:"students_by_course"`
}

// topCoursesLimit caps the top-courses-by-enrollment chart.
const topCoursesLimit = 8

// AnalyticsService aggregates raw row sets into chart-ready series. The
// grouping runs in memory over full result sets; at this product's scale
// that is adequate, larger deployments would push it into SQL.
type AnalyticsService struct {
	studentRepo    *repository.StudentRepository
	collegeRepo    *repository.CollegeRepository
	attendanceRepo *repository.AttendanceRepository
	windowDays     int
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	studentRepo *repository.StudentRepository,
	collegeRepo *repository.CollegeRepository,
	attendanceRepo *repository.AttendanceRepository,
	windowDays int,
) *AnalyticsService {
	if windowDays <= 0 {
		windowDays = 7
	}
	return &AnalyticsService{
		studentRepo:    studentRepo,
		collegeRepo:    collegeRepo,
		attendanceRepo: attendanceRepo,
		windowDays:     windowDays,
	}
}

// GetAnalytics fetches the snapshots and computes every aggregate. The
// attendance rate is over today's marked records, not the roster.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, now time.Time) (*AnalyticsData, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch students: %w", err)
	}

	totalColleges, err := s.collegeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count colleges: %w", err)
	}

	today := now.Format("2006-01-02")
	todayRecords, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("fetch today's attendance: %w", err)
	}

	windowStart := now.AddDate(0, 0, -s.windowDays).Format("2006-01-02")
	windowRecords, err := s.attendanceRepo.ListSince(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance window: %w", err)
	}

	return &AnalyticsData{
		TotalStudents:    len(students),
		TotalColleges:    totalColleges,
		AttendanceToday:  len(todayRecords),
		AttendanceRate:   analytics.AttendanceRate(todayRecords),
		StudentsByYear:   analytics.CountByYear(students),
		StudentsByStatus: analytics.CountByStatus(students),
		AttendanceByDate: analytics.CountByDateWindow(windowRecords, now, s.windowDays),
		StudentsByCourse: analytics.TopCoursesByEnrollment(students, topCoursesLimit),
	}, nil
}
