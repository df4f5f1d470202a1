package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
)

// recentStudentsLimit caps the dashboard's recent-students list.
const recentStudentsLimit = 5

// DashboardData holds the dashboard stat cards and recent registrations.
// Unlike the analytics screen, the rate here is over the active roster:
// unmarked students count against it.
type DashboardData struct {
	TotalStudents  int             `json:"total_students"`
	TotalPresent   int             `json:"total_present"`
	TotalAbsent    int             `json:"total_absent"`
	AttendanceRate float64         `json:"attendance_rate"`
	RecentStudents []model.Student `json:"recent_students"`
}

// DashboardService assembles the dashboard payload.
type DashboardService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
) *DashboardService {
	return &DashboardService{studentRepo: studentRepo, attendanceRepo: attendanceRepo}
}

// GetDashboard computes today's stats over the active roster.
func (s *DashboardService) GetDashboard(ctx context.Context, now time.Time) (*DashboardData, error) {
	roster, err := s.studentRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}

	today := now.Format("2006-01-02")
	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("fetch today's attendance: %w", err)
	}

	present, absent := 0, 0
	for _, rec := range records {
		switch rec.Status {
		case model.AttendancePresent:
			present++
		case model.AttendanceAbsent:
			absent++
		}
	}

	rate := 0.0
	if len(roster) > 0 {
		rate = float64(present) / float64(len(roster)) * 100
	}

	recent, err := s.studentRepo.ListRecent(ctx, recentStudentsLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent students: %w", err)
	}

	return &DashboardData{
		TotalStudents:  len(roster),
		TotalPresent:   present,
		TotalAbsent:    absent,
		AttendanceRate: rate,
		RecentStudents: recent,
	}, nil
}
