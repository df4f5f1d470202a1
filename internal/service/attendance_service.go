package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campustrack/campustrack-backend/internal/attendance"
	"github.com/campustrack/campustrack-backend/internal/metrics"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
)

// ErrInvalidDate is returned when a date is not a YYYY-MM-DD string.
var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// DayView is the marking screen's payload for one date: the filtered merged
// view, its summary, and the distinct values for the filter dropdowns
// (always computed over the full roster, not the filtered subset).
type DayView struct {
	Date         string                  `json:"date"`
	Entries      []attendance.Entry      `json:"entries"`
	Summary      attendance.Summary      `json:"summary"`
	FilterValues attendance.FilterValues `json:"filter_values"`
}

// AttendanceService orchestrates the reconciliation engine against storage:
// loading merged day views and saving a day's staged statuses.
type AttendanceService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		log:            log.With().Str("component", "attendance_service").Logger(),
	}
}

// LoadDay fetches the active roster and the date's records, merges them,
// and applies the marking screen's filters. The roster and record fetches
// are independent; merging happens only after both have returned.
func (s *AttendanceService) LoadDay(ctx context.Context, date string, opts attendance.FilterOptions) (*DayView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	session := attendance.NewSession()
	token := session.Begin(date)

	roster, err := s.studentRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance: %w", err)
	}

	view, err := session.Complete(token, roster, records)
	if err != nil {
		return nil, err
	}

	filtered := attendance.Filter(view, opts)
	return &DayView{
		Date:         date,
		Entries:      filtered,
		Summary:      attendance.Summarize(filtered),
		FilterValues: attendance.UniqueFilterValues(view),
	}, nil
}

// SaveDay stages the submitted entries against the active roster and
// commits them as a replace-for-date write. Entries referencing students
// outside the roster are rejected before anything touches storage. An empty
// staged set is a guard condition: no SQL is issued at all.
// Returns the number of records written.
func (s *AttendanceService) SaveDay(ctx context.Context, date string, entries []model.SaveAttendanceEntry, markedBy uuid.UUID) (int, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}

	roster, err := s.studentRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch roster: %w", err)
	}
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("fetch attendance: %w", err)
	}

	session := attendance.NewSession()
	token := session.Begin(date)
	if _, err := session.Complete(token, roster, records); err != nil {
		return 0, err
	}

	now := time.Now()
	for _, entry := range entries {
		studentID, err := uuid.Parse(entry.StudentID)
		if err != nil {
			return 0, attendance.ErrUnknownStudent
		}
		if err := session.SetStatus(studentID, model.AttendanceStatus(entry.Status), markedBy, now); err != nil {
			return 0, err
		}
	}

	saveDate, staged, err := session.Staged()
	if err != nil {
		return 0, err
	}

	if err := s.attendanceRepo.ReplaceForDate(ctx, saveDate, staged); err != nil {
		metrics.AttendanceSaves.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("date", saveDate).Msg("Replace-for-date failed, rolled back")
		return 0, err
	}

	metrics.AttendanceSaves.WithLabelValues("ok").Inc()
	metrics.AttendanceRecordsSaved.Add(float64(len(staged)))
	s.log.Info().
		Str("date", saveDate).
		Int("records", len(staged)).
		Str("marked_by", markedBy.String()).
		Msg("Attendance saved")
	return len(staged), nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
