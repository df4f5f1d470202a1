package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is a marked attendance state. The set is closed; anything
// else must be rejected before it reaches storage.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// ValidAttendanceStatus reports whether s is one of the closed enumeration
// values.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord represents one student's attendance on one calendar date.
// The date is a plain "YYYY-MM-DD" string; no timezone normalization is
// performed beyond what the caller supplies.
type AttendanceRecord struct {
	ID        uuid.UUID        `json:"id"`
	StudentID uuid.UUID        `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Subject   *string          `json:"subject,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	MarkedBy  *uuid.UUID       `json:"marked_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SaveAttendanceRequest is the payload for saving a day's attendance.
// Entries replace every existing record for the date.
type SaveAttendanceRequest struct {
	Date    string                `json:"date" binding:"required,datetime=2006-01-02"`
	Entries []SaveAttendanceEntry `json:"entries" binding:"dive"`
}

// SaveAttendanceEntry is one staged (student, status) pair for the date.
type SaveAttendanceEntry struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=present absent late excused"`
}
