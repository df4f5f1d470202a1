package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentStatus is a student's lifecycle status.
type StudentStatus string

const (
	StudentStatusActive      StudentStatus = "active"
	StudentStatusInactive    StudentStatus = "inactive"
	StudentStatusGraduated   StudentStatus = "graduated"
	StudentStatusTransferred StudentStatus = "transferred"
)

// Student represents a student record.
type Student struct {
	ID          uuid.UUID     `json:"id"`
	StudentCode string        `json:"student_code"`
	FullName    string        `json:"full_name"`
	Email       *string       `json:"email,omitempty"`
	Phone       *string       `json:"phone,omitempty"`
	CollegeID   uuid.UUID     `json:"college_id"`
	Course      string        `json:"course"`
	Year        int           `json:"year"`
	Section     *string       `json:"section,omitempty"`
	Status      StudentStatus `json:"status"`
	CreatedBy   *uuid.UUID    `json:"created_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// College is populated on list/detail reads that join the college row.
	College *College `json:"college,omitempty"`
}

// CreateStudentRequest is the payload for registering a new student.
type CreateStudentRequest struct {
	StudentCode string  `json:"student_code" binding:"required,min=2,max=30"`
	FullName    string  `json:"full_name" binding:"required,min=2,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,min=5,max=30"`
	CollegeID   string  `json:"college_id" binding:"required,uuid"`
	Course      string  `json:"course" binding:"required,min=2,max=100"`
	Year        int     `json:"year" binding:"required,min=1,max=4"`
	Section     *string `json:"section" binding:"omitempty,max=20"`
}

// UpdateStudentRequest is the payload for updating an existing student.
// Unlike creation, the lifecycle status may be changed here.
type UpdateStudentRequest struct {
	StudentCode string  `json:"student_code" binding:"required,min=2,max=30"`
	FullName    string  `json:"full_name" binding:"required,min=2,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,min=5,max=30"`
	CollegeID   string  `json:"college_id" binding:"required,uuid"`
	Course      string  `json:"course" binding:"required,min=2,max=100"`
	Year        int     `json:"year" binding:"required,min=1,max=4"`
	Section     *string `json:"section" binding:"omitempty,max=20"`
	Status      string  `json:"status" binding:"required,oneof=active inactive graduated transferred"`
}
