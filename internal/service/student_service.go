package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListPaginated retrieves students with filters and pagination.
func (s *StudentService) ListPaginated(ctx context.Context, filter repository.ListFilter, limit, offset int) ([]model.Student, int, error) {
	return s.studentRepo.ListPaginated(ctx, filter, limit, offset)
}

// ListActive retrieves the active roster ordered by name.
func (s *StudentService) ListActive(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.ListActive(ctx)
}

// Create registers a new student. New records always start active.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	if student.Status == "" {
		student.Status = model.StudentStatusActive
	}
	return s.studentRepo.Create(ctx, student)
}

// Update modifies a student record.
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student and, via cascade, their attendance records.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.studentRepo.Delete(ctx, id)
}
