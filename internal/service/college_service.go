package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
)

// CollegeService handles college business logic.
type CollegeService struct {
	collegeRepo *repository.CollegeRepository
}

// NewCollegeService creates a new CollegeService.
func NewCollegeService(collegeRepo *repository.CollegeRepository) *CollegeService {
	return &CollegeService{collegeRepo: collegeRepo}
}

// GetByID retrieves a college by its ID.
func (s *CollegeService) GetByID(ctx context.Context, id uuid.UUID) (*model.College, error) {
	return s.collegeRepo.GetByID(ctx, id)
}

// List retrieves all colleges.
func (s *CollegeService) List(ctx context.Context) ([]model.College, error) {
	return s.collegeRepo.List(ctx)
}

// Create creates a new college.
func (s *CollegeService) Create(ctx context.Context, college *model.College) error {
	return s.collegeRepo.Create(ctx, college)
}

// Update modifies an existing college.
func (s *CollegeService) Update(ctx context.Context, college *model.College) error {
	return s.collegeRepo.Update(ctx, college)
}

// Delete removes a college. Foreign key constraints on students and
// profiles prevent deletion while either still references it.
func (s *CollegeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.collegeRepo.Delete(ctx, id)
}
