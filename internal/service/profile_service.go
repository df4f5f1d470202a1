package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
)

// DefaultRole is assigned to self-registered profiles. Accounts are
// auto-confirmed: sign-up immediately yields a usable identity.
const DefaultRole = "teacher"

// ProfileService handles profile registration and settings.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	authService *AuthService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo *repository.ProfileRepository, authService *AuthService) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, authService: authService}
}

// SignUp registers a new profile with a hashed password.
func (s *ProfileService) SignUp(ctx context.Context, email, password, fullName string) (*model.Profile, error) {
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		FullName:     strings.TrimSpace(fullName),
		Role:         DefaultRole,
		PasswordHash: hash,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByID retrieves a profile by ID.
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a profile by email, normalized to lowercase.
func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return s.profileRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// Update modifies the editable profile fields.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, fullName string, avatarURL *string) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.FullName = strings.TrimSpace(fullName)
	profile.AvatarURL = avatarURL
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *ProfileService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authService.CheckPassword(profile.PasswordHash, currentPassword); err != nil {
		return err
	}
	hash, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.profileRepo.UpdatePassword(ctx, id, hash)
}
