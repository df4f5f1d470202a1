package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campustrack/campustrack-backend/internal/model"
)

var ErrDuplicateEmail = errors.New("profile with this email already exists")

// ProfileRepository handles profile data access.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetByID retrieves a profile by ID.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	p := &model.Profile{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, full_name, role, password_hash, college_id, avatar_url, created_at, updated_at
		 FROM profiles WHERE id = $1`, id,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.PasswordHash, &p.CollegeID, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByEmail retrieves a profile by its unique email.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	p := &model.Profile{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, full_name, role, password_hash, college_id, avatar_url, created_at, updated_at
		 FROM profiles WHERE email = $1`, email,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.PasswordHash, &p.CollegeID, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new profile.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO profiles (email, full_name, role, password_hash, college_id, avatar_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		p.Email, p.FullName, p.Role, p.PasswordHash, p.CollegeID, p.AvatarURL,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update modifies a profile's editable fields (name and avatar).
func (r *ProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles SET full_name = $1, avatar_url = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		p.FullName, p.AvatarURL, p.ID,
	)
	return err
}

// UpdatePassword updates a profile's password hash.
func (r *ProfileRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		passwordHash, id,
	)
	return err
}
