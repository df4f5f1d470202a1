package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campustrack/campustrack-backend/internal/model"
)

var ErrDuplicateCollegeCode = errors.New("college with this code already exists")

// CollegeRepository handles college data access.
type CollegeRepository struct {
	pool *pgxpool.Pool
}

// NewCollegeRepository creates a new CollegeRepository.
func NewCollegeRepository(pool *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{pool: pool}
}

// GetByID retrieves a college by ID.
func (r *CollegeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.College, error) {
	c := &model.College{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, code, address, created_at, updated_at
		 FROM colleges WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all colleges ordered by name.
func (r *CollegeRepository) List(ctx context.Context) ([]model.College, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code, address, created_at, updated_at
		 FROM colleges ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colleges := []model.College{}
	for rows.Next() {
		var c model.College
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

// Count returns the number of registered colleges.
func (r *CollegeRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM colleges`).Scan(&total)
	return total, err
}

// Create inserts a new college.
func (r *CollegeRepository) Create(ctx context.Context, c *model.College) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO colleges (name, code, address)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Code, c.Address,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCollegeCode
		}
		return err
	}
	return nil
}

// Update modifies an existing college.
func (r *CollegeRepository) Update(ctx context.Context, c *model.College) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE colleges SET name = $1, code = $2, address = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		c.Name, c.Code, c.Address, c.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCollegeCode
		}
		return err
	}
	return nil
}

// Delete removes a college by ID. Fails with a foreign key violation if
// students or profiles still reference it.
func (r *CollegeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	return err
}
