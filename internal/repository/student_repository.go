package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campustrack/campustrack-backend/internal/model"
)

var ErrDuplicateStudentCode = errors.New("student with this code already exists")

const studentColumns = `s.id, s.student_code, s.full_name, s.email, s.phone, s.college_id,
	s.course, s.year, s.section, s.status, s.created_by, s.created_at, s.updated_at,
	c.id, c.name, c.code, c.address, c.created_at, c.updated_at`

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudentWithCollege(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	c := model.College{}
	err := row.Scan(
		&s.ID, &s.StudentCode, &s.FullName, &s.Email, &s.Phone, &s.CollegeID,
		&s.Course, &s.Year, &s.Section, &s.Status, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.College = &c
	return s, nil
}

// GetByID retrieves a student with their college.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students s JOIN colleges c ON c.id = s.college_id
		 WHERE s.id = $1`, id)
	return scanStudentWithCollege(row)
}

// ListFilter narrows ListPaginated. Zero values mean "no constraint";
// Search matches name, student code, course, and email case-insensitively.
type ListFilter struct {
	Search  string
	Status  model.StudentStatus
	Course  string
	Section string
	Year    int
}

// ListPaginated retrieves students with their colleges, newest first, with
// optional filters and pagination.
func (r *StudentRepository) ListPaginated(ctx context.Context, filter ListFilter, limit, offset int) ([]model.Student, int, error) {
	where := ` WHERE 1=1`
	var args []any
	argIdx := 1

	if filter.Search != "" {
		where += ` AND (s.full_name ILIKE $` + strconv.Itoa(argIdx) +
			` OR s.student_code ILIKE $` + strconv.Itoa(argIdx) +
			` OR s.course ILIKE $` + strconv.Itoa(argIdx) +
			` OR s.email ILIKE $` + strconv.Itoa(argIdx) + `)`
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Status != "" {
		where += ` AND s.status = $` + strconv.Itoa(argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Course != "" {
		where += ` AND s.course = $` + strconv.Itoa(argIdx)
		args = append(args, filter.Course)
		argIdx++
	}
	if filter.Section != "" {
		where += ` AND s.section = $` + strconv.Itoa(argIdx)
		args = append(args, filter.Section)
		argIdx++
	}
	if filter.Year != 0 {
		where += ` AND s.year = $` + strconv.Itoa(argIdx)
		args = append(args, filter.Year)
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students s`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns +
		` FROM students s JOIN colleges c ON c.id = s.college_id` + where +
		` ORDER BY s.created_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudentWithCollege(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *s)
	}
	return students, total, rows.Err()
}

// ListActive retrieves the marking roster: every active student with their
// college, ordered by name.
func (r *StudentRepository) ListActive(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM students s JOIN colleges c ON c.id = s.college_id
		 WHERE s.status = $1 ORDER BY s.full_name`, model.StudentStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudentWithCollege(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// ListAll retrieves every student without joins, for aggregation.
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.student_code, s.full_name, s.email, s.phone, s.college_id,
		        s.course, s.year, s.section, s.status, s.created_by, s.created_at, s.updated_at
		 FROM students s ORDER BY s.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(
			&s.ID, &s.StudentCode, &s.FullName, &s.Email, &s.Phone, &s.CollegeID,
			&s.Course, &s.Year, &s.Section, &s.Status, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// ListRecent retrieves the most recently registered active students.
func (r *StudentRepository) ListRecent(ctx context.Context, limit int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM students s JOIN colleges c ON c.id = s.college_id
		 WHERE s.status = $1 ORDER BY s.created_at DESC LIMIT $2`,
		model.StudentStatusActive, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudentWithCollege(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (student_code, full_name, email, phone, college_id, course, year, section, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		s.StudentCode, s.FullName, s.Email, s.Phone, s.CollegeID, s.Course, s.Year, s.Section, s.Status, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentCode
		}
		return err
	}
	return nil
}

// Update modifies a student record.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET student_code = $1, full_name = $2, email = $3, phone = $4,
		        college_id = $5, course = $6, year = $7, section = $8, status = $9,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = $10`,
		s.StudentCode, s.FullName, s.Email, s.Phone, s.CollegeID, s.Course, s.Year, s.Section, s.Status, s.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentCode
		}
		return err
	}
	return nil
}

// Delete removes a student by ID. Attendance records cascade.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
