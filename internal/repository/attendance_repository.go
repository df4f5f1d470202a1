package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campustrack/campustrack-backend/internal/model"
)

// AttendanceRepository handles attendance data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

const attendanceColumns = `id, student_id, to_char(date, 'YYYY-MM-DD'), status, subject, notes, marked_by, created_at, updated_at`

func scanRecord(row pgx.Row) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := row.Scan(&rec.ID, &rec.StudentID, &rec.Date, &rec.Status, &rec.Subject,
		&rec.Notes, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

// ListByDate retrieves every attendance record for one calendar date.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE date = $1`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AttendanceRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListSince retrieves every attendance record on or after the given date.
func (r *AttendanceRepository) ListSince(ctx context.Context, date string) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE date >= $1 ORDER BY date`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AttendanceRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ReplaceForDate deletes every record for the date and inserts the staged
// set, all inside one transaction. A failure anywhere rolls the whole
// operation back, so a partial save can never leave the date empty.
func (r *AttendanceRepository) ReplaceForDate(ctx context.Context, date string, records []model.AttendanceRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE date = $1`, date); err != nil {
		return fmt.Errorf("delete for date: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO attendance (student_id, date, status, subject, notes, marked_by)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.StudentID, date, rec.Status, rec.Subject, rec.Notes, rec.MarkedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert staged records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
