package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/admitportal/internal/app/models"
)

var headerColumns = []string{
	"id", "student_id", "enrollment_no", "microsoft_email",
	"current_semester", "profile_completion_percentage",
	"created_at", "updated_at",
}

// SARHeaderRepository handles database operations for SAR headers
type SARHeaderRepository struct {
	db *pgxpool.Pool
}

// NewSARHeaderRepository creates a new SARHeaderRepository
func NewSARHeaderRepository(db *pgxpool.Pool) *SARHeaderRepository {
	return &SARHeaderRepository{db: db}
}

func scanHeader(row pgx.Row) (*models.SARHeader, error) {
	var h models.SARHeader
	err := row.Scan(
		&h.ID, &h.StudentID, &h.EnrollmentNo, &h.MicrosoftEmail,
		&h.CurrentSemester, &h.ProfileCompletionPercentage,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetByStudentID retrieves the header for a student, returning (nil, nil)
// when the student has no SAR activity yet.
func (r *SARHeaderRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.SARHeader, error) {
	query := squirrel.Select(headerColumns...).
		From("sar_headers").
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	header, err := scanHeader(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return header, nil
}

// GetOrCreateForStudent resolves the student's header, creating a blank one
// (semester 1, completion 0) on first use. The insert is ON CONFLICT DO
// NOTHING against the unique student_id constraint, so two concurrent first
// writes converge on a single header instead of racing check-then-insert.
func (r *SARHeaderRepository) GetOrCreateForStudent(ctx context.Context, studentID int64) (*models.SARHeader, error) {
	insert := squirrel.Insert("sar_headers").
		Columns("student_id").
		Values(studentID).
		Suffix("ON CONFLICT (student_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("error inserting header: %w", err)
	}

	header, err := r.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("header missing after upsert for student %d", studentID)
	}
	return header, nil
}

// Update writes the header identity fields
func (r *SARHeaderRepository) Update(ctx context.Context, header *models.SARHeader) error {
	query := squirrel.Update("sar_headers").
		Set("enrollment_no", header.EnrollmentNo).
		Set("microsoft_email", header.MicrosoftEmail).
		Set("current_semester", header.CurrentSemester).
		Set("profile_completion_percentage", header.ProfileCompletionPercentage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", header.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing update: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateCompletion writes only the recomputed completion percentage
func (r *SARHeaderRepository) UpdateCompletion(ctx context.Context, headerID int64, percentage float64) error {
	query := squirrel.Update("sar_headers").
		Set("profile_completion_percentage", percentage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", headerID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing update: %w", err)
	}
	return nil
}

// GetByEnrollmentNo retrieves a header by enrollment number, returning
// (nil, nil) when absent.
func (r *SARHeaderRepository) GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.SARHeader, error) {
	query := squirrel.Select(headerColumns...).
		From("sar_headers").
		Where("enrollment_no = ?", enrollmentNo).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	header, err := scanHeader(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return header, nil
}
