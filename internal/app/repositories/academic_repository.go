package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/pkg/subdoc"
)

var academicColumns = []string{
	"id", "sar_id", "semester", "academic_year", "sgpa", "cgpa",
	"credits_earned", "credits_total", "attendance_percentage",
	"backlog_count", "semester_result", "subjects",
	"created_at", "updated_at",
}

// AcademicRepository handles database operations for semester records.
// Every mutation filters by sar_id: a record id alone is never trusted.
type AcademicRepository struct {
	db *pgxpool.Pool
}

// NewAcademicRepository creates a new AcademicRepository
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{db: db}
}

func scanAcademic(row pgx.Row) (*models.AcademicRecord, error) {
	var rec models.AcademicRecord
	var subjects *string
	err := row.Scan(
		&rec.ID, &rec.SARID, &rec.Semester, &rec.AcademicYear, &rec.SGPA, &rec.CGPA,
		&rec.CreditsEarned, &rec.CreditsTotal, &rec.AttendancePercentage,
		&rec.BacklogCount, &rec.SemesterResult, &subjects,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Subjects = subdoc.DecodeSubjects(subjects)
	return &rec, nil
}

// ListBySAR retrieves all semester records for a header, semester ascending
func (r *AcademicRepository) ListBySAR(ctx context.Context, sarID int64) ([]models.AcademicRecord, error) {
	query := squirrel.Select(academicColumns...).
		From("academic_records").
		Where("sar_id = ?", sarID).
		OrderBy("semester ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	records := []models.AcademicRecord{}
	for rows.Next() {
		rec, err := scanAcademic(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// GetByID retrieves one record scoped to its header, returning (nil, nil)
// when it does not exist or belongs to another header.
func (r *AcademicRepository) GetByID(ctx context.Context, sarID, id int64) (*models.AcademicRecord, error) {
	query := squirrel.Select(academicColumns...).
		From("academic_records").
		Where("id = ? AND sar_id = ?", id, sarID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rec, err := scanAcademic(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return rec, nil
}

// ExistsForSemester reports whether a record for (sarID, semester) exists
func (r *AcademicRepository) ExistsForSemester(ctx context.Context, sarID int64, semester int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_records WHERE sar_id = $1 AND semester = $2)`,
		sarID, semester,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// Create inserts a new semester record. A concurrent duplicate surfaces as a
// unique violation on uq_academic_records_sar_semester; callers map it to
// the same conflict error the pre-check produces.
func (r *AcademicRepository) Create(ctx context.Context, rec *models.AcademicRecord) (int64, error) {
	subjects, err := subdoc.EncodeSubjects(rec.Subjects)
	if err != nil {
		return 0, fmt.Errorf("error encoding subjects: %w", err)
	}

	query := squirrel.Insert("academic_records").
		Columns("sar_id", "semester", "academic_year", "sgpa", "cgpa",
			"credits_earned", "credits_total", "attendance_percentage",
			"backlog_count", "semester_result", "subjects").
		Values(rec.SARID, rec.Semester, rec.AcademicYear, rec.SGPA, rec.CGPA,
			rec.CreditsEarned, rec.CreditsTotal, rec.AttendancePercentage,
			rec.BacklogCount, rec.SemesterResult, subjects).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing insert: %w", err)
	}
	return id, nil
}

// Update rewrites a record scoped to its header; pgx.ErrNoRows means the id
// is unknown or not owned.
func (r *AcademicRepository) Update(ctx context.Context, rec *models.AcademicRecord) error {
	subjects, err := subdoc.EncodeSubjects(rec.Subjects)
	if err != nil {
		return fmt.Errorf("error encoding subjects: %w", err)
	}

	query := squirrel.Update("academic_records").
		Set("semester", rec.Semester).
		Set("academic_year", rec.AcademicYear).
		Set("sgpa", rec.SGPA).
		Set("cgpa", rec.CGPA).
		Set("credits_earned", rec.CreditsEarned).
		Set("credits_total", rec.CreditsTotal).
		Set("attendance_percentage", rec.AttendancePercentage).
		Set("backlog_count", rec.BacklogCount).
		Set("semester_result", rec.SemesterResult).
		Set("subjects", subjects).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ? AND sar_id = ?", rec.ID, rec.SARID).
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

// Delete hard-deletes a record scoped to its header
func (r *AcademicRepository) Delete(ctx context.Context, sarID, id int64) error {
	query := squirrel.Delete("academic_records").
		Where("id = ? AND sar_id = ?", id, sarID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing delete: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
