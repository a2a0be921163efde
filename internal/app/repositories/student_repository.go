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

// fieldColumns maps the dotted field paths used by the review workflow to
// student table columns. Keys mirror the reviewable paths known to
// models.IsReviewableFieldPath. Paths outside this map cannot be applied by a
// resubmission and are skipped.
var fieldColumns = map[string]string{
	"firstName":           "first_name",
	"middleName":          "middle_name",
	"lastName":            "last_name",
	"email":               "email",
	"mobile":              "mobile",
	"dateOfBirth":         "date_of_birth",
	"address":             "address",
	"course":              "course",
	"father.name":         "father_name",
	"father.mobile":       "father_mobile",
	"mother.name":         "mother_name",
	"mother.mobile":       "mother_mobile",
	"documents.photo":     "photo_url",
	"documents.marksheet": "marksheet_url",
}

// FieldColumn resolves a dotted field path to its column, reporting whether
// the path is known.
func FieldColumn(path string) (string, bool) {
	column, ok := fieldColumns[path]
	return column, ok
}

var studentColumns = []string{
	"id", "email", "first_name", "middle_name", "last_name", "course",
	"mobile", "date_of_birth", "address",
	"father_name", "father_mobile", "mother_name", "mother_mobile",
	"photo_url", "marksheet_url",
	"status", "declined_fields", "created_at", "updated_at",
}

// StudentRepository handles database operations for applicants
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	var declinedFields *string
	err := row.Scan(
		&s.ID, &s.Email, &s.FirstName, &s.MiddleName, &s.LastName, &s.Course,
		&s.Mobile, &s.DateOfBirth, &s.Address,
		&s.FatherName, &s.FatherMobile, &s.MotherName, &s.MotherMobile,
		&s.PhotoURL, &s.MarksheetURL,
		&s.Status, &declinedFields, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.DeclinedFields = subdoc.DecodeStringList(declinedFields)
	return &s, nil
}

// GetByID retrieves a student by ID, returning (nil, nil) when absent
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return student, nil
}

// GetByEmail retrieves a student by email, returning (nil, nil) when absent
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return student, nil
}

// List retrieves students ordered by creation time, optionally filtered by
// status, with the total row count for pagination.
func (r *StudentRepository) List(ctx context.Context, status *models.StudentStatus, offset uint64, limit int) ([]models.Student, int64, error) {
	columns := append([]string{}, studentColumns...)
	columns = append(columns, "COUNT(*) OVER()")
	query := squirrel.Select(columns...).
		From("students").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	var total int64
	for rows.Next() {
		var s models.Student
		var declinedFields *string
		err := rows.Scan(
			&s.ID, &s.Email, &s.FirstName, &s.MiddleName, &s.LastName, &s.Course,
			&s.Mobile, &s.DateOfBirth, &s.Address,
			&s.FatherName, &s.FatherMobile, &s.MotherName, &s.MotherMobile,
			&s.PhotoURL, &s.MarksheetURL,
			&s.Status, &declinedFields, &s.CreatedAt, &s.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		s.DeclinedFields = subdoc.DecodeStringList(declinedFields)
		students = append(students, s)
	}

	return students, total, nil
}

// UpdateStatus sets the review status and the declined field list in one
// statement so the two can never disagree.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.StudentStatus, declinedFields []string) error {
	query := squirrel.Update("students").
		Set("status", string(status)).
		Set("declined_fields", subdoc.EncodeStringList(declinedFields)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
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

// ApplyFieldUpdates writes resubmitted values into their mapped columns and
// replaces status and declined_fields in the same statement. Paths without a
// column mapping are skipped; the caller has already intersected the paths
// with the declined set.
func (r *StudentRepository) ApplyFieldUpdates(ctx context.Context, id int64, updates map[string]string, status models.StudentStatus, declinedFields []string) error {
	query := squirrel.Update("students").
		Set("status", string(status)).
		Set("declined_fields", subdoc.EncodeStringList(declinedFields)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	for path, value := range updates {
		column, ok := FieldColumn(path)
		if !ok {
			continue
		}
		query = query.Set(column, value)
	}

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
