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

var internshipColumns = []string{
	"id", "sar_id", "company", "position", "internship_type",
	"start_date", "end_date", "stipend", "stipend_currency", "work_mode",
	"description", "skills_learned", "technologies_used",
	"supervisor_name", "supervisor_email", "supervisor_phone",
	"performance_rating", "certificate_provided", "ppo_received",
	"offer_letter_url", "created_at", "updated_at",
}

// InternshipRepository handles database operations for internship stints
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func scanInternship(row pgx.Row) (*models.InternshipRecord, error) {
	var rec models.InternshipRecord
	var skills, technologies *string
	err := row.Scan(
		&rec.ID, &rec.SARID, &rec.Company, &rec.Position, &rec.InternshipType,
		&rec.StartDate, &rec.EndDate, &rec.Stipend, &rec.StipendCurrency, &rec.WorkMode,
		&rec.Description, &skills, &technologies,
		&rec.SupervisorName, &rec.SupervisorEmail, &rec.SupervisorPhone,
		&rec.PerformanceRating, &rec.CertificateProvided, &rec.PPOReceived,
		&rec.OfferLetterURL, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.SkillsLearned = subdoc.DecodeStringList(skills)
	rec.TechnologiesUsed = subdoc.DecodeStringList(technologies)
	return &rec, nil
}

// ListBySAR retrieves all internships for a header, most recent stint first
func (r *InternshipRepository) ListBySAR(ctx context.Context, sarID int64) ([]models.InternshipRecord, error) {
	query := squirrel.Select(internshipColumns...).
		From("internship_records").
		Where("sar_id = ?", sarID).
		OrderBy("start_date DESC", "created_at DESC").
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

	records := []models.InternshipRecord{}
	for rows.Next() {
		rec, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// GetByID retrieves one internship scoped to its header, returning
// (nil, nil) when it does not exist or belongs to another header.
func (r *InternshipRepository) GetByID(ctx context.Context, sarID, id int64) (*models.InternshipRecord, error) {
	query := squirrel.Select(internshipColumns...).
		From("internship_records").
		Where("id = ? AND sar_id = ?", id, sarID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rec, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return rec, nil
}

// Create inserts a new internship
func (r *InternshipRepository) Create(ctx context.Context, rec *models.InternshipRecord) (int64, error) {
	query := squirrel.Insert("internship_records").
		Columns("sar_id", "company", "position", "internship_type",
			"start_date", "end_date", "stipend", "stipend_currency", "work_mode",
			"description", "skills_learned", "technologies_used",
			"supervisor_name", "supervisor_email", "supervisor_phone",
			"performance_rating", "certificate_provided", "ppo_received",
			"offer_letter_url").
		Values(rec.SARID, rec.Company, rec.Position, rec.InternshipType,
			rec.StartDate, rec.EndDate, rec.Stipend, rec.StipendCurrency, rec.WorkMode,
			rec.Description,
			subdoc.EncodeStringList(rec.SkillsLearned),
			subdoc.EncodeStringList(rec.TechnologiesUsed),
			rec.SupervisorName, rec.SupervisorEmail, rec.SupervisorPhone,
			rec.PerformanceRating, rec.CertificateProvided, rec.PPOReceived,
			rec.OfferLetterURL).
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

// Update rewrites an internship scoped to its header; pgx.ErrNoRows means
// the id is unknown or not owned.
func (r *InternshipRepository) Update(ctx context.Context, rec *models.InternshipRecord) error {
	query := squirrel.Update("internship_records").
		Set("company", rec.Company).
		Set("position", rec.Position).
		Set("internship_type", rec.InternshipType).
		Set("start_date", rec.StartDate).
		Set("end_date", rec.EndDate).
		Set("stipend", rec.Stipend).
		Set("stipend_currency", rec.StipendCurrency).
		Set("work_mode", rec.WorkMode).
		Set("description", rec.Description).
		Set("skills_learned", subdoc.EncodeStringList(rec.SkillsLearned)).
		Set("technologies_used", subdoc.EncodeStringList(rec.TechnologiesUsed)).
		Set("supervisor_name", rec.SupervisorName).
		Set("supervisor_email", rec.SupervisorEmail).
		Set("supervisor_phone", rec.SupervisorPhone).
		Set("performance_rating", rec.PerformanceRating).
		Set("certificate_provided", rec.CertificateProvided).
		Set("ppo_received", rec.PPOReceived).
		Set("offer_letter_url", rec.OfferLetterURL).
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

// Delete hard-deletes an internship scoped to its header
func (r *InternshipRepository) Delete(ctx context.Context, sarID, id int64) error {
	query := squirrel.Delete("internship_records").
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
