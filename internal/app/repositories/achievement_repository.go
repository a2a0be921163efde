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

var achievementColumns = []string{
	"id", "sar_id", "title", "category", "subcategory", "level",
	"organization", "event_name", "event_date", "date_awarded",
	"position_rank", "participants_count", "team_size", "team_members",
	"prize_amount", "prize_currency", "certificate_url",
	"is_team_achievement", "verified",
	"media_urls", "skills_demonstrated", "technologies_used", "tags",
	"semester_achieved", "created_at", "updated_at",
}

// AchievementRepository handles database operations for accomplishments
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func scanAchievement(row pgx.Row) (*models.AchievementRecord, error) {
	var rec models.AchievementRecord
	var teamMembers, mediaURLs, skills, technologies, tags *string
	err := row.Scan(
		&rec.ID, &rec.SARID, &rec.Title, &rec.Category, &rec.Subcategory, &rec.Level,
		&rec.Organization, &rec.EventName, &rec.EventDate, &rec.DateAwarded,
		&rec.PositionRank, &rec.ParticipantsCount, &rec.TeamSize, &teamMembers,
		&rec.PrizeAmount, &rec.PrizeCurrency, &rec.CertificateURL,
		&rec.IsTeamAchievement, &rec.Verified,
		&mediaURLs, &skills, &technologies, &tags,
		&rec.SemesterAchieved, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.TeamMembers = subdoc.DecodeStringList(teamMembers)
	rec.MediaURLs = subdoc.DecodeStringList(mediaURLs)
	rec.SkillsDemonstrated = subdoc.DecodeStringList(skills)
	rec.TechnologiesUsed = subdoc.DecodeStringList(technologies)
	rec.Tags = subdoc.DecodeStringList(tags)
	return &rec, nil
}

// ListBySAR retrieves all achievements for a header, most recent event first.
// Rows without an event date sort after dated ones by creation time.
func (r *AchievementRepository) ListBySAR(ctx context.Context, sarID int64) ([]models.AchievementRecord, error) {
	query := squirrel.Select(achievementColumns...).
		From("achievement_records").
		Where("sar_id = ?", sarID).
		OrderBy("event_date DESC NULLS LAST", "created_at DESC").
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

	records := []models.AchievementRecord{}
	for rows.Next() {
		rec, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// GetByID retrieves one achievement scoped to its header, returning
// (nil, nil) when it does not exist or belongs to another header.
func (r *AchievementRepository) GetByID(ctx context.Context, sarID, id int64) (*models.AchievementRecord, error) {
	query := squirrel.Select(achievementColumns...).
		From("achievement_records").
		Where("id = ? AND sar_id = ?", id, sarID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rec, err := scanAchievement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return rec, nil
}

// Create inserts a new achievement
func (r *AchievementRepository) Create(ctx context.Context, rec *models.AchievementRecord) (int64, error) {
	query := squirrel.Insert("achievement_records").
		Columns("sar_id", "title", "category", "subcategory", "level",
			"organization", "event_name", "event_date", "date_awarded",
			"position_rank", "participants_count", "team_size", "team_members",
			"prize_amount", "prize_currency", "certificate_url",
			"is_team_achievement", "verified",
			"media_urls", "skills_demonstrated", "technologies_used", "tags",
			"semester_achieved").
		Values(rec.SARID, rec.Title, rec.Category, rec.Subcategory, rec.Level,
			rec.Organization, rec.EventName, rec.EventDate, rec.DateAwarded,
			rec.PositionRank, rec.ParticipantsCount, rec.TeamSize,
			subdoc.EncodeStringList(rec.TeamMembers),
			rec.PrizeAmount, rec.PrizeCurrency, rec.CertificateURL,
			rec.IsTeamAchievement, rec.Verified,
			subdoc.EncodeStringList(rec.MediaURLs),
			subdoc.EncodeStringList(rec.SkillsDemonstrated),
			subdoc.EncodeStringList(rec.TechnologiesUsed),
			subdoc.EncodeStringList(rec.Tags),
			rec.SemesterAchieved).
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

// Update rewrites an achievement scoped to its header; pgx.ErrNoRows means
// the id is unknown or not owned.
func (r *AchievementRepository) Update(ctx context.Context, rec *models.AchievementRecord) error {
	query := squirrel.Update("achievement_records").
		Set("title", rec.Title).
		Set("category", rec.Category).
		Set("subcategory", rec.Subcategory).
		Set("level", rec.Level).
		Set("organization", rec.Organization).
		Set("event_name", rec.EventName).
		Set("event_date", rec.EventDate).
		Set("date_awarded", rec.DateAwarded).
		Set("position_rank", rec.PositionRank).
		Set("participants_count", rec.ParticipantsCount).
		Set("team_size", rec.TeamSize).
		Set("team_members", subdoc.EncodeStringList(rec.TeamMembers)).
		Set("prize_amount", rec.PrizeAmount).
		Set("prize_currency", rec.PrizeCurrency).
		Set("certificate_url", rec.CertificateURL).
		Set("is_team_achievement", rec.IsTeamAchievement).
		Set("verified", rec.Verified).
		Set("media_urls", subdoc.EncodeStringList(rec.MediaURLs)).
		Set("skills_demonstrated", subdoc.EncodeStringList(rec.SkillsDemonstrated)).
		Set("technologies_used", subdoc.EncodeStringList(rec.TechnologiesUsed)).
		Set("tags", subdoc.EncodeStringList(rec.Tags)).
		Set("semester_achieved", rec.SemesterAchieved).
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

// Delete hard-deletes an achievement scoped to its header
func (r *AchievementRepository) Delete(ctx context.Context, sarID, id int64) error {
	query := squirrel.Delete("achievement_records").
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
