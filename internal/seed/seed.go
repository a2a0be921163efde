// Package seed inserts demo data for development environments.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campuskit/admitportal/internal/db"
	"github.com/campuskit/admitportal/internal/pkg/subdoc"
)

// CreateDefaultData inserts a couple of demo applicants when the students
// table is empty. It runs in one transaction so a half-seeded database never
// survives a failure.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	var count int
	if err := database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count students: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("students", count).Msg("Students already present, skipping seed")
		return nil
	}

	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var pendingID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO students (email, first_name, last_name, course, mobile, date_of_birth, address,
				father_name, father_mobile, mother_name, mother_mobile, status, declined_fields)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending', '[]')
			RETURNING id`,
			"asha.verma@example.com", "Asha", "Verma", "CSE",
			"9876543210", "2005-01-15", "12 MG Road, Pune",
			"Ramesh Verma", "9876543211", "Sunita Verma", "9876543212",
		).Scan(&pendingID)
		if err != nil {
			return fmt.Errorf("failed to insert pending student: %w", err)
		}

		declinedFields := subdoc.EncodeStringList([]string{"father.mobile", "documents.photo"})
		var declinedID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO students (email, first_name, last_name, course, mobile, status, declined_fields)
			VALUES ($1, $2, $3, $4, $5, 'declined', $6)
			RETURNING id`,
			"rohan.mehta@example.com", "Rohan", "Mehta", "ECE", "9876500001", declinedFields,
		).Scan(&declinedID)
		if err != nil {
			return fmt.Errorf("failed to insert declined student: %w", err)
		}

		var headerID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO sar_headers (student_id, enrollment_no, microsoft_email, current_semester)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			pendingID, "EN2023051", "asha.verma@college.edu", 3,
		).Scan(&headerID)
		if err != nil {
			return fmt.Errorf("failed to insert header: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO academic_records (sar_id, semester, academic_year, sgpa, cgpa, subjects)
			VALUES ($1, 1, '2023-24', 8.4, 8.4, '[]'),
			       ($1, 2, '2023-24', 8.0, 8.2, '[]')`,
			headerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert academic records: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Msg("Demo data seeded")
	return nil
}
