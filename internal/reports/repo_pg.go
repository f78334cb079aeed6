package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report row.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (id, language, product_idea, target_user, problem, why_it_works, monetization, output, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	outputPayload, err := json.Marshal(report.Output)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	var monetization any
	if report.Monetization != "" {
		monetization = report.Monetization
	}

	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.Language,
		report.ProductIdea,
		report.TargetUser,
		report.Problem,
		report.WhyItWorks,
		monetization,
		outputPayload,
		report.CreatedAt,
	)
	return err
}

// GetByID returns a report by ID or ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Report, error) {
	const query = `
SELECT id, language, product_idea, target_user, problem, why_it_works, monetization, output, created_at
FROM reports
WHERE id = $1
LIMIT 1`

	var report Report
	var monetization sql.NullString
	var output []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.Language,
		&report.ProductIdea,
		&report.TargetUser,
		&report.Problem,
		&report.WhyItWorks,
		&monetization,
		&output,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}

	if monetization.Valid {
		report.Monetization = monetization.String
	}
	if err := json.Unmarshal(output, &report.Output); err != nil {
		return Report{}, fmt.Errorf("unmarshal output: %w", err)
	}
	return report, nil
}
