package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemasghani/beReactNative/internal/models"
)

type reportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, rep *models.Report) error {
	if rep.Date.IsZero() {
		return fmt.Errorf("%w: report date required", ErrInvalidInput)
	}

	sql := `
		INSERT INTO report (
			date,
			income,
			outcome
	) VALUES ($1, $2, $3)
	RETURNING report_id
	`

	err := r.db.QueryRow(ctx, sql,
		rep.Date,
		rep.Income,
		rep.Outcome,
	).Scan(&rep.ReportID)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	return nil
}

func (r *reportRepo) GetAll(ctx context.Context) ([]models.Report, error) {
	sql := `
	SELECT
	report_id,
	date,
	income,
	outcome
	FROM report
	ORDER BY report_id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all reports: %w", err)
	}

	defer rows.Close()

	var reports []models.Report

	for rows.Next() {
		var rep models.Report

		err := rows.Scan(&rep.ReportID,
			&rep.Date,
			&rep.Income,
			&rep.Outcome,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reports: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return reports, nil
}
