package repository

import (
	"encoding/json"

	"github.com/zivo-app/business-hours/backend/internal/domain"
)

func (r *Repository) CreateSaveReport(report *domain.SaveReport) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	outcomes, err := json.Marshal(report.Outcomes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO hours_save_reports (id, business_id, committed, skipped, failed, outcomes, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	params := []any{
		report.ID,
		report.BusinessID,
		report.Committed,
		report.Skipped,
		report.Failed,
		string(outcomes),
		report.StartedAt,
		report.FinishedAt,
	}
	if _, err := r.dbpool.ExecContext(ctx, query, params...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSaveReportsByBusinessID(businessID string, limit int) ([]*domain.SaveReport, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, committed, skipped, failed, outcomes, started_at, finished_at
		FROM hours_save_reports
		WHERE business_id = $1
		ORDER BY started_at DESC
		LIMIT $2
	`

	rows, err := r.dbpool.QueryContext(ctx, query, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*domain.SaveReport, 0, limit)
	for rows.Next() {
		report := &domain.SaveReport{
			BusinessID: businessID,
		}

		var outcomes []byte
		dst := []any{
			&report.ID,
			&report.Committed,
			&report.Skipped,
			&report.Failed,
			&outcomes,
			&report.StartedAt,
			&report.FinishedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(outcomes, &report.Outcomes); err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
