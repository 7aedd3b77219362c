package repository

import (
	"context"
	"fmt"
	"time"

	"ecoclean/internal/domain/device"
	"ecoclean/internal/infrastructure/database"
)

type usageRepository struct {
	db *database.DB
}

// NewUsageRepository creates a new app usage repository
func NewUsageRepository(db *database.DB) device.UsageRepository {
	return &usageRepository{db: db}
}

// Upsert stores the reports in one transaction. A report never moves a
// package's last use backwards.
func (r *usageRepository) Upsert(ctx context.Context, records []device.UsageRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO app_usage (package_name, app_name, last_time_used, reported_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(package_name) DO UPDATE SET
			app_name = CASE WHEN excluded.app_name != '' THEN excluded.app_name ELSE app_usage.app_name END,
			last_time_used = MAX(app_usage.last_time_used, excluded.last_time_used),
			reported_at = excluded.reported_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.PackageName, rec.AppName, rec.LastTimeUsed.UnixMilli(), now); err != nil {
			return fmt.Errorf("failed to store usage for %s: %w", rec.PackageName, err)
		}
	}

	return tx.Commit()
}

func (r *usageRepository) List(ctx context.Context) ([]device.UsageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT package_name, app_name, last_time_used FROM app_usage ORDER BY last_time_used ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []device.UsageRecord
	for rows.Next() {
		var rec device.UsageRecord
		var lastUsed int64
		if err := rows.Scan(&rec.PackageName, &rec.AppName, &lastUsed); err != nil {
			return nil, err
		}
		rec.LastTimeUsed = time.UnixMilli(lastUsed)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *usageRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM app_usage`).Scan(&count)
	return count, err
}
