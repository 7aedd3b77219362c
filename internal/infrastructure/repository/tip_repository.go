package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ecoclean/internal/domain/tip"
	"ecoclean/internal/infrastructure/database"
)

type tipRepository struct {
	db *database.DB
}

// NewTipRepository creates a new tip history repository
func NewTipRepository(db *database.DB) tip.Repository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(ctx context.Context, t *tip.Tip) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tips (id, mode, item_count, total_size_bytes, text, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Mode, t.ItemCount, t.TotalSizeBytes, t.Text, t.Source, t.CreatedAt.UTC(),
	)
	return err
}

func (r *tipRepository) ListRecent(ctx context.Context, limit int) ([]tip.Tip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mode, item_count, total_size_bytes, text, source, created_at
		 FROM tips ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tips := make([]tip.Tip, 0)
	for rows.Next() {
		var t tip.Tip
		if err := rows.Scan(&t.ID, &t.Mode, &t.ItemCount, &t.TotalSizeBytes, &t.Text, &t.Source, &t.CreatedAt); err != nil {
			return nil, err
		}
		tips = append(tips, t)
	}
	return tips, rows.Err()
}
