package resultrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetIfExists(ctx context.Context, province, date string) (*domain.DrawResult, error) {
	query := `
        SELECT province, draw_date, region, prizes, source, created_at
        FROM draw_results
        WHERE province = $1 AND draw_date = $2
    `
	var (
		result domain.DrawResult
		prizes []byte
	)
	err := r.db.QueryRow(ctx, query, province, date).
		Scan(&result.Province, &result.Date, &result.Region, &prizes, &result.Source, &result.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get draw result", zap.String("province", province), zap.String("date", date), zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(prizes, &result.Prizes); err != nil {
		return nil, fmt.Errorf("corrupt prizes for %s %s: %w", province, date, err)
	}
	return &result, nil
}

// CreateIfAbsent inserts result unless one exists for the same province and
// date. It reports whether this call created the row.
func (r *Repository) CreateIfAbsent(ctx context.Context, result *domain.DrawResult) (bool, error) {
	prizes, err := json.Marshal(result.Prizes)
	if err != nil {
		return false, fmt.Errorf("failed to encode prizes: %w", err)
	}

	query := `
        INSERT INTO draw_results (province, draw_date, region, prizes, source)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (province, draw_date) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, result.Province, result.Date, result.Region, prizes, result.Source)
	if err != nil {
		zap.L().Error("can't store draw result", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
