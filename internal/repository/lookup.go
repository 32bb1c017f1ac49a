package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Lookup is one recorded weather fetch attempt.
type Lookup struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	City       string    `db:"city"        json:"city"`
	Outcome    string    `db:"outcome"     json:"outcome"`     // "success" or a types.Kind name
	StatusCode int       `db:"status_code" json:"status_code"` // 0 when no HTTP response was received
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// LookupRepository stores and lists lookup history.
type LookupRepository interface {
	Record(ctx context.Context, l Lookup) error
	Recent(ctx context.Context, limit int) ([]Lookup, error)
}

type pgLookupRepo struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLookupRepository(db *sqlx.DB, logger *zap.Logger) LookupRepository {
	return &pgLookupRepo{db: db, logger: logger}
}

func (r *pgLookupRepo) Record(ctx context.Context, l Lookup) error {
	const q = `
        INSERT INTO lookups (id, city, outcome, status_code, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	if _, err := r.db.ExecContext(ctx, q, l.ID, l.City, l.Outcome, l.StatusCode, l.CreatedAt); err != nil {
		r.logger.Error("failed to record lookup",
			zap.String("city", l.City),
			zap.String("outcome", l.Outcome),
			zap.Error(err),
		)
		return err
	}

	r.logger.Debug("lookup recorded",
		zap.String("id", l.ID.String()),
		zap.String("city", l.City),
		zap.String("outcome", l.Outcome),
	)
	return nil
}

func (r *pgLookupRepo) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	const q = `
        SELECT id, city, outcome, status_code, created_at
        FROM lookups
        ORDER BY created_at DESC
        LIMIT $1;
    `
	var lookups []Lookup
	if err := r.db.SelectContext(ctx, &lookups, q, limit); err != nil {
		r.logger.Error("failed to fetch recent lookups", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("fetched recent lookups", zap.Int("limit", limit), zap.Int("count", len(lookups)))
	return lookups, nil
}
