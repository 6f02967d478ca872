package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// AdvertiserRepository implements port.AdvertiserRepository using pgxpool.
type AdvertiserRepository struct {
	pool *pgxpool.Pool
}

// NewAdvertiserRepository returns a new repository instance.
func NewAdvertiserRepository(pool *pgxpool.Pool) *AdvertiserRepository {
	return &AdvertiserRepository{pool: pool}
}

func (r *AdvertiserRepository) CreateAdvertiser(ctx context.Context, a *domain.Advertiser) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO advertisers (id, name, active, created_at) VALUES ($1,$2,$3,$4)`,
		a.ID, a.Name, a.Active, a.CreatedAt)
	return err
}

func (r *AdvertiserRepository) ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, active, created_at FROM advertisers ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Advertiser, error) {
		var a domain.Advertiser
		err := row.Scan(&a.ID, &a.Name, &a.Active, &a.CreatedAt)
		return a, err
	})
}

// SetAdvertiserActive toggles the advertiser. Its campaigns are not touched.
func (r *AdvertiserRepository) SetAdvertiserActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE advertisers SET active = $2 WHERE id = $1`, id, active)
	return affected(tag, err, port.ErrAdvertiserNotFound)
}
