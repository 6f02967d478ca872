package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// foreignKeyViolation is the SQLSTATE raised when a referenced row is missing.
const foreignKeyViolation = "23503"

const campaignColumns = `
	id, advertiser_id, name, slot, position, feed_tier, tier_slot,
	start_date, end_date, status, is_visible,
	image_url, video_url, destination_url, description, button_text, badge_text, verified,
	clicks, impressions, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// FindLive returns live campaigns of a slot, newest first.
func (r *CampaignRepository) FindLive(ctx context.Context, q port.LiveQuery) ([]domain.Campaign, error) {
	var limit *int
	if q.Limit > 0 {
		limit = &q.Limit
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM campaigns
        WHERE slot = $1
          AND status = 'active'
          AND is_visible IS DISTINCT FROM false
          AND start_date <= $2
          AND end_date >= $3
        ORDER BY created_at DESC, id
        LIMIT $4`, q.Slot, q.Now, q.DayStart, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// FindTierCandidates returns the active campaigns of a slot by clicks.
func (r *CampaignRepository) FindTierCandidates(ctx context.Context, slot domain.Slot) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM campaigns
        WHERE slot = $1 AND status = 'active'
        ORDER BY clicks DESC`, slot)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// AssignTier stores the tier position of a campaign.
func (r *CampaignRepository) AssignTier(ctx context.Context, a domain.Assignment) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET feed_tier = $2, tier_slot = $3, position = $4, updated_at = now()
        WHERE id = $1`, a.CampaignID, a.Tier, a.TierSlot, a.Position)
	return affected(tag, err, port.ErrCampaignNotFound)
}

// Archive ends a campaign and clears its tier position.
func (r *CampaignRepository) Archive(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET status = 'ended', feed_tier = NULL, tier_slot = NULL, position = NULL, updated_at = now()
        WHERE id = $1`, id)
	return affected(tag, err, port.ErrCampaignNotFound)
}

// RecordClick increments the counter and appends the click event in one
// transaction. The increment is a single UPDATE so concurrent clicks never
// lose updates.
func (r *CampaignRepository) RecordClick(ctx context.Context, click *domain.Click) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	tag, err := tx.Exec(ctx, `UPDATE campaigns SET clicks = clicks + 1 WHERE id = $1`, click.CampaignID)
	if err = affected(tag, err, port.ErrCampaignNotFound); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_clicks (id, campaign_id, placement, created_at) VALUES ($1,$2,$3,$4)`,
		click.ID, click.CampaignID, click.Placement, click.CreatedAt)
	return err
}

// AddImpressions increments the impression counter of every listed campaign.
func (r *CampaignRepository) AddImpressions(ctx context.Context, ids []uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET impressions = impressions + 1 WHERE id = ANY($1::uuid[])`, uuidStrings(ids))
	return err
}

// CountClicks counts click events of a campaign since the given instant.
func (r *CampaignRepository) CountClicks(ctx context.Context, id uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaign_clicks WHERE campaign_id = $1 AND created_at >= $2`, id, since).Scan(&n)
	return n, err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns matching f, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if f.Slot != "" {
		args = append(args, f.Slot)
		where = append(where, fmt.Sprintf("slot = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// CreateCampaign inserts c. A missing advertiser yields port.ErrAdvertiserNotFound.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		c.ID, c.AdvertiserID, c.Name, c.Slot, c.Position, c.FeedTier, c.TierSlot,
		c.StartDate, c.EndDate, c.Status, c.IsVisible,
		c.Creative.ImageURL, c.Creative.VideoURL, c.Creative.DestinationURL, c.Creative.Description,
		c.Creative.ButtonText, c.Creative.BadgeText, c.Creative.Verified,
		c.Clicks, c.Impressions, c.CreatedAt, c.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return port.ErrAdvertiserNotFound
	}
	return err
}

// UpdateCampaign overwrites the mutable fields of c. Counters are not
// touched so concurrent clicks are never overwritten.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
        name = $2, slot = $3, position = $4, feed_tier = $5, tier_slot = $6,
        start_date = $7, end_date = $8, status = $9, is_visible = $10,
        image_url = $11, video_url = $12, destination_url = $13, description = $14,
        button_text = $15, badge_text = $16, verified = $17, updated_at = $18
        WHERE id = $1`,
		c.ID, c.Name, c.Slot, c.Position, c.FeedTier, c.TierSlot,
		c.StartDate, c.EndDate, c.Status, c.IsVisible,
		c.Creative.ImageURL, c.Creative.VideoURL, c.Creative.DestinationURL, c.Creative.Description,
		c.Creative.ButtonText, c.Creative.BadgeText, c.Creative.Verified, c.UpdatedAt)
	return affected(tag, err, port.ErrCampaignNotFound)
}

// DeleteCampaign removes a campaign and, by cascade, its click events.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return affected(tag, err, port.ErrCampaignNotFound)
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.Name,
		&c.Slot,
		&c.Position,
		&c.FeedTier,
		&c.TierSlot,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.IsVisible,
		&c.Creative.ImageURL,
		&c.Creative.VideoURL,
		&c.Creative.DestinationURL,
		&c.Creative.Description,
		&c.Creative.ButtonText,
		&c.Creative.BadgeText,
		&c.Creative.Verified,
		&c.Clicks,
		&c.Impressions,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// affected maps a zero row count to notFound.
func affected(tag pgconn.CommandTag, err error, notFound error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
