package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"erogram-ads/internal/core/domain"
)

// Seed inserts demo advertisers, campaigns for every slot and a spread of
// click events. Advertisers and campaigns have deterministic ids and are
// inserted once; click events are appended on every run.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	advertisers := []struct {
		id   uuid.UUID
		name string
	}{
		{uuid.NewSHA1(uuid.NameSpaceURL, []byte("seed:advertiser:1")), "Primary Partner"},
		{uuid.NewSHA1(uuid.NameSpaceURL, []byte("seed:advertiser:2")), "Secondary Partner"},
		{uuid.NewSHA1(uuid.NameSpaceURL, []byte("seed:advertiser:3")), "Independent"},
	}
	for _, a := range advertisers {
		_, err := db.Exec(ctx, `INSERT INTO advertisers (id, name, active, created_at)
VALUES ($1,$2,true,now()) ON CONFLICT DO NOTHING`, a.id, a.name)
		if err != nil {
			return err
		}
	}

	slots := []domain.Slot{
		domain.SlotFeed, domain.SlotSidebarFeed, domain.SlotTopBanner,
		domain.SlotNavbarCTA, domain.SlotFilterCTA, domain.SlotJoinCTA,
	}
	for _, slot := range slots {
		count := 2
		if slot.IsFeed() {
			count = 8
		}
		for i := 1; i <= count; i++ {
			id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("seed:campaign:%s:%d", slot, i)))
			adv := advertisers[r.Intn(len(advertisers))].id
			image, video := "", ""
			if !slot.IsCTA() {
				image = fmt.Sprintf("https://example.com/creative/%s-%d.png", slot, i)
				if i%3 == 0 {
					video = fmt.Sprintf("https://example.com/creative/%s-%d.mp4", slot, i)
				}
			}
			_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, slot, start_date, end_date, status,
     image_url, video_url, destination_url, description, button_text, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,'active',$7,$8,$9,$10,$11,$12,$12) ON CONFLICT DO NOTHING`,
				id, adv, fmt.Sprintf("%s #%d", slot, i), slot,
				now.AddDate(0, 0, -1), now.AddDate(0, 1, 0),
				image, video,
				fmt.Sprintf("https://t.me/seed_%d", i),
				fmt.Sprintf("Demo campaign %d for %s", i, slot),
				"Join",
				now.Add(-time.Duration(i)*time.Hour))
			if err != nil {
				return err
			}

			// generate clicks over the last month
			clicks := r.Intn(40)
			for j := 0; j < clicks; j++ {
				at := now.Add(-time.Duration(r.Intn(30*24)) * time.Hour)
				_, err = db.Exec(ctx, `INSERT INTO campaign_clicks (id, campaign_id, placement, created_at)
VALUES ($1,$2,$3,$4)`, uuid.New(), id, string(slot), at)
				if err != nil {
					return err
				}
			}
			_, err = db.Exec(ctx, `UPDATE campaigns
SET clicks = (SELECT count(*) FROM campaign_clicks WHERE campaign_id = $1)
WHERE id = $1`, id)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
