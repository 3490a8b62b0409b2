// Package campaign implements the Campaign repository using PostgreSQL.
package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

const campaignColumns = `id, user_id, name, brief, status, created_at, updated_at`

// Repo provides campaign persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new campaign repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new campaign and returns the persisted row.
func (r *Repo) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO campaigns (id, user_id, name, brief, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+campaignColumns,
		campaign.ID, campaign.UserID, campaign.Name, campaign.Brief,
		string(campaign.Status), campaign.CreatedAt, campaign.UpdatedAt,
	)

	created, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, postgres.MapError(err, "campaign", campaign.ID)
	}

	return created, nil
}

// GetByID returns a single campaign.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)

	campaign, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, postgres.MapError(err, "campaign", id)
	}

	return campaign, nil
}

// ListByUser returns a user's campaigns ordered by created_at DESC.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list campaigns by user: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns rows: %w", err)
	}

	return campaigns, nil
}

// UpdateStatus transitions a campaign to the given status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1
		 RETURNING `+campaignColumns,
		id, string(status),
	)

	updated, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, postgres.MapError(err, "campaign", id)
	}

	return updated, nil
}

// scanCampaign maps a single row into a domain.Campaign.
func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Brief, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.CampaignStatus(status)
	return c, nil
}
