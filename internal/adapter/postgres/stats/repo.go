// Package stats implements aggregate reporting queries over image_edits.
// These replace read-only SQL views with repository methods so the shapes
// stay in Go code and under test.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres"
	"github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/imageedit"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

const (
	// Users with fewer edits in the window are never flagged, whatever
	// their failure rate.
	flagMinEdits = 5

	// Failure rate above which a user appears in the compliance summary.
	flagFailureRate = 0.5
)

// Repo provides reporting aggregates backed by PostgreSQL.
type Repo struct {
	pool  *pgxpool.Pool
	edits *imageedit.Repo
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, edits: imageedit.New(pool)}
}

// UserEditStatistics returns per-user edit totals, success rate, spend and
// average latency across the user's whole history.
func (r *Repo) UserEditStatistics(ctx context.Context, userID uuid.UUID) (domain.UserEditStatistics, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stats := domain.UserEditStatistics{UserID: userID}

	err := q.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE success),
		        COUNT(*) FILTER (WHERE NOT success),
		        COALESCE(SUM(cost_usd), 0),
		        COALESCE(AVG(latency_ms), 0),
		        MAX(created_at)
		 FROM image_edits
		 WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalEdits, &stats.Succeeded, &stats.Failed,
		&stats.TotalCostUSD, &stats.AvgLatencyMs, &stats.LastEditAt)
	if err != nil {
		return domain.UserEditStatistics{}, postgres.MapError(err, "user_edit_statistics", userID)
	}

	if stats.TotalEdits > 0 {
		stats.SuccessRate = float64(stats.Succeeded) / float64(stats.TotalEdits)
	}

	return stats, nil
}

// CampaignEditHistory returns a campaign's edit totals together with its
// most recent edits (up to recentLimit, newest first).
func (r *Repo) CampaignEditHistory(ctx context.Context, campaignID uuid.UUID, recentLimit int) (domain.CampaignEditHistory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	history := domain.CampaignEditHistory{CampaignID: campaignID}

	err := q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(cost_usd), 0)
		 FROM image_edits
		 WHERE campaign_id = $1`,
		campaignID,
	).Scan(&history.TotalEdits, &history.TotalCostUSD)
	if err != nil {
		return domain.CampaignEditHistory{}, postgres.MapError(err, "campaign_edit_history", campaignID)
	}

	recent, err := r.edits.List(ctx, domain.EditFilter{CampaignID: &campaignID, Limit: recentLimit})
	if err != nil {
		return domain.CampaignEditHistory{}, fmt.Errorf("campaign_edit_history recent edits: %w", err)
	}
	history.RecentEdits = recent

	return history, nil
}

// ComplianceSummary builds the platform-wide report for [from, to):
// totals, failures, spend per provider, and users over the failure-rate
// threshold.
func (r *Repo) ComplianceSummary(ctx context.Context, from, to time.Time) (domain.ComplianceSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	summary := domain.ComplianceSummary{
		WindowStart: from,
		WindowEnd:   to,
	}

	err := q.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE NOT success),
		        COALESCE(SUM(cost_usd), 0)
		 FROM image_edits
		 WHERE created_at >= $1 AND created_at < $2`,
		from, to,
	).Scan(&summary.TotalEdits, &summary.FailedEdits, &summary.TotalCostUSD)
	if err != nil {
		return domain.ComplianceSummary{}, fmt.Errorf("compliance summary totals: %w", err)
	}

	spend, err := r.providerSpend(ctx, from, to)
	if err != nil {
		return domain.ComplianceSummary{}, err
	}
	summary.SpendByProvider = spend

	flagged, err := r.flaggedUsers(ctx, from, to)
	if err != nil {
		return domain.ComplianceSummary{}, err
	}
	summary.FlaggedUsers = flagged

	return summary, nil
}

func (r *Repo) providerSpend(ctx context.Context, from, to time.Time) ([]domain.ProviderSpend, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT provider, COALESCE(SUM(cost_usd), 0), COUNT(*)
		 FROM image_edits
		 WHERE created_at >= $1 AND created_at < $2
		 GROUP BY provider
		 ORDER BY provider`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("compliance summary provider spend: %w", err)
	}
	defer rows.Close()

	spend := make([]domain.ProviderSpend, 0)
	for rows.Next() {
		var (
			s        domain.ProviderSpend
			provider string
		)
		if err := rows.Scan(&provider, &s.CostUSD, &s.Calls); err != nil {
			return nil, fmt.Errorf("scan provider spend: %w", err)
		}
		s.Provider = domain.Provider(provider)
		spend = append(spend, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("provider spend rows: %w", err)
	}

	return spend, nil
}

func (r *Repo) flaggedUsers(ctx context.Context, from, to time.Time) ([]domain.FlaggedUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT e.user_id, u.email,
		        COUNT(*) AS total,
		        COUNT(*) FILTER (WHERE NOT e.success) AS failed
		 FROM image_edits e
		 JOIN users u ON u.id = e.user_id
		 WHERE e.created_at >= $1 AND e.created_at < $2
		 GROUP BY e.user_id, u.email
		 HAVING COUNT(*) >= $3
		    AND COUNT(*) FILTER (WHERE NOT e.success)::float / COUNT(*) > $4
		 ORDER BY COUNT(*) FILTER (WHERE NOT e.success)::float / COUNT(*) DESC`,
		from, to, flagMinEdits, flagFailureRate,
	)
	if err != nil {
		return nil, fmt.Errorf("compliance summary flagged users: %w", err)
	}
	defer rows.Close()

	flagged := make([]domain.FlaggedUser, 0)
	for rows.Next() {
		var f domain.FlaggedUser
		if err := rows.Scan(&f.UserID, &f.Email, &f.TotalEdits, &f.Failed); err != nil {
			return nil, fmt.Errorf("scan flagged user: %w", err)
		}
		if f.TotalEdits > 0 {
			f.FailureRate = float64(f.Failed) / float64(f.TotalEdits)
		}
		flagged = append(flagged, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flagged users rows: %w", err)
	}

	return flagged, nil
}
