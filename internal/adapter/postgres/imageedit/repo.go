// Package imageedit implements the ImageEdit repository using PostgreSQL.
// Records follow an append-then-finalize lifecycle: Create inserts a row
// before the provider call, UpdateResult finalizes it with the outcome.
package imageedit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

const editColumns = `id, user_id, campaign_id, source_path, result_path, operation, provider,
	params, fallback, cost_usd, latency_ms, success, error_message, created_at, updated_at`

// Repo provides image-edit audit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new image-edit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new image-edit record and returns the persisted row.
// The row is expected to be pre-flight: Success=false and no result path.
func (r *Repo) Create(ctx context.Context, edit domain.ImageEdit) (domain.ImageEdit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	paramsJSON, err := json.Marshal(edit.Params)
	if err != nil {
		return domain.ImageEdit{}, fmt.Errorf("image_edit marshal params: %w", err)
	}

	row := q.QueryRow(ctx,
		`INSERT INTO image_edits (id, user_id, campaign_id, source_path, result_path, operation, provider,
		                          params, fallback, cost_usd, latency_ms, success, error_message, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+editColumns,
		edit.ID, edit.UserID, edit.CampaignID, edit.SourcePath, edit.ResultPath,
		string(edit.Operation), string(edit.Provider), paramsJSON,
		edit.Fallback, edit.CostUSD, edit.LatencyMs, edit.Success, edit.ErrorMessage,
		edit.CreatedAt, edit.UpdatedAt,
	)

	created, err := scanEdit(row)
	if err != nil {
		return domain.ImageEdit{}, postgres.MapError(err, "image_edit", edit.ID)
	}

	return created, nil
}

// UpdateResult finalizes a pending record with the call outcome. The
// updated_at column is refreshed by a database trigger.
func (r *Repo) UpdateResult(ctx context.Context, id uuid.UUID, outcome domain.EditOutcome) (domain.ImageEdit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE image_edits
		 SET result_path = $2, provider = $3, fallback = $4, cost_usd = $5,
		     latency_ms = $6, success = $7, error_message = $8
		 WHERE id = $1
		 RETURNING `+editColumns,
		id, outcome.ResultPath, string(outcome.Provider), outcome.Fallback,
		outcome.CostUSD, outcome.LatencyMs, outcome.Success, outcome.ErrorMessage,
	)

	updated, err := scanEdit(row)
	if err != nil {
		return domain.ImageEdit{}, postgres.MapError(err, "image_edit", id)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single image-edit record.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ImageEdit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+editColumns+` FROM image_edits WHERE id = $1`, id)

	edit, err := scanEdit(row)
	if err != nil {
		return domain.ImageEdit{}, postgres.MapError(err, "image_edit", id)
	}

	return edit, nil
}

// List returns image-edit records matching the filter, ordered by
// created_at DESC with offset pagination.
func (r *Repo) List(ctx context.Context, filter domain.EditFilter) ([]domain.ImageEdit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	filter.Normalize()

	builder := sq.Select(
		"id", "user_id", "campaign_id", "source_path", "result_path", "operation", "provider",
		"params", "fallback", "cost_usd", "latency_ms", "success", "error_message", "created_at", "updated_at",
	).
		From("image_edits").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.CampaignID != nil {
		builder = builder.Where(sq.Eq{"campaign_id": *filter.CampaignID})
	}
	if filter.Operation != nil {
		builder = builder.Where(sq.Eq{"operation": string(*filter.Operation)})
	}
	if filter.Provider != nil {
		builder = builder.Where(sq.Eq{"provider": string(*filter.Provider)})
	}
	if filter.Success != nil {
		builder = builder.Where(sq.Eq{"success": *filter.Success})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build image_edits list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list image_edits: %w", err)
	}
	defer rows.Close()

	edits := make([]domain.ImageEdit, 0)
	for rows.Next() {
		edit, err := scanEdit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image_edit: %w", err)
		}
		edits = append(edits, edit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list image_edits rows: %w", err)
	}

	return edits, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// scanEdit maps a single row into a domain.ImageEdit.
func scanEdit(row pgx.Row) (domain.ImageEdit, error) {
	var (
		edit       domain.ImageEdit
		operation  string
		provider   string
		paramsJSON []byte
	)

	err := row.Scan(
		&edit.ID, &edit.UserID, &edit.CampaignID, &edit.SourcePath, &edit.ResultPath,
		&operation, &provider, &paramsJSON,
		&edit.Fallback, &edit.CostUSD, &edit.LatencyMs, &edit.Success, &edit.ErrorMessage,
		&edit.CreatedAt, &edit.UpdatedAt,
	)
	if err != nil {
		return domain.ImageEdit{}, err
	}

	edit.Operation = domain.EditOperation(operation)
	edit.Provider = domain.Provider(provider)

	if len(paramsJSON) > 0 {
		params := make(map[string]any)
		if err := json.Unmarshal(paramsJSON, &params); err != nil {
			return domain.ImageEdit{}, fmt.Errorf("image_edit %s unmarshal params: %w", edit.ID, err)
		}
		edit.Params = params
	}

	return edit, nil
}
