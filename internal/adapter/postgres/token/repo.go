// Package token implements the RefreshToken repository using PostgreSQL.
// Tokens are stored hashed; plaintext never reaches this layer.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token domain.RefreshToken) (domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at, revoked_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+tokenColumns,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt, token.RevokedAt,
	)

	created, err := scanToken(row)
	if err != nil {
		return domain.RefreshToken{}, postgres.MapError(err, "refresh_token", token.ID)
	}

	return created, nil
}

// GetByHash returns a token by its hash.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+tokenColumns+` FROM refresh_tokens WHERE token_hash = $1`, tokenHash)

	token, err := scanToken(row)
	if err != nil {
		return domain.RefreshToken{}, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return token, nil
}

// Revoke marks a token as revoked. Revoking an already-revoked token is a no-op.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID, revokedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`,
		id, revokedAt,
	)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish missing token from already-revoked.
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return postgres.MapError(err, "refresh_token", id)
		}
		if !exists {
			return fmt.Errorf("refresh_token %s: %w", id, domain.ErrNotFound)
		}
	}

	return nil
}

// RevokeAllForUser revokes every live token belonging to a user.
// Returns the number of tokens revoked.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID, revokedAt time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = $2 WHERE user_id = $1 AND revoked_at IS NULL`,
		userID, revokedAt,
	)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", userID)
	}

	return tag.RowsAffected(), nil
}

// DeleteExpired removes tokens that expired before the cutoff. Used by the
// cleanup job. Returns the number of tokens deleted.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}

// scanToken maps a single row into a domain.RefreshToken.
func scanToken(row pgx.Row) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return domain.RefreshToken{}, err
	}
	return t, nil
}
