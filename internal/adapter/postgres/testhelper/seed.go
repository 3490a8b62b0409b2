package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a MEMBER user with default values and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.RoleMember)
}

// SeedAdmin creates an ADMIN user and returns it.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.RoleAdmin)
}

func seedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCampaign creates an ACTIVE campaign owned by the given user.
func SeedCampaign(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Campaign {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	brief := "Spring launch brief " + suffix
	campaign := domain.Campaign{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Campaign " + suffix,
		Brief:     &brief,
		Status:    domain.CampaignStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO campaigns (id, user_id, name, brief, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		campaign.ID, campaign.UserID, campaign.Name, campaign.Brief, string(campaign.Status), campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCampaign insert campaign: %v", err)
	}

	return campaign
}

// SeedProduct creates an active product in the given category.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, category string) domain.Product {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	description := "Product description " + suffix
	imagePath := "products/" + suffix + ".png"
	product := domain.Product{
		ID:          uuid.New(),
		Name:        "Product " + suffix,
		Description: &description,
		Category:    category,
		ImagePath:   &imagePath,
		PriceCents:  1999,
		Currency:    "USD",
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, name, description, category, image_path, price_cents, currency, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Name, product.Description, product.Category, product.ImagePath,
		product.PriceCents, product.Currency, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct insert product: %v", err)
	}

	return product
}

// SeedImageEdit inserts a finalized image_edits row for the given user and
// campaign. success controls both the success flag and whether a result path
// is set.
func SeedImageEdit(t *testing.T, pool *pgxpool.Pool, userID, campaignID uuid.UUID, success bool, costUSD float64) domain.ImageEdit {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	edit := domain.ImageEdit{
		ID:         uuid.New(),
		UserID:     userID,
		CampaignID: campaignID,
		SourcePath: "campaigns/" + campaignID.String() + "/uploads/src-" + suffix + ".png",
		Operation:  domain.EditOperationInpaint,
		Provider:   domain.ProviderStability,
		Params:     map[string]any{"prompt": "test " + suffix},
		CostUSD:    costUSD,
		LatencyMs:  120,
		Success:    success,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if success {
		resultPath := "campaigns/" + campaignID.String() + "/edited/" + edit.ID.String() + ".png"
		edit.ResultPath = &resultPath
	} else {
		msg := "provider rejected request"
		edit.ErrorMessage = &msg
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO image_edits (id, user_id, campaign_id, source_path, result_path, operation, provider,
		                          params, fallback, cost_usd, latency_ms, success, error_message, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		edit.ID, edit.UserID, edit.CampaignID, edit.SourcePath, edit.ResultPath,
		string(edit.Operation), string(edit.Provider), []byte(`{"prompt":"test `+suffix+`"}`),
		edit.Fallback, edit.CostUSD, edit.LatencyMs, edit.Success, edit.ErrorMessage,
		edit.CreatedAt, edit.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedImageEdit insert image_edit: %v", err)
	}

	return edit
}
