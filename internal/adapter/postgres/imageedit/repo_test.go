package imageedit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/imageedit"
	"github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/testhelper"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*imageedit.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return imageedit.New(pool), pool
}

// buildEdit creates a pre-flight domain.ImageEdit (no result, Success=false).
func buildEdit(userID, campaignID uuid.UUID, operation domain.EditOperation, provider domain.Provider) domain.ImageEdit {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.ImageEdit{
		ID:         uuid.New(),
		UserID:     userID,
		CampaignID: campaignID,
		SourcePath: "campaigns/" + campaignID.String() + "/uploads/source.png",
		Operation:  operation,
		Provider:   provider,
		Params:     map[string]any{"prompt": "remove the watermark"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)

	input := buildEdit(user.ID, campaign.ID, domain.EditOperationInpaint, domain.ProviderStability)

	got, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != input.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, input.ID)
	}
	if got.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, user.ID)
	}
	if got.CampaignID != campaign.ID {
		t.Errorf("CampaignID mismatch: got %s, want %s", got.CampaignID, campaign.ID)
	}
	if got.SourcePath != input.SourcePath {
		t.Errorf("SourcePath mismatch: got %s, want %s", got.SourcePath, input.SourcePath)
	}
	if got.ResultPath != nil {
		t.Errorf("ResultPath should be nil before finalize, got %v", *got.ResultPath)
	}
	if got.Operation != domain.EditOperationInpaint {
		t.Errorf("Operation mismatch: got %s, want %s", got.Operation, domain.EditOperationInpaint)
	}
	if got.Provider != domain.ProviderStability {
		t.Errorf("Provider mismatch: got %s, want %s", got.Provider, domain.ProviderStability)
	}
	if got.Params["prompt"] != "remove the watermark" {
		t.Errorf("Params[prompt] mismatch: got %v", got.Params["prompt"])
	}
	if got.Success {
		t.Error("Success should be false before finalize")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

func TestRepo_Create_InvalidCampaignID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	input := buildEdit(user.ID, uuid.New(), domain.EditOperationUpscale, domain.ProviderStability)

	_, err := repo.Create(ctx, input)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown campaign (FK violation), got %v", err)
	}
}

func TestRepo_Create_DuplicateID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)
	input := buildEdit(user.ID, campaign.ID, domain.EditOperationOutpaint, domain.ProviderStability)

	if _, err := repo.Create(ctx, input); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, input)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate ID, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateResult tests
// ---------------------------------------------------------------------------

func TestRepo_UpdateResult_Success(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)
	input := buildEdit(user.ID, campaign.ID, domain.EditOperationRemoveBackground, domain.ProviderStability)

	created, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resultPath := "campaigns/" + campaign.ID.String() + "/edited/" + created.ID.String() + ".png"
	outcome := domain.EditOutcome{
		ResultPath: strPtr(resultPath),
		Provider:   domain.ProviderStability,
		Fallback:   false,
		CostUSD:    0.03,
		LatencyMs:  845,
		Success:    true,
	}

	got, err := repo.UpdateResult(ctx, created.ID, outcome)
	if err != nil {
		t.Fatalf("UpdateResult: unexpected error: %v", err)
	}

	if got.ResultPath == nil || *got.ResultPath != resultPath {
		t.Errorf("ResultPath mismatch: got %v, want %s", got.ResultPath, resultPath)
	}
	if !got.Success {
		t.Error("Success should be true after finalize")
	}
	if got.CostUSD != 0.03 {
		t.Errorf("CostUSD mismatch: got %v, want 0.03", got.CostUSD)
	}
	if got.LatencyMs != 845 {
		t.Errorf("LatencyMs mismatch: got %d, want 845", got.LatencyMs)
	}
	if got.ErrorMessage != nil {
		t.Errorf("ErrorMessage should be nil on success, got %v", *got.ErrorMessage)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdatedAt should be refreshed by trigger: created=%s updated=%s", created.UpdatedAt, got.UpdatedAt)
	}
}

func TestRepo_UpdateResult_FallbackProvider(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)
	input := buildEdit(user.ID, campaign.ID, domain.EditOperationSearchReplace, domain.ProviderStability)

	created, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Primary failed, fallback served the call: provider is rewritten.
	outcome := domain.EditOutcome{
		ResultPath: strPtr("campaigns/" + campaign.ID.String() + "/edited/" + created.ID.String() + ".png"),
		Provider:   domain.ProviderOpenAI,
		Fallback:   true,
		CostUSD:    0.02,
		LatencyMs:  1200,
		Success:    true,
	}

	got, err := repo.UpdateResult(ctx, created.ID, outcome)
	if err != nil {
		t.Fatalf("UpdateResult: %v", err)
	}

	if got.Provider != domain.ProviderOpenAI {
		t.Errorf("Provider should be rewritten to fallback: got %s, want %s", got.Provider, domain.ProviderOpenAI)
	}
	if !got.Fallback {
		t.Error("Fallback flag should be set")
	}
}

func TestRepo_UpdateResult_Failure(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)
	input := buildEdit(user.ID, campaign.ID, domain.EditOperationInpaint, domain.ProviderStability)

	created, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	outcome := domain.EditOutcome{
		Provider:     domain.ProviderStability,
		LatencyMs:    310,
		Success:      false,
		ErrorMessage: strPtr("provider returned 503"),
	}

	got, err := repo.UpdateResult(ctx, created.ID, outcome)
	if err != nil {
		t.Fatalf("UpdateResult: %v", err)
	}

	if got.Success {
		t.Error("Success should remain false")
	}
	if got.ResultPath != nil {
		t.Errorf("ResultPath should be nil on failure, got %v", *got.ResultPath)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "provider returned 503" {
		t.Errorf("ErrorMessage mismatch: got %v", got.ErrorMessage)
	}
}

func TestRepo_UpdateResult_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.UpdateResult(ctx, uuid.New(), domain.EditOutcome{Provider: domain.ProviderOpenAI})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown edit, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetByID tests
// ---------------------------------------------------------------------------

func TestRepo_GetByID_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)
	seeded := testhelper.SeedImageEdit(t, pool, user.ID, campaign.ID, true, 0.03)

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	if got.ID != seeded.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, seeded.ID)
	}
	if got.ResultPath == nil || *got.ResultPath != *seeded.ResultPath {
		t.Errorf("ResultPath mismatch: got %v, want %v", got.ResultPath, seeded.ResultPath)
	}
	if !got.Success {
		t.Error("Success mismatch: want true")
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestRepo_List_ByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user1 := testhelper.SeedUser(t, pool)
	user2 := testhelper.SeedUser(t, pool)
	campaign1 := testhelper.SeedCampaign(t, pool, user1.ID)
	campaign2 := testhelper.SeedCampaign(t, pool, user2.ID)

	for range 3 {
		testhelper.SeedImageEdit(t, pool, user1.ID, campaign1.ID, true, 0.03)
	}
	testhelper.SeedImageEdit(t, pool, user2.ID, campaign2.ID, true, 0.03)

	got, err := repo.List(ctx, domain.EditFilter{UserID: &user1.ID})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 edits for user1, got %d", len(got))
	}
	for _, edit := range got {
		if edit.UserID != user1.ID {
			t.Errorf("UserID mismatch: got %s, want %s", edit.UserID, user1.ID)
		}
	}
}

func TestRepo_List_ByCampaign_OrderedDesc(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)

	for range 4 {
		testhelper.SeedImageEdit(t, pool, user.ID, campaign.ID, true, 0.03)
	}

	got, err := repo.List(ctx, domain.EditFilter{CampaignID: &campaign.ID})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 edits, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Errorf("edits not in DESC order: [%d] %s > [%d] %s",
				i, got[i].CreatedAt, i-1, got[i-1].CreatedAt)
		}
	}
}

func TestRepo_List_SuccessFilter(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)

	testhelper.SeedImageEdit(t, pool, user.ID, campaign.ID, true, 0.03)
	testhelper.SeedImageEdit(t, pool, user.ID, campaign.ID, false, 0)
	testhelper.SeedImageEdit(t, pool, user.ID, campaign.ID, false, 0)

	failed := false
	got, err := repo.List(ctx, domain.EditFilter{CampaignID: &campaign.ID, Success: &failed})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 failed edits, got %d", len(got))
	}
	for _, edit := range got {
		if edit.Success {
			t.Error("expected only failed edits")
		}
	}
}

func TestRepo_List_Pagination(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	campaign := testhelper.SeedCampaign(t, pool, user.ID)

	for range 5 {
		testhelper.SeedImageEdit(t, pool, user.ID, campaign.ID, true, 0.03)
	}

	page1, err := repo.List(ctx, domain.EditFilter{CampaignID: &campaign.ID, Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List page1: %v", err)
	}
	page2, err := repo.List(ctx, domain.EditFilter{CampaignID: &campaign.ID, Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List page2: %v", err)
	}
	page3, err := repo.List(ctx, domain.EditFilter{CampaignID: &campaign.ID, Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("List page3: %v", err)
	}

	if len(page1) != 2 || len(page2) != 2 || len(page3) != 1 {
		t.Fatalf("page sizes: got %d/%d/%d, want 2/2/1", len(page1), len(page2), len(page3))
	}

	ids := make(map[uuid.UUID]bool)
	all := append(append(page1, page2...), page3...)
	for _, edit := range all {
		if ids[edit.ID] {
			t.Errorf("duplicate edit ID %s across pages", edit.ID)
		}
		ids[edit.ID] = true
	}
}

func TestRepo_List_EmptyResult(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	id := uuid.New()
	got, err := repo.List(ctx, domain.EditFilter{CampaignID: &id})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if got == nil {
		t.Fatal("result should not be nil (empty result should return empty slice)")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 edits, got %d", len(got))
	}
}
