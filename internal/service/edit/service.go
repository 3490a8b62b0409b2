// Package edit implements the image-editing flow: audit row, routed provider
// call, artifact upload, finalization.
package edit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
	"github.com/campaignkit/campaignkit-backend/internal/router"
)

// editRepo defines the image-edit repository interface needed by the service.
type editRepo interface {
	Create(ctx context.Context, edit domain.ImageEdit) (domain.ImageEdit, error)
	UpdateResult(ctx context.Context, id uuid.UUID, outcome domain.EditOutcome) (domain.ImageEdit, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ImageEdit, error)
	List(ctx context.Context, filter domain.EditFilter) ([]domain.ImageEdit, error)
}

// campaignRepo defines the campaign repository interface needed by the service.
type campaignRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (domain.Campaign, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// objectStore defines the artifact storage interface needed by the service.
type objectStore interface {
	Get(ctx context.Context, key string) ([]byte, string, error)
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// aiRouter defines the dispatch interface needed by the service.
type aiRouter interface {
	EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, router.Outcome, error)
	Primary(capability domain.Capability) domain.Provider
}

// Service implements image-edit operations.
type Service struct {
	log       *slog.Logger
	edits     editRepo
	campaigns campaignRepo
	tx        txManager
	store     objectStore
	router    aiRouter
}

// NewService creates a new edit service instance.
func NewService(logger *slog.Logger, edits editRepo, campaigns campaignRepo, tx txManager, store objectStore, aiRouter aiRouter) *Service {
	return &Service{
		log:       logger.With("service", "edit"),
		edits:     edits,
		campaigns: campaigns,
		tx:        tx,
		store:     store,
		router:    aiRouter,
	}
}
