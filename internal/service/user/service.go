// Package user implements admin-side user management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.User, error)
}

// Service implements user management. Every operation is admin-only.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user management service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
