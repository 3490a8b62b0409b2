package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns users ordered by creation time, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}

	return users, nil
}

// UpdateRole changes a user's role. Admins cannot demote themselves, so the
// platform always keeps at least the acting admin.
func (s *Service) UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) (domain.User, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.User{}, domain.ErrForbidden
	}

	if userID == uuid.Nil {
		return domain.User{}, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "user_id", Message: "required"},
		}}
	}
	if !role.IsValid() {
		return domain.User{}, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "role", Message: "unknown role"},
		}}
	}
	if userID == adminID && role != domain.RoleAdmin {
		return domain.User{}, fmt.Errorf("%w: admins cannot demote themselves", domain.ErrForbidden)
	}

	updated, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.UpdateRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
		slog.String("admin_id", adminID.String()),
	)

	return updated, nil
}

// SetActive activates or deactivates an account. Deactivated users cannot
// log in and their refresh tokens stop working on the next rotation.
// Admins cannot deactivate themselves.
func (s *Service) SetActive(ctx context.Context, userID uuid.UUID, active bool) (domain.User, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.User{}, domain.ErrForbidden
	}

	if userID == uuid.Nil {
		return domain.User{}, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "user_id", Message: "required"},
		}}
	}
	if userID == adminID && !active {
		return domain.User{}, fmt.Errorf("%w: admins cannot deactivate themselves", domain.ErrForbidden)
	}

	updated, err := s.users.SetActive(ctx, userID, active)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "user active flag updated",
		slog.String("user_id", userID.String()),
		slog.Bool("active", active),
		slog.String("admin_id", adminID.String()),
	)

	return updated, nil
}

// Get returns one user by ID.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.User{}, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Get: %w", err)
	}

	return u, nil
}
