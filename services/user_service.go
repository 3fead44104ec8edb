package services

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/Abdouxone/KFP/common/errors"
	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

// Identity-provider user lifecycle event types.
const (
	IdentityEventUserCreated = "user.created"
	IdentityEventUserUpdated = "user.updated"
	IdentityEventUserDeleted = "user.deleted"
)

// IdentityEvent is one user-lifecycle webhook payload.
type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventUser `json:"data"`
}

type IdentityEventUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Picture   string `json:"image_url"`
}

// UserService syncs the local user table from identity-provider events.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// HandleIdentityEvent applies one lifecycle event: create/update upserts the
// local record (role defaults to USER and is never overwritten by a sync),
// delete removes it. Unknown event types are logged and ignored.
func (s *UserService) HandleIdentityEvent(ctx context.Context, evt *IdentityEvent) *apperrors.Error {
	switch evt.Type {
	case IdentityEventUserCreated, IdentityEventUserUpdated:
		if evt.Data.ID == "" || evt.Data.Email == "" {
			return apperrors.Validation("Identity event missing user id or email.")
		}

		user := &models.User{
			ID:      evt.Data.ID,
			Name:    evt.Data.FirstName + " " + evt.Data.LastName,
			Email:   evt.Data.Email,
			Picture: evt.Data.Picture,
			Role:    models.RoleUser,
		}
		if _, err := s.userRepo.UpsertByEmail(ctx, user); err != nil {
			return apperrors.Internal("Failed to sync user", err)
		}

	case IdentityEventUserDeleted:
		if evt.Data.ID == "" {
			return apperrors.Validation("Identity event missing user id.")
		}
		if err := s.userRepo.Delete(ctx, evt.Data.ID); err != nil {
			return apperrors.Internal("Failed to delete user", err)
		}

	default:
		logger.Warn(ctx, "Unhandled identity event type", zap.String("type", evt.Type))
	}

	return nil
}
