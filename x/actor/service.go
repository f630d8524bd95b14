package actor

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
)

var tracer = otel.Tracer("actor")

type service struct {
	repository Repository
	permission core.PermissionService
	config     util.Config
}

// NewService creates a new actor service
func NewService(repository Repository, permission core.PermissionService, config util.Config) core.ActorService {
	return &service{repository, permission, config}
}

// Current loads the user and returns it as an actor with its permission
// projection attached. The projection is computed once per session refresh
// and cached by this service, not by the engine.
func (s *service) Current(ctx context.Context, userID string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.Current")
	defer span.End()

	user, err := s.repository.GetUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return core.Actor{}, err
	}

	actor := core.Actor{
		UserID:    user.ID,
		ClientID:  user.ClientID,
		Role:      user.Role,
		Connected: user.Status == core.UserStatusActive,
	}

	permissions, err := s.repository.GetProjection(ctx, userID)
	if err == nil {
		actor.Permissions = permissions
		return actor, nil
	}

	actor = s.permission.Populate(ctx, actor)
	if err := s.repository.SetProjection(ctx, userID, actor.Permissions); err != nil {
		// projection cache is best effort, the actor is already populated
		slog.Warn("failed to cache permission projection", slog.String("userId", userID))
	}

	return actor, nil
}

// InvalidateProjection drops the cached projection for a user.
func (s *service) InvalidateProjection(ctx context.Context, userID string) error {
	ctx, span := tracer.Start(ctx, "Actor.Service.InvalidateProjection")
	defer span.End()

	return s.repository.DeleteProjection(ctx, userID)
}
