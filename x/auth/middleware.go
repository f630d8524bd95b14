package auth

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/stewardhq/steward/core"
)

// IdentifyActor resolves the identity the gateway propagated via trusted
// headers into a populated actor. Requests without an identity continue
// unauthenticated; guarded routes reject them later.
func (s *service) IdentifyActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.IdentifyActor")
		defer span.End()

		userID := c.Request().Header.Get(core.ActorIdHeader)
		if userID == "" {
			return next(c)
		}

		actor, err := s.actor.Current(ctx, userID)
		if err != nil {
			span.RecordError(err)
			return next(c)
		}

		span.SetAttributes(
			attribute.String("ActorID", actor.UserID),
			attribute.String("ActorRole", actor.Role),
		)

		c.Set(core.ActorCtxKey, actor)

		return next(c)
	}
}

// Restrict guards a route with a permission check for the given resource
// and action. When the route carries an :id param, the instance context
// (ownership, assignments) is resolved before the check so mine and
// assigned scopes can apply.
func (s *service) Restrict(resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Restrict")
			defer span.End()

			actor, ok := c.Get(core.ActorCtxKey).(core.Actor)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":  "you are not authorized to perform this action",
					"detail": "no actor identified",
				})
			}

			if slices.Contains(s.config.Steward.Admins, actor.UserID) {
				return next(c)
			}

			var resourceData map[string]any
			if id := c.Param("id"); id != "" {
				_, data, err := s.workorder.BuildContext(ctx, actor, resource, id)
				if err != nil {
					span.RecordError(err)
					if _, notfound := err.(core.ErrorNotFound); !notfound {
						return err
					}
				}
				resourceData = data
			}

			if !s.permission.CanAccess(ctx, actor, resource, action, resourceData) {
				span.SetAttributes(attribute.String("DeniedResource", resource))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "you are not authorized to perform this action",
				})
			}

			return next(c)
		}
	}
}
