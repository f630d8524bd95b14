package actor

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stewardhq/steward/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Permissions(c echo.Context) error
	Invalidate(c echo.Context) error
}

type handler struct {
	service core.ActorService
}

// NewHandler creates a new handler
func NewHandler(service core.ActorService) Handler {
	return &handler{service: service}
}

// Get returns an actor with its permission projection
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Get")
	defer span.End()

	id := c.Param("id")
	actor, err := h.service.Current(ctx, id)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "actor not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": actor})
}

// Permissions returns the flattened permission projection only
func (h handler) Permissions(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Permissions")
	defer span.End()

	id := c.Param("id")
	actor, err := h.service.Current(ctx, id)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "actor not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": actor.Permissions})
}

// Invalidate drops the cached projection, forcing a recompute
func (h handler) Invalidate(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Invalidate")
	defer span.End()

	id := c.Param("id")
	err := h.service.InvalidateProjection(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
