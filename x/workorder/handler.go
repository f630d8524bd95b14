package workorder

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stewardhq/steward/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	ListAvailable(c echo.Context) error
	Assign(c echo.Context) error
}

type handler struct {
	service core.WorkOrderService
}

// NewHandler creates a new handler
func NewHandler(service core.WorkOrderService) Handler {
	return &handler{service: service}
}

// Get returns a work order
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorkOrder.Handler.Get")
	defer span.End()

	id := c.Param("id")
	workOrder, err := h.service.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "work order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": workOrder})
}

// ListAvailable returns the unclaimed queue for the caller's client
func (h handler) ListAvailable(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorkOrder.Handler.ListAvailable")
	defer span.End()

	actor, ok := c.Get(core.ActorCtxKey).(core.Actor)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "message": "no actor identified"})
	}

	workOrders, err := h.service.ListAvailable(ctx, actor.ClientID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": workOrders})
}

type assignRequest struct {
	UserID string `json:"userId"`
}

// Assign links a user to a work order
func (h handler) Assign(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WorkOrder.Handler.Assign")
	defer span.End()

	id := c.Param("id")

	var request assignRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	err = h.service.Assign(ctx, id, request.UserID)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "work order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
