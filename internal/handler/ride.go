package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/middleware"
	"github.com/aidosk/ride-hail-api/internal/model"
	"github.com/aidosk/ride-hail-api/internal/queue"
	"github.com/aidosk/ride-hail-api/internal/repository"
	"github.com/aidosk/ride-hail-api/internal/service"
)

// RideHandler exposes the ride request endpoints. Customers create and list
// their own rides; drivers and admins see all of them and move rides through
// the status lifecycle.
type RideHandler struct {
	Rides *repository.RideRepo
}

func NewRideHandler(r *repository.RideRepo) *RideHandler {
	if r == nil {
		panic("nil repository passed to NewRideHandler")
	}
	return &RideHandler{Rides: r}
}

type createRideReq struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
}

type rideResp struct {
	ID          uint64           `json:"id"`
	CustomerID  uint64           `json:"customer_id"`
	DriverID    uint64           `json:"driver_id,omitempty"`
	Pickup      string           `json:"pickup"`
	Destination string           `json:"destination"`
	Status      model.RideStatus `json:"status"`
	RequestedAt time.Time        `json:"requested_at"`
}

// Create handles POST /v1/rides. The ride is bound to the authenticated
// customer and starts as REQUESTED with a server-side timestamp. A
// ride-requested event goes out to the broker best-effort: losing the event
// never fails the request.
func (h *RideHandler) Create(c echo.Context) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Pickup = strings.TrimSpace(req.Pickup)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Pickup == "" || req.Destination == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pickup/destination required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ride := &model.Ride{
		CustomerID:  ident.UserID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Status:      model.RideRequested,
		RequestedAt: time.Now().UTC(),
	}
	id, err := h.Rides.Create(ctx, ride)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create ride failed"})
	}

	ev := queue.RideRequestedEvent{
		RideID:      id,
		CustomerID:  ride.CustomerID,
		Pickup:      ride.Pickup,
		Destination: ride.Destination,
		RequestedAt: ride.RequestedAt.Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		if err := service.PublishRideRequested(pubCtx, ev); err != nil {
			log.Printf("ride: publish ride.requested failed for ride %d: %v", id, err)
		}
	}()

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List handles GET /v1/rides. Customers get their own rides; drivers and
// admins get everything.
func (h *RideHandler) List(c echo.Context) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		rides []model.Ride
		err   error
	)
	if ident.Role == model.RoleCustomer {
		rides, err = h.Rides.ListByCustomer(ctx, ident.UserID)
	} else {
		rides, err = h.Rides.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]rideResp, 0, len(rides))
	for _, r := range rides {
		out = append(out, rideResp{
			ID: r.ID, CustomerID: r.CustomerID, DriverID: r.DriverID,
			Pickup: r.Pickup, Destination: r.Destination,
			Status: r.Status, RequestedAt: r.RequestedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus handles PATCH /v1/rides/:id. Only the status moves here;
// everything else about a ride is immutable after creation.
func (h *RideHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ride id"})
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status, ok := model.ParseRideStatus(req.Status)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rides.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRideNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ride not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": 1})
}

// Delete handles DELETE /v1/rides/:id.
func (h *RideHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ride id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rides.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRideNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ride not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": 1})
}
