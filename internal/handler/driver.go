package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/model"
	"github.com/aidosk/ride-hail-api/internal/repository"
)

// DriverHandler exposes driver profile endpoints. Listing is public so
// riders can browse the fleet before signing up; creation is ADMIN and
// updates are DRIVER or ADMIN (gated by the router).
type DriverHandler struct {
	Drivers *repository.DriverRepo
}

func NewDriverHandler(d *repository.DriverRepo) *DriverHandler {
	if d == nil {
		panic("nil repository passed to NewDriverHandler")
	}
	return &DriverHandler{Drivers: d}
}

type createDriverReq struct {
	Name        string  `json:"name"`
	VehicleType string  `json:"vehicle_type"`
	IsAvailable bool    `json:"is_available"`
	Rating      float64 `json:"rating"`
}

type driverResp struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	VehicleType string    `json:"vehicle_type"`
	IsAvailable bool      `json:"is_available"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// Create handles POST /v1/drivers.
func (h *DriverHandler) Create(c echo.Context) error {
	var req createDriverReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.VehicleType = strings.TrimSpace(req.VehicleType)
	if req.Name == "" || req.VehicleType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/vehicle_type required"})
	}
	if req.Rating < 0 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 0 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Drivers.Create(ctx, &model.Driver{
		Name:        req.Name,
		VehicleType: req.VehicleType,
		IsAvailable: req.IsAvailable,
		Rating:      req.Rating,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create driver failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List handles GET /v1/drivers. The optional ?available=true narrows the
// list to drivers currently taking rides.
func (h *DriverHandler) List(c echo.Context) error {
	onlyAvailable := strings.EqualFold(c.QueryParam("available"), "true")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	drivers, err := h.Drivers.List(ctx, onlyAvailable)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]driverResp, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, driverResp{
			ID: d.ID, Name: d.Name, VehicleType: d.VehicleType,
			IsAvailable: d.IsAvailable, Rating: d.Rating, CreatedAt: d.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PATCH /v1/drivers/:id.
func (h *DriverHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid driver id"})
	}
	var patch model.DriverPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 0 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Drivers.Update(ctx, id, patch); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoChange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
		case errors.Is(err, repository.ErrDriverNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "driver not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": 1})
}
