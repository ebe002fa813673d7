package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// SpotHandler handles HTTP requests for spot browsing and administration.
type SpotHandler struct {
	service ports.SpotService
}

func NewSpotHandler(service ports.SpotService) *SpotHandler {
	return &SpotHandler{service: service}
}

type createSpotRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type availabilityOverrideRequest struct {
	Available *bool `json:"available"`
}

// List returns all spots.
//
// @Summary      List spots
// @Tags         spots
// @Produce      json
// @Success      200  {array}  domain.Spot
// @Router       /v1/spots [get]
func (h *SpotHandler) List(c echo.Context) error {
	spots, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, spots)
}

// Get returns a single spot.
//
// @Summary      Get a spot by id
// @Tags         spots
// @Produce      json
// @Param        id   path      int  true  "Spot id"
// @Success      200  {object}  domain.Spot
// @Failure      404  {object}  map[string]string
// @Router       /v1/spots/{id} [get]
func (h *SpotHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	spot, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, spot)
}

// Create registers a new spot, initially available.
//
// @Summary      Create a spot
// @Tags         spots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSpotRequest  true  "Spot details"
// @Success      201   {object}  domain.Spot
// @Failure      400   {object}  map[string]string
// @Router       /v1/spots [post]
func (h *SpotHandler) Create(c echo.Context) error {
	var req createSpotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	spot, err := h.service.Create(c.Request().Context(), ports.CreateSpotInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, spot)
}

// OverrideAvailability is the admin escape hatch for the availability flag,
// mounted on the service-account surface.
//
// @Summary      Override a spot's availability flag
// @Tags         ops
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      int                          true  "Spot id"
// @Param        body  body      availabilityOverrideRequest  true  "New availability"
// @Success      204   "no content"
// @Failure      404   {object}  map[string]string
// @Router       /ops/spots/{id}/availability [patch]
func (h *SpotHandler) OverrideAvailability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req availabilityOverrideRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Available == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "available is required"})
	}

	if err := h.service.OverrideAvailability(c.Request().Context(), id, *req.Available); err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
