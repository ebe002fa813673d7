package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// AvailabilityHandler handles HTTP requests for availability windows.
type AvailabilityHandler struct {
	service ports.AvailabilityService
}

func NewAvailabilityHandler(service ports.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

type createWindowRequest struct {
	SpotID    int64  `json:"spot_id" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type updateWindowRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Create stores a new availability window.
//
// @Summary      Create an availability window
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWindowRequest  true  "Window details"
// @Success      201   {object}  domain.AvailabilityWindow
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/availability [post]
func (h *AvailabilityHandler) Create(c echo.Context) error {
	var req createWindowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_date"})
	}

	window, err := h.service.Create(c.Request().Context(), req.SpotID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSpotNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
		case errors.Is(err, domain.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, window)
}

// ListBySpot returns all windows for a spot.
//
// @Summary      List availability windows for a spot
// @Tags         availability
// @Produce      json
// @Param        spotId  path     int  true  "Spot id"
// @Success      200     {array}  domain.AvailabilityWindow
// @Router       /v1/availability/spot/{spotId} [get]
func (h *AvailabilityHandler) ListBySpot(c echo.Context) error {
	spotID, err := pathID(c, "spotId")
	if err != nil {
		return err
	}

	windows, err := h.service.ListBySpot(c.Request().Context(), spotID)
	if err != nil {
		return err
	}
	if windows == nil {
		windows = []domain.AvailabilityWindow{}
	}
	return c.JSON(http.StatusOK, windows)
}

// Update edits a window's dates.
//
// @Summary      Update an availability window
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Window id"
// @Param        body  body      updateWindowRequest  true  "Fields to update"
// @Success      200   {object}  domain.AvailabilityWindow
// @Failure      404   {object}  map[string]string
// @Router       /v1/availability/{id} [put]
func (h *AvailabilityHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateWindowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	var patch ports.AvailabilityPatch
	if req.StartDate != "" {
		if patch.StartDate, err = parseDate(req.StartDate); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
		}
	}
	if req.EndDate != "" {
		if patch.EndDate, err = parseDate(req.EndDate); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_date"})
		}
	}

	window, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "availability window not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, window)
}

// Delete removes a window.
//
// @Summary      Delete an availability window
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Window id"
// @Success      204  "no content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/availability/{id} [delete]
func (h *AvailabilityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "availability window not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
