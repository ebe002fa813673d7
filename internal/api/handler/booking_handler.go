package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campstead/reservation-api/internal/api/metrics"
	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type reserveRequest struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	SpotID   int64  `json:"spot_id" validate:"required,gt=0"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type updateBookingRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

// parseDate accepts dates either as plain days or full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Reserve books a spot for a date range.
//
// @Summary      Reserve a spot
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reserveRequest  true  "Reservation details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Reserve(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req reserveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid check_in date"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid check_out date"})
	}

	booking, err := h.service.Reserve(c.Request().Context(), ports.ReserveInput{
		SpotID:   req.SpotID,
		UserID:   req.UserID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSpotNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrSpotAlreadyBooked):
			metrics.BookingConflictsTotal.Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Get returns a single booking.
//
// @Summary      Get a booking by id
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// ListByUser returns all bookings of one user, oldest first. An unknown user
// simply yields an empty list.
//
// @Summary      List bookings by user
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User id"
// @Success      200     {array}   domain.Booking
// @Router       /v1/bookings/user/{userId} [get]
func (h *BookingHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	bookings, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// Update edits a booking's dates or status.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Fields to update"
// @Success      200   {object}  domain.Booking
// @Failure      404   {object}  map[string]string
// @Router       /v1/bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	upd := domain.BookingUpdate{Status: domain.BookingStatus(req.Status)}
	if req.CheckIn != "" {
		if upd.CheckIn, err = parseDate(req.CheckIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid check_in date"})
		}
	}
	if req.CheckOut != "" {
		if upd.CheckOut, err = parseDate(req.CheckOut); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid check_out date"})
		}
	}

	booking, err := h.service.Update(c.Request().Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		case errors.Is(err, domain.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete removes a booking, restoring the spot's availability when the
// deleted booking was the active one.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Booking id"
// @Success      204  "no content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
