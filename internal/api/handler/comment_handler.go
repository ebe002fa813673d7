package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for spot reviews.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	SpotID int64  `json:"spot_id" validate:"required,gt=0"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// ListBySpot returns all comments for a spot.
//
// @Summary      List comments for a spot
// @Tags         comments
// @Produce      json
// @Param        spotId  path     int  true  "Spot id"
// @Success      200     {array}  domain.Comment
// @Router       /v1/comments/spot/{spotId} [get]
func (h *CommentHandler) ListBySpot(c echo.Context) error {
	spotID, err := pathID(c, "spotId")
	if err != nil {
		return err
	}

	comments, err := h.service.ListBySpot(c.Request().Context(), spotID)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// Create stores a new comment.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	comment, err := h.service.Create(c.Request().Context(), req.UserID, req.SpotID, req.Text, req.Rating)
	if err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}
