package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"transit/internal/delivery/http/response"
	"transit/internal/planner"
	"transit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite itinerary handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleFavoriteRequest carries the raw itinerary whose favorite state flips.
type ToggleFavoriteRequest struct {
	Itinerary json.RawMessage `json:"itinerary" validate:"required"`
}

// ListFavorites returns the caller's saved itineraries.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// ToggleFavorite saves or removes the posted itinerary for the caller.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var input ToggleFavoriteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	itinerary, err := planner.Normalize(input.Itinerary)
	if err != nil {
		return response.BadRequest(c, "INVALID_ITINERARY", "Itinerary could not be interpreted")
	}

	result, err := h.uc.ToggleFavorite(c.Request().Context(), userID, itinerary)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Favorite toggled successfully")
}

// ShareQR renders a QR code PNG for one of the caller's saved itineraries.
func (h *FavoriteHandler) ShareQR(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	key := c.QueryParam("key")
	if key == "" {
		return response.BadRequest(c, "MISSING_KEY", "Query parameter 'key' is required")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), userID, key)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// getUserID extracts the user ID from the context
func (h *FavoriteHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
