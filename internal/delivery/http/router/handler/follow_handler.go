package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "offerfeed/internal/delivery/context"
	"offerfeed/internal/delivery/http/response"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FollowHandlerParams holds dependencies for FollowHandler, injected by Fx.
type FollowHandlerParams struct {
	fx.In

	FollowUC usecase.FollowUsecase
	Logger   *slog.Logger
}

// FollowHandler holds dependencies for follow-related handlers
type FollowHandler struct {
	followUC usecase.FollowUsecase
	logger   *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler
func NewFollowHandler(params FollowHandlerParams) *FollowHandler {
	return &FollowHandler{
		followUC: params.FollowUC,
		logger:   params.Logger,
	}
}

// FollowByQRRequest represents the request body for following through a scanned QR code
type FollowByQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// FollowResponse describes the follow edge after a follow or unfollow.
type FollowResponse struct {
	CommerceID       uuid.UUID `json:"commerce_id"`
	Following        bool      `json:"following"`
	AlreadyFollowing bool      `json:"already_following"`
}

// FollowedResponse lists the commerces the caller follows.
type FollowedResponse struct {
	CommerceIDs []uuid.UUID `json:"commerce_ids"`
}

// Follow handles POST /commerces/:id/follow
func (h *FollowHandler) Follow(c echo.Context) error {
	commerceID, err := commerceIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.followUC.Follow(c.Request().Context(), h.userID(c), commerceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FollowResponse{
		CommerceID:       result.CommerceID,
		Following:        true,
		AlreadyFollowing: result.AlreadyFollowing,
	}, "Commerce followed successfully")
}

// Unfollow handles DELETE /commerces/:id/follow
func (h *FollowHandler) Unfollow(c echo.Context) error {
	commerceID, err := commerceIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.followUC.Unfollow(c.Request().Context(), h.userID(c), commerceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FollowResponse{CommerceID: commerceID}, "Commerce unfollowed successfully")
}

// ListFollowed handles GET /me/follows
func (h *FollowHandler) ListFollowed(c echo.Context) error {
	ids, err := h.followUC.ListFollowed(c.Request().Context(), h.userID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return response.Success(c, http.StatusOK, FollowedResponse{CommerceIDs: ids}, "Followed commerces retrieved successfully")
}

// FollowQR handles GET /commerces/:id/follow-qr and returns a PNG image.
func (h *FollowHandler) FollowQR(c echo.Context) error {
	commerceID, err := commerceIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.followUC.GenerateFollowQR(c.Request().Context(), commerceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// FollowByQR handles POST /me/follows/qr
func (h *FollowHandler) FollowByQR(c echo.Context) error {
	var req FollowByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.followUC.FollowByQR(c.Request().Context(), h.userID(c), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FollowResponse{
		CommerceID:       result.CommerceID,
		Following:        true,
		AlreadyFollowing: result.AlreadyFollowing,
	}, "Commerce followed successfully")
}

// userID is only called behind Authenticate, which guarantees a verified principal.
func (h *FollowHandler) userID(c echo.Context) uuid.UUID {
	return deliverycontext.GetPrincipal(c).UserID
}
