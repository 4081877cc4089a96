package handlers

import (
	"errors"
	"net/http"

	"glowdesk/backend"
	"glowdesk/middleware"
	"glowdesk/models"
	"glowdesk/services/booking"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps errors from the services layer onto the user-facing
// error taxonomy: connectivity problems, auth expiry, reference misses,
// backend validation messages passed through verbatim, and generic server
// failures.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var notAllowed *booking.ActionNotAllowedError
	var apiErr *backend.APIError

	switch {
	case errors.Is(err, backend.ErrUnreachable):
		utils.JSONError(c, http.StatusServiceUnavailable, "Network error", "Please check your connection and try again.")
	case errors.As(err, &notAllowed):
		utils.JSONError(c, http.StatusConflict, "Action not allowed", notAllowed.Error())
	case backend.IsUnauthorized(err):
		utils.JSONError(c, http.StatusUnauthorized, "Please log in again", "")
	case backend.IsValidation(err):
		errors.As(err, &apiErr)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", apiErr.Message)
	case backend.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "Not found", "")
	case errors.As(err, &apiErr):
		logger.Error("backend request failed", zap.Int("status", apiErr.Status), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Server error", "The booking service reported an error. Please try again later.")
	default:
		logger.Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
	}
}

// currentIdentity pulls the authenticated stylist id and backend token set by
// the session middleware.
func currentIdentity(c *gin.Context) (models.ID, string) {
	stylistID, _ := c.Get(middleware.CtxStylistID)
	token, _ := c.Get(middleware.CtxBackendToken)
	id, _ := stylistID.(models.ID)
	backendToken, _ := token.(string)
	return id, backendToken
}
