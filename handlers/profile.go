package handlers

import (
	"context"
	"net/http"

	"glowdesk/models"

	"github.com/gin-gonic/gin"
)

// BackendProfiles is the slice of the backend client the profile handlers use.
type BackendProfiles interface {
	GetProfile(ctx context.Context, token string, id models.ID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, id models.ID, updates map[string]interface{}) (*models.Profile, error)
}

// ProfileHandler reads and updates the stylist's account record.
type ProfileHandler struct {
	Profiles BackendProfiles
}

func NewProfileHandler(profiles BackendProfiles) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// GetHandler returns the authenticated stylist's profile.
func (h *ProfileHandler) GetHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	profile, err := h.Profiles.GetProfile(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateHandler patches the authenticated stylist's profile. Only a fixed
// set of fields may be changed from the dashboard.
func (h *ProfileHandler) UpdateHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updates := make(map[string]interface{}, len(req))
	for _, field := range []string{"name", "email", "phoneNumber", "location", "priceRangeMin", "priceRangeMax"} {
		if v, ok := req[field]; ok {
			updates[field] = v
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields provided"})
		return
	}

	profile, err := h.Profiles.UpdateProfile(c.Request.Context(), token, stylistID, updates)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
