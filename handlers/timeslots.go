package handlers

import (
	"context"
	"net/http"

	"glowdesk/models"

	"github.com/gin-gonic/gin"
)

// BackendSlots is the slice of the backend client the slot handlers use.
type BackendSlots interface {
	GetSlot(ctx context.Context, token string, id models.ID) (*models.Slot, error)
	ListSlotsByStylist(ctx context.Context, token string, stylistID models.ID) ([]models.Slot, error)
	CreateSlot(ctx context.Context, token string, input models.CreateSlotInput) (*models.Slot, error)
	DeleteSlot(ctx context.Context, token string, id models.ID) error
	UpdateSlotBookedStatus(ctx context.Context, token string, id models.ID, booked bool) error
}

// TimeslotHandler manages a stylist's bookable time slots.
type TimeslotHandler struct {
	Slots BackendSlots
}

func NewTimeslotHandler(slots BackendSlots) *TimeslotHandler {
	return &TimeslotHandler{Slots: slots}
}

// ListHandler returns the stylist's slots.
func (h *TimeslotHandler) ListHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	slots, err := h.Slots.ListSlotsByStylist(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateHandler creates a new slot for the stylist.
func (h *TimeslotHandler) CreateHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	var req models.CreateSlotInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	// The authenticated stylist always owns the slot being created.
	req.StylistID = stylistID

	slot, err := h.Slots.CreateSlot(c.Request.Context(), token, req)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// DeleteHandler removes a slot.
func (h *TimeslotHandler) DeleteHandler(c *gin.Context) {
	_, token := currentIdentity(c)
	id := models.ID(c.Param("id"))

	if err := h.Slots.DeleteSlot(c.Request.Context(), token, id); err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
}

// UpdateStatusHandler flips a slot's booked flag.
func (h *TimeslotHandler) UpdateStatusHandler(c *gin.Context) {
	_, token := currentIdentity(c)
	id := models.ID(c.Param("id"))

	var req struct {
		Status bool `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Slots.UpdateSlotBookedStatus(c.Request.Context(), token, id, req.Status); err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot status updated"})
}
