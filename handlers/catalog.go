package handlers

import (
	"net/http"

	"glowdesk/models"
	"glowdesk/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalog and the stylist's bindings.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServicesHandler returns the global catalog.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	_, token := currentIdentity(c)

	services, err := h.Catalog.Services(c.Request.Context(), token)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListStylistServicesHandler returns the authenticated stylist's bindings.
func (h *CatalogHandler) ListStylistServicesHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	bindings, err := h.Catalog.StylistServices(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": bindings})
}

// BindServiceHandler attaches a catalog service to the stylist.
func (h *CatalogHandler) BindServiceHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	var req struct {
		ServiceID models.ID `json:"serviceId" binding:"required"`
		Price     float64   `json:"price"`
		Duration  int       `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Catalog.Bind(c.Request.Context(), token, models.StylistService{
		StylistID: stylistID,
		ServiceID: req.ServiceID,
		Price:     req.Price,
		Duration:  req.Duration,
	})
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBindingHandler edits a binding's stylist-specific price/duration.
func (h *CatalogHandler) UpdateBindingHandler(c *gin.Context) {
	_, token := currentIdentity(c)
	id := models.ID(c.Param("id"))

	var req struct {
		Price    float64 `json:"price"`
		Duration int     `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Catalog.UpdateBinding(c.Request.Context(), token, id, req.Price, req.Duration)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UnbindServiceHandler removes a binding.
func (h *CatalogHandler) UnbindServiceHandler(c *gin.Context) {
	_, token := currentIdentity(c)
	id := models.ID(c.Param("id"))

	if err := h.Catalog.Unbind(c.Request.Context(), token, id); err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service removed"})
}
