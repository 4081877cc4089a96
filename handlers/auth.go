package handlers

import (
	"errors"
	"net/http"

	"glowdesk/middleware"
	"glowdesk/models"
	"glowdesk/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the dashboard's login/logout surface.
type AuthHandler struct {
	Sessions session.SessionService
}

func NewAuthHandler(sessions session.SessionService) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// RegisterHandler forwards a stylist sign-up to the backend.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Sessions.Register(c.Request.Context(), req); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

// LoginHandler authenticates a stylist and issues a dashboard session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrNoToken) || errors.Is(err, session.ErrUnauthenticated) {
			logger.Warn("login response missing token or identity", zap.String("email", req.Email))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Login succeeded but the backend returned no usable session"})
			return
		}
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":    result.Session.StylistID,
			"name":  result.Session.Name,
			"email": result.Session.Email,
		},
	})
}

// LogoutHandler clears the dashboard session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	token, _ := c.Get(middleware.CtxSessionToken)
	tokenString, _ := token.(string)
	if err := h.Sessions.Logout(c.Request.Context(), tokenString); err != nil {
		logger.Warn("failed to clear session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// MeHandler returns the authenticated stylist identity.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	value, _ := c.Get(middleware.CtxSession)
	sess, ok := value.(*models.Session)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    sess.StylistID,
		"name":  sess.Name,
		"email": sess.Email,
	})
}
