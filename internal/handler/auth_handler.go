package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"wealthwise/internal/service"
)

// Fixed user-safe messages; raw provider/store errors never reach the login
// screen.
const (
	msgEmailNotFound = "Email not found. Please contact your administrator."
	msgTokenInvalid  = "Invalid or expired access link. Please request a new one."
	msgTokenFailed   = "Failed to process access link."
	msgLinkSent      = "Check your email for the login link!"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type TokenExchangeRequest struct {
	Token string `json:"token" binding:"required"`
}

// RequestLoginLink sends a magic link to a provisioned client.
func (h *AuthHandler) RequestLoginLink(c *gin.Context) {
	var req LoginLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.RequestLoginLink(c.Request.Context(), req.Email); err != nil {
		if err == service.ErrClientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": msgEmailNotFound})
			return
		}
		log.WithError(err).WithField("email", req.Email).Error("login link request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send login link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgLinkSent})
}

// ExchangeToken trades a single-use access token for a session.
func (h *AuthHandler) ExchangeToken(c *gin.Context) {
	var req TokenExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, session, err := h.svc.ExchangeToken(c.Request.Context(), req.Token)
	if err != nil {
		if err == service.ErrTokenInvalid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgTokenInvalid})
			return
		}
		log.WithError(err).Error("token exchange failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgTokenFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"access_token": session,
	})
}

// Logout acknowledges sign-out. Sessions are stateless JWTs; the client drops
// its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
