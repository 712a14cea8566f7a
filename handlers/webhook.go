package handlers

import (
	"context"
	"net/http"
	"time"

	"waybook/models"
	"waybook/services/dialogue"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler serves the messaging provider's verification handshake and
// message deliveries.
type WebhookHandler struct {
	Engine      dialogue.Engine
	VerifyToken string
	Logger      *zap.Logger
}

func NewWebhookHandler(engine dialogue.Engine, verifyToken string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Engine: engine, VerifyToken: verifyToken, Logger: logger}
}

// VerifyHandler implements the subscription handshake: echo the challenge
// when the verify token matches, 403 otherwise.
func (h *WebhookHandler) VerifyHandler(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.VerifyToken {
		h.Logger.Info("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	c.AbortWithStatus(http.StatusForbidden)
}

// ReceiveHandler ingests message deliveries. The provider is always
// acknowledged with 200 once the payload has been read; internal failures
// are logged, never surfaced to the transport.
func (h *WebhookHandler) ReceiveHandler(c *gin.Context) {
	var envelope models.WebhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.Logger.Warn("ignoring malformed webhook payload", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	sender, text, ok := envelope.FirstText()
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()
	if err := h.Engine.HandleMessage(ctx, sender, text); err != nil {
		h.Logger.Error("failed to handle inbound message",
			zap.String("sender", sender), zap.Error(err))
	}
	c.Status(http.StatusOK)
}
