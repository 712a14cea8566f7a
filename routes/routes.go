package routes

import (
	"net/http"

	"waybook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the messaging provider endpoints.
func RegisterWebhookRoutes(r *gin.Engine, wh *handlers.WebhookHandler) {
	r.GET("/webhook", wh.VerifyHandler)
	r.POST("/webhook", wh.ReceiveHandler)
}

// RegisterLegalRoutes registers the public legal pages.
func RegisterLegalRoutes(r *gin.Engine) {
	r.GET("/privacy-policy", handlers.PrivacyPolicyHandler)
	r.GET("/terms-of-service", handlers.TermsOfServiceHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Waybook"})
	})
}

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(r *gin.Engine, wh *handlers.WebhookHandler) {
	r.Use(cors.Default())
	RegisterHealthRoute(r)
	RegisterLegalRoutes(r)
	RegisterWebhookRoutes(r, wh)
}
