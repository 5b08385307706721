package routes

import (
	"net/http"
	"time"

	"clinicflow/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The original frontend is served from another origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterChatRoutes registers the dialogue agent endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/message", hb.Chat.HandleChatMessage)
	}
}

// RegisterCalendarRoutes registers the mock calendar backend endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/availability", hb.Calendar.AvailabilityHandler)
		api.POST("/book", hb.Calendar.BookHandler)
		api.POST("/cancel", hb.Calendar.CancelHandler)
		api.POST("/reschedule", hb.Calendar.RescheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the clinic scheduling agent"})
	})
}
