package routes

import (
	"net/http"
	"time"

	"arenabook/handlers"
	"arenabook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Webhook *handlers.WebhookHandler
	Arena   *handlers.ArenaHandler
}

// RegisterArenaRoutes registers arena profile endpoints.
func RegisterArenaRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/arenas")
	{
		// Public profile lookup.
		api.GET("/:id", hb.Arena.GetArena)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.POST("", hb.Arena.CreateArena)
		protected.PATCH("/:id", hb.Arena.UpdateArena)
		protected.GET("/:id/bookings", hb.Booking.GetArenaBookings)
	}
}

// RegisterBookingRoutes registers the reservation engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Availability is public: the calendar renders before sign-in.
	r.GET("/api/availability", hb.Booking.GetAvailability)

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthUserMiddleware())
	{
		protected.POST("/bookings/selection", hb.Booking.BuildSelection)
		protected.GET("/bookings/user", hb.Booking.GetUserBookings)
		protected.POST("/reservations", hb.Booking.CreateReservation)
		protected.DELETE("/reservations/:id", hb.Booking.CancelReservation)
		protected.POST("/auth/logout", handlers.LogoutHandler)
	}
}

// RegisterWebhookRoutes registers the payment provider callback. It is not
// token-authenticated; authenticity comes from the signature check.
func RegisterWebhookRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.Webhook.HandleStripeWebhook)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterArenaRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
}
