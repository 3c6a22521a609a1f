package routes

import (
	"net/http"
	"time"

	"serveease/handlers"
	"serveease/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Catalog   *handlers.CatalogHandler
	Booking   *handlers.BookingHandler
	Assistant *handlers.AssistantHandler
	Favorites *handlers.FavoritesHandler
	Auth      *handlers.AuthHandler
	Prefs     *handlers.PrefsHandler
}

// RegisterCatalogRoutes registers catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.QueryServices)
		api.GET("/services/:id", hb.Catalog.GetServiceByID)
		api.GET("/services/:id/related", hb.Catalog.GetRelatedServices)
		api.GET("/faqs", hb.Catalog.GetFaqs)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/state", hb.Booking.GetBookingState)
		api.DELETE("/last", hb.Booking.ClearLastBooking)
	}
}

// RegisterAssistantRoutes registers support assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.GET("", hb.Assistant.GetConversation)
		api.POST("/message", hb.Assistant.SendMessage)
	}
}

// RegisterFavoritesRoutes registers favorites endpoints.
func RegisterFavoritesRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.GET("", hb.Favorites.ListFavorites)
		api.POST("/toggle", hb.Favorites.ToggleFavorite)
		api.DELETE("", hb.Favorites.ClearFavorites)
	}
}

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/register", hb.Auth.Register)
		api.GET("/me", hb.Auth.CurrentUser)
		api.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterPrefsRoutes registers theme preference endpoints.
func RegisterPrefsRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/theme")
	{
		api.GET("", hb.Prefs.GetTheme)
		api.PUT("", hb.Prefs.SetTheme)
		api.POST("/toggle", hb.Prefs.ToggleTheme)
	}
}

// RegisterHealthRoute registers the health snapshot endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterFavoritesRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPrefsRoutes(r, hb)
	RegisterHealthRoute(r)
}
