package routes

import (
	"time"

	"jojocolaresbeauty/handlers"
	"jojocolaresbeauty/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the client-facing booking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/slots", hb.GetSlots)
		api.POST("/appointments", hb.CreateAppointment)
		api.GET("/services", hb.ListServices)
		api.GET("/portfolio", hb.ListPortfolio)
		api.GET("/testimonials", hb.ListTestimonials)
		api.GET("/landing", hb.GetLandingPage)
	}
}

// RegisterAdminRoutes registers the back-office endpoints. Everything except
// login requires an admin session token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLogin)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())

		protected.GET("/appointments", hb.AdminHandler.ListAppointmentsHandler)
		protected.PATCH("/appointments/:id/status", hb.AdminHandler.UpdateStatusHandler)
		protected.DELETE("/appointments/:id", hb.AdminHandler.DeleteAppointmentHandler)
		protected.GET("/stats", hb.AdminHandler.DashboardStatsHandler)

		protected.GET("/settings", hb.AdminHandler.GetSettingsHandler)
		protected.PUT("/settings", hb.AdminHandler.UpdateSettingsHandler)

		protected.POST("/services", hb.CatalogHandler.CreateServiceHandler)
		protected.PUT("/services/:id", hb.CatalogHandler.UpdateServiceHandler)
		protected.DELETE("/services/:id", hb.CatalogHandler.DeleteServiceHandler)

		protected.POST("/portfolio", hb.ContentHandler.CreatePortfolioItemHandler)
		protected.DELETE("/portfolio/:id", hb.ContentHandler.DeletePortfolioItemHandler)
		protected.POST("/testimonials", hb.ContentHandler.CreateTestimonialHandler)
		protected.DELETE("/testimonials/:id", hb.ContentHandler.DeleteTestimonialHandler)
		protected.PUT("/landing", hb.ContentHandler.UpdateLandingPageHandler)

		protected.POST("/uploads/:folder", hb.StorageHandler.UploadImageHandler)
		protected.DELETE("/uploads", hb.StorageHandler.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
