// internal/api/routes/routes.go
package routes

import (
	"net/http"

	"donorlink-api-server/config"
	"donorlink-api-server/internal/api/handlers"
	"donorlink-api-server/internal/api/middleware"
	"donorlink-api-server/internal/auth"
	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the injected dependencies into the route tree.
func SetupRouter(
	cfg config.Config,
	tokens *auth.TokenManager,
	users store.UserStore,
	donations store.DonationStore,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := &handlers.AuthHandler{Users: users, Tokens: tokens}
	donorHandler := &handlers.DonorHandler{Donations: donations}
	recipientHandler := &handlers.RecipientHandler{Users: users, Donations: donations}
	adminHandler := &handlers.AdminHandler{Users: users, Donations: donations}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api := router.Group("/api")
	{
		// === PUBLIC ROUTES ===
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// === PROTECTED ROUTES ===
		authenticate := middleware.Authenticate(tokens, users)

		donor := api.Group("/donor")
		donor.Use(authenticate)
		donor.Use(middleware.Authorize(models.RoleDonor))
		{
			donor.GET("/info", donorHandler.Info)
		}

		recipient := api.Group("/recipient")
		recipient.Use(authenticate)
		recipient.Use(middleware.Authorize(models.RoleRecipient))
		{
			recipient.GET("/info", recipientHandler.Info)
			recipient.GET("/donors", recipientHandler.Donors)
			recipient.GET("/dashboard", recipientHandler.Dashboard)
			recipient.POST("/request", recipientHandler.CreateRequest)
			recipient.PUT("/profile", recipientHandler.UpdateProfile)
		}

		admin := api.Group("/admin")
		admin.Use(authenticate)
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/donors", adminHandler.ListDonors)
			admin.GET("/recipients", adminHandler.ListRecipients)
			admin.GET("/donations", adminHandler.ListDonations)
			admin.PUT("/donations/:id/status", adminHandler.UpdateDonationStatus)
		}
	}

	return router
}
