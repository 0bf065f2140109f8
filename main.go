package main

import (
	"github.com/dreamwed/wedding_backend/config"
	"github.com/dreamwed/wedding_backend/controllers"
	"github.com/dreamwed/wedding_backend/database"
	"github.com/dreamwed/wedding_backend/docs"
	"github.com/dreamwed/wedding_backend/logger"
	"github.com/dreamwed/wedding_backend/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Wedding Site API
// @version         1.0
// @description     API Server for the wedding-website builder
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Log.Info().Msg("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.IsProduction())

	// Initialize database
	database.Connect(cfg)
	database.Migrate()

	// Set up Swagger info
	docs.SwaggerInfo.Title = "Wedding Site API"
	docs.SwaggerInfo.Description = "API Server for the wedding-website builder"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Set up router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/api")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public wedding-site routes (no auth)
	public := router.Group("/api/public")
	{
		public.GET("/weddings/:uniqueUrl", controllers.GetPublicWedding)
		public.GET("/weddings/:uniqueUrl/guests/search", controllers.SearchPublicGuests)
		public.POST("/weddings/:uniqueUrl/guests", controllers.SelfRegisterGuest)
		public.POST("/weddings/:uniqueUrl/guests/:id/rsvp", controllers.SubmitRSVP)
		public.GET("/weddings/:uniqueUrl/guestbook", controllers.GetGuestBookEntries)
		public.POST("/weddings/:uniqueUrl/guestbook", controllers.CreateGuestBookEntry)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		// Wedding routes
		api.GET("/weddings", controllers.GetWeddings)
		api.POST("/weddings", controllers.CreateWedding)
		api.GET("/weddings/:id", controllers.GetWedding)
		api.PUT("/weddings/:id", controllers.UpdateWedding)
		api.DELETE("/weddings/:id", controllers.DeleteWedding)

		// Guest routes
		api.GET("/weddings/:id/guests", controllers.GetGuests)
		api.POST("/weddings/:id/guests", controllers.CreateGuest)
		api.GET("/weddings/:id/guests/stats", controllers.GetGuestStats)
		api.PUT("/guests/:id", controllers.UpdateGuest)
		api.DELETE("/guests/:id", controllers.DeleteGuest)
		api.PUT("/guests/:id/status", controllers.SetGuestStatus)

		// Photo routes
		api.GET("/weddings/:id/photos", controllers.GetPhotos)
		api.POST("/weddings/:id/photos", controllers.CreatePhoto)
		api.PUT("/photos/:id", controllers.UpdatePhoto)
		api.PUT("/photos/:id/hero", controllers.SetHeroPhoto)
		api.DELETE("/photos/:id", controllers.DeletePhoto)

		// Guest book moderation
		api.DELETE("/guestbook/:id", controllers.DeleteGuestBookEntry)

		// Budget routes
		api.GET("/weddings/:id/budget/categories", controllers.GetBudgetCategories)
		api.POST("/weddings/:id/budget/categories", controllers.CreateBudgetCategory)
		api.PUT("/budget/categories/:id", controllers.UpdateBudgetCategory)
		api.DELETE("/budget/categories/:id", controllers.DeleteBudgetCategory)
		api.GET("/weddings/:id/budget/items", controllers.GetBudgetItems)
		api.POST("/weddings/:id/budget/items", controllers.CreateBudgetItem)
		api.PUT("/budget/items/:id", controllers.UpdateBudgetItem)
		api.DELETE("/budget/items/:id", controllers.DeleteBudgetItem)

		// Milestone routes
		api.GET("/weddings/:id/milestones", controllers.GetMilestones)
		api.POST("/weddings/:id/milestones", controllers.CreateMilestone)
		api.PUT("/milestones/:id", controllers.UpdateMilestone)
		api.DELETE("/milestones/:id", controllers.DeleteMilestone)

		// Invitation tracking routes
		api.GET("/weddings/:id/invitations", controllers.GetInvitations)
		api.POST("/weddings/:id/invitations", controllers.CreateInvitation)
		api.PUT("/invitations/:id/status", controllers.UpdateInvitationStatus)

		// Collaborator routes
		api.GET("/weddings/:id/collaborators", controllers.GetCollaborators)
		api.POST("/weddings/:id/collaborators", controllers.InviteCollaborator)
		api.POST("/collaborators/accept", controllers.AcceptInvitation)
		api.DELETE("/weddings/:id/collaborators/:userId", controllers.RevokeAccess)

		// Admin routes (role re-verified against the store inside each handler)
		api.GET("/admin/verify", controllers.VerifyAdmin)
		api.GET("/admin/users", controllers.ListUsers)
		api.GET("/admin/weddings", controllers.ListAllWeddings)
	}

	logger.Log.Info().Str("port", cfg.Port).Msg("Server running")
	logger.Log.Info().Msgf("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to start server")
	}
}
