package routes

import (
	"os"
	"strings"

	"stampcard-backend/config"
	"stampcard-backend/controllers"
	"stampcard-backend/middleware"
	"stampcard-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func corsOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins := strings.Split(env, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}

func SetupRouter(db *gorm.DB, blobs services.BlobStore, uploadDir string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	authController := controllers.NewAuthController(db)
	establishmentController := controllers.NewEstablishmentController(db)
	adminController := controllers.NewAdminController(db)
	tokenController := controllers.NewTokenController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	logoController := controllers.NewLogoController(db, blobs)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)

			auth.Use(middleware.RequireSession(db))
			auth.GET("/me", authController.Me)
		}

		establishments := api.Group("/establishments")
		{
			// Public: signup and the customer-facing card config.
			establishments.POST("/create", establishmentController.Create)
			establishments.GET("/:id/config", establishmentController.GetConfig)

			authed := establishments.Group("")
			authed.Use(middleware.RequireSession(db))
			{
				authed.GET("", middleware.RequireSuperuser(), establishmentController.List)
				authed.DELETE("/:id", middleware.RequireSuperuser(), establishmentController.Delete)

				tenant := authed.Group("/:id")
				tenant.Use(middleware.RequireTenant())
				{
					tenant.PUT("/update", establishmentController.Update)
					tenant.GET("/analytics", analyticsController.Get)
					tenant.PUT("/logo", logoController.Upload)
					tenant.DELETE("/logo", logoController.Delete)

					admins := tenant.Group("/admins")
					{
						admins.GET("", adminController.List)
						admins.POST("", adminController.Add)
						admins.DELETE("/:userId", adminController.Remove)
					}
				}
			}
		}

		tokens := api.Group("/tokens")
		{
			// Validation is public: customers hold no session, only a GUID.
			tokens.POST("/validate", tokenController.Validate)

			tokens.POST("/generate", middleware.RequireSession(db), tokenController.Generate)
		}
	}

	return r
}
