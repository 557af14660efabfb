package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"stampcard-backend/config"
	"stampcard-backend/models"
	"stampcard-backend/routes"
	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.Connect(os.Getenv("DB_URL"))
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Establishment{},
		&models.AdminUser{},
		&models.Session{},
		&models.Transaction{},
		&models.TokenRedemption{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := ensureSuperuser(db); err != nil {
		log.Fatalf("Superuser bootstrap failed: %v", err)
	}

	sessions := services.NewSessionService(db)
	sessions.StartCleanupScheduler()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	blobs, err := services.NewDiskBlobStore(uploadDir, "/uploads")
	if err != nil {
		log.Fatalf("Failed to set up blob store: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(db, blobs, uploadDir)
	printRoutes(r)
	r.Run(":" + port)
}

// ensureSuperuser creates the superuser account from SUPERUSER_EMAIL and
// SUPERUSER_PASSWORD if one doesn't exist yet. Superusers have no
// establishment.
func ensureSuperuser(db *gorm.DB) error {
	email := os.Getenv("SUPERUSER_EMAIL")
	password := os.Getenv("SUPERUSER_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	if len(password) < 6 {
		return errors.New("SUPERUSER_PASSWORD must be at least 6 characters")
	}

	var existing models.AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	superuser := models.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperuser,
	}
	if err := db.Create(&superuser).Error; err != nil {
		return err
	}
	log.Printf("Created superuser %s", email)
	return nil
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
