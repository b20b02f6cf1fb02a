package main

import (
	"log"
	"net/http"
	"os"

	"civicadmin-be/archive"
	"civicadmin-be/config"
	"civicadmin-be/controllers"
	"civicadmin-be/intake"
	"civicadmin-be/routes"
	"civicadmin-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	issues := store.NewIssueStore(store.SeedIssues())
	staff, err := store.NewStaffDirectory(store.SeedStaff())
	if err != nil {
		log.Fatalf("Failed to seed staff directory: %v", err)
	}
	controllers.Init(issues, staff)

	// Audit archive and rate limiting are optional; the dashboard runs on
	// local data without them.
	if os.Getenv("MONGODB_URI") != "" {
		issues.SetArchiver(archive.NewTimelineArchive(config.GetCollection("timeline_events")))
	}
	if os.Getenv("REDIS_ADDRESS") != "" {
		if err := config.ConnectRedis(); err != nil {
			log.Println("Continuing without rate limiting:", err)
		}
	}

	// One-shot import of citizen reports; failure never blocks startup.
	if intakeURL := os.Getenv("INTAKE_URL"); intakeURL != "" {
		go intake.Import(issues, intakeURL)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)
	routes.DashboardRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
