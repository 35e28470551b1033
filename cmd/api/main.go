package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jhc-clinics/hms-api/internal/config"
	dbpkg "github.com/jhc-clinics/hms-api/internal/db"
	"github.com/jhc-clinics/hms-api/internal/mail"
	"github.com/jhc-clinics/hms-api/internal/middleware"
	"github.com/jhc-clinics/hms-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	notifier := mail.NewSMTPNotifier(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
