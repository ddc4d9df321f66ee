package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskplan-app/taskplan/config"
	"taskplan-app/taskplan/database"
	"taskplan-app/taskplan/middleware"
	"taskplan-app/taskplan/routes"
	"taskplan-app/taskplan/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	taskService := services.NewTaskService(db)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	apiGroup := router.Group("/api")
	routes.RegisterTaskRoutes(apiGroup, taskService, cfg.ImportFile)

	routes.RegisterHealthRoutes(router, db)
	routes.RegisterStaticRoutes(router, cfg.StaticDir)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
