package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskplan-app/taskplan/database"
)

func RegisterHealthRoutes(router *gin.Engine, db *database.Database) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": db.Backend(),
		})
	})
}
