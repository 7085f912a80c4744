package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ecomap-dev/ecomap/db"
	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"message":   "EcoMap API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// DBCheck pings the database through the pooled connection.
func DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB.DB()

	if err != nil {
		log.Printf("Failed to access database connection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Printf("Database ping failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
