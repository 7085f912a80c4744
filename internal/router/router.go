package router

import (
	"time"

	"github.com/ecomap-dev/ecomap/internal/handlers"
	"github.com/ecomap-dev/ecomap/internal/middleware"
	"github.com/ecomap-dev/ecomap/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/db-check", handlers.DBCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	r.GET("/puntos", handlers.ListPoints)
	r.GET("/puntos/:id", handlers.GetPoint)
	r.POST("/puntos", middleware.AuthMiddleware(), handlers.CreatePoint)
	r.DELETE("/puntos/:id", middleware.AuthMiddleware(), handlers.DeletePoint)

	r.GET("/comentarios/:punto_id", handlers.ListComments)
	r.POST("/comentarios", middleware.AuthMiddleware(), handlers.CreateComment)
	r.DELETE("/comentarios/:id", middleware.AuthMiddleware(), handlers.DeleteComment)

	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)
	r.GET("/mis-comentarios", middleware.AuthMiddleware(), handlers.MyComments)

	return r
}
