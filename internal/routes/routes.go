package routes

import (
	"net/http"

	"fitstream_backend/internal/handlers"
	"fitstream_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP routes. The auth endpoints stay
// public; everything else sits behind the JWT middleware.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	jwtSecret string,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			appHandlers.CourseHandler.RegisterRoutes(protected)
			appHandlers.LessonHandler.RegisterRoutes(protected)
			appHandlers.DashboardHandler.RegisterRoutes(protected)
		}
	}
}
