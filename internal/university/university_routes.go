package university

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	universities := r.Group("/universities")

	universities.GET("", h.GetAll)

	universities.Use(middleware.AuthMiddleware())
	{
		universities.GET("/:guid", h.GetByGuid)
		universities.POST("", middleware.RoleMiddleware("Admin"), h.Create)
		universities.PUT("/:guid", middleware.RoleMiddleware("Admin"), h.Update)
		universities.DELETE("/:guid", middleware.RoleMiddleware("Admin"), h.Delete)
	}
}
