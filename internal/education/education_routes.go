package education

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	educations := r.Group("/educations")

	educations.GET("", h.GetAll)

	educations.Use(middleware.AuthMiddleware())
	{
		educations.GET("/:guid", h.GetByGuid)
		educations.POST("", middleware.RoleMiddleware("Admin"), h.Create)
		educations.PUT("/:guid", middleware.RoleMiddleware("Admin"), h.Update)
		educations.DELETE("/:guid", middleware.RoleMiddleware("Admin"), h.Delete)
	}
}
