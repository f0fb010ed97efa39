package employee

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")

	employees.GET("", h.GetAll)
	employees.GET("/details", h.GetDetails)

	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/options", h.GetOptions)
		employees.GET("/:guid", h.GetByGuid)
		employees.POST("", middleware.RoleMiddleware("Admin"), h.Create)
		employees.PUT("/:guid", middleware.RoleMiddleware("Admin"), h.Update)
		employees.DELETE("/:guid", middleware.RoleMiddleware("Admin"), h.Delete)
	}
}
