package role

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	roles := r.Group("/roles")

	roles.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("Admin"))
	{
		roles.GET("", h.GetAll)
		roles.GET("/:guid", h.GetByGuid)
		roles.POST("", h.Create)
		roles.PUT("/:guid", h.Update)
		roles.DELETE("/:guid", h.Delete)
	}
}
