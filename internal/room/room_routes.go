package room

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	rooms := r.Group("/rooms")

	rooms.GET("", h.GetAll)

	rooms.Use(middleware.AuthMiddleware())
	{
		rooms.GET("/:guid", h.GetByGuid)

		admin := rooms.Group("")
		admin.Use(middleware.RoleMiddleware("Admin"))
		{
			admin.POST("", h.Create)
			admin.PUT("/:guid", h.Update)
			admin.DELETE("/:guid", h.Delete)
		}
	}
}
