package booking

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	bookings := r.Group("/bookings")

	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.GET("", h.GetAll)
		bookings.GET("/details", h.GetDetails)
		bookings.GET("/details/today", h.GetToday)
		bookings.GET("/details/:guid", h.GetDetailByGuid)
		bookings.GET("/duration", h.GetDuration)
		bookings.GET("/:guid", h.GetByGuid)
		bookings.POST("", h.Create)
		bookings.PUT("/:guid", h.Update)

		admin := bookings.Group("")
		admin.Use(middleware.RoleMiddleware("Admin", "Manager"))
		{
			admin.DELETE("/:guid", h.Delete)
		}
	}
}
