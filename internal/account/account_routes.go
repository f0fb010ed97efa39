package account

import (
	"go-booking/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authLimiter gin.HandlerFunc) {
	auth := r.Group("/auth")
	if authLimiter != nil {
		auth.Use(authLimiter)
	}
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/forget-password", h.ForgetPassword)
		auth.POST("/change-password", h.ChangePassword)
	}

	accounts := r.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("Admin"))
	{
		accounts.GET("", h.GetAll)
		accounts.GET("/:guid", h.GetByGuid)
		accounts.POST("", h.Create)
		accounts.PUT("/:guid", h.Update)
		accounts.DELETE("/:guid", h.Delete)
	}
}
