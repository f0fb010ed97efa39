package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	accounterrors "go-booking/internal/account/errors"
	"go-booking/internal/shared/apperror"
	"go-booking/internal/shared/contextutil"
	"go-booking/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := accounterrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = accounterrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		guid, ok := claims["guid"].(string)
		if !ok || guid == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Account ID not found in token", nil)
			c.Abort()
			return
		}

		nik, _ := claims["nik"].(string)
		fullName, _ := claims["full_name"].(string)
		email, _ := claims["email"].(string)

		roles := make([]string, 0, 2)
		if raw, ok := claims["roles"].([]interface{}); ok {
			for _, r := range raw {
				if name, ok := r.(string); ok {
					roles = append(roles, name)
				}
			}
		}

		c.Set("guid", guid)
		c.Set("nik", nik)
		c.Set("full_name", fullName)
		c.Set("email", email)
		c.Set("roles", roles)

		ctx := contextutil.WithUserID(c.Request.Context(), guid)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("roles")
		if !exists {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		userRoles, ok := raw.([]string)
		if !ok {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		isAllowed := false
	outer:
		for _, allowed := range allowedRoles {
			for _, have := range userRoles {
				if have == allowed {
					isAllowed = true
					break outer
				}
			}
		}

		if !isAllowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
