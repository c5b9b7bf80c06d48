package middleware

import (
	"strings"

	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"
	"warga-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var (
	jwtService services.InterfaceJWTService
	authPolicy services.AuthorizationPolicy
)

// InitAuthMiddleware wires the token validator and the operator policy.
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
	authPolicy = services.NewAuthorizationPolicy(db, cfg)
}

// Authentication validates the bearer token and stores its claims on the
// request context.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "header Authorization wajib diisi", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "format Authorization harus Bearer {token}", nil)
			c.Abort()
			return
		}

		token, err := jwtService.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			response.FailWithMessage(c, code.ErrTokenInvalid, "token tidak valid atau kedaluwarsa", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.FailWithMessage(c, code.ErrTokenInvalid, "klaim token tidak valid", nil)
			c.Abort()
			return
		}

		if userID, ok := claims["user_id"].(float64); ok {
			c.Set("userID", uint(userID))
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireOperator rejects accounts without operator rights. Must run after
// Authentication.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			response.FailWithMessage(c, code.ErrTokenInvalid, "token tidak valid atau kedaluwarsa", nil)
			c.Abort()
			return
		}
		if !authPolicy.IsOperator(userID) {
			response.FailWithMessage(c, code.ErrPermissionDenied, "hanya operator yang dapat mengakses", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID reads the authenticated user ID from the request context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
