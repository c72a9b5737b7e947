// Package middleware chứa các middleware dùng chung cho API.
package middleware

import (
	"errors"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/khulnastore11/khulnastore/internal/api/base/handler"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
	"github.com/khulnastore11/khulnastore/internal/logger"
)

// AdminClaims là claims của token đăng nhập admin
type AdminClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// AuthMiddleware xác thực Bearer token JWT cho các route admin.
// Token hợp lệ sẽ set c.Locals("admin_email") cho handler phía sau.
//
// ⚠️ LƯU Ý: middleware này PHẢI được đăng ký qua RegisterRouteWithMiddleware
// (xem comment trong internal/api/router/routes.go về bug Fiber v3).
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		log := logger.GetAppLogger()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondAuthError(c, common.ErrTokenMissing)
		}

		// Header dạng "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return respondAuthError(c, common.ErrTokenInvalid)
		}
		tokenString := parts[1]

		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
				return respondAuthError(c, common.ErrTokenExpired)
			}
			log.WithError(err).Debug("Token admin không hợp lệ")
			return respondAuthError(c, common.ErrTokenInvalid)
		}
		if !token.Valid {
			return respondAuthError(c, common.ErrTokenInvalid)
		}

		c.Locals("admin_email", claims.Email)
		return c.Next()
	}
}

// respondAuthError trả về lỗi xác thực theo format response chung
func respondAuthError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"status":  "error",
		})
	}
	return basehdl.JSONResponse(c, common.StatusUnauthorized, fiber.Map{
		"code":    common.ErrCodeAuth.Code,
		"message": common.MsgUnauthorized,
		"status":  "error",
	})
}
