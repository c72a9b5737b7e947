// Package router - Đăng ký route cho domain admin.
package router

import (
	"github.com/gofiber/fiber/v3"

	adminhdl "github.com/khulnastore11/khulnastore/internal/api/admin/handler"
	"github.com/khulnastore11/khulnastore/internal/api/middleware"
	apirouter "github.com/khulnastore11/khulnastore/internal/api/router"
)

// RegisterAdminRoutes đăng ký route đăng nhập và dashboard.
// Login là route duy nhất dưới /admin không cần JWT.
func RegisterAdminRoutes(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := adminhdl.NewAdminHandler()
	if err != nil {
		return err
	}

	v1.Post("/admin/login", handler.HandleLogin)

	adminAuth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/dashboard", "GET", "/", adminAuth, handler.HandleDashboard)

	return nil
}
