// Package router - Đăng ký route cho domain order.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/khulnastore11/khulnastore/internal/api/middleware"
	orderhdl "github.com/khulnastore11/khulnastore/internal/api/order/handler"
	apirouter "github.com/khulnastore11/khulnastore/internal/api/router"
)

// RegisterOrderRoutes đăng ký route đơn hàng.
// Checkout và tra cứu theo mã công khai là public, quản trị đơn yêu cầu JWT.
func RegisterOrderRoutes(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return err
	}

	v1.Post("/orders/checkout", handler.HandleCheckout)
	// Đăng ký trước /orders/:publicId để path tĩnh không bị nuốt bởi param
	v1.Get("/orders/checkout-config", handler.HandleCheckoutConfig)
	v1.Get("/orders/:publicId", handler.HandleGetByPublicId)

	adminAuth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "GET", "/", adminAuth, handler.HandleListOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "PUT", "/:id/status", adminAuth, handler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "PUT", "/:id/note", adminAuth, handler.HandleSetAdminNote)

	return nil
}
