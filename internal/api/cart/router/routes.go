// Package router - Đăng ký route cho domain cart.
package router

import (
	"github.com/gofiber/fiber/v3"

	carthdl "github.com/khulnastore11/khulnastore/internal/api/cart/handler"
	apirouter "github.com/khulnastore11/khulnastore/internal/api/router"
)

// RegisterCartRoutes đăng ký route giỏ hàng. Tất cả là public,
// giỏ được định danh bằng header X-Cart-Token thay vì đăng nhập.
func RegisterCartRoutes(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := carthdl.NewCartHandler()
	if err != nil {
		return err
	}

	v1.Get("/cart", handler.HandleGetCart)
	v1.Delete("/cart", handler.HandleClearCart)
	v1.Post("/cart/items", handler.HandleAddItem)
	v1.Post("/cart/items/:productId/increase", handler.HandleIncreaseItem)
	v1.Post("/cart/items/:productId/decrease", handler.HandleDecreaseItem)
	v1.Delete("/cart/items/:productId", handler.HandleRemoveItem)

	return nil
}
