// Package router - Đăng ký route cho domain catalog.
package router

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/khulnastore11/khulnastore/internal/api/catalog/handler"
	"github.com/khulnastore11/khulnastore/internal/api/middleware"
	apirouter "github.com/khulnastore11/khulnastore/internal/api/router"
)

// RegisterCatalogRoutes đăng ký route sản phẩm.
// Route đọc là public, route ghi nằm dưới /admin và yêu cầu JWT.
func RegisterCatalogRoutes(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return err
	}

	v1.Get("/products", handler.HandleListProducts)
	v1.Get("/products/:id", handler.HandleGetProduct)

	adminAuth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/products", "POST", "/", adminAuth, handler.HandleCreateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/products", "PUT", "/:id", adminAuth, handler.HandleUpdateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/products", "DELETE", "/:id", adminAuth, handler.HandleDeleteProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/products", "POST", "/upload-image", adminAuth, handler.HandleUploadImage)

	return nil
}
