// Package router - Đăng ký route cho domain pref.
package router

import (
	"github.com/gofiber/fiber/v3"

	prefhdl "github.com/khulnastore11/khulnastore/internal/api/pref/handler"
	apirouter "github.com/khulnastore11/khulnastore/internal/api/router"
)

// RegisterPrefRoutes đăng ký route tuỳ chọn client.
func RegisterPrefRoutes(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := prefhdl.NewPrefHandler()
	if err != nil {
		return err
	}

	v1.Get("/preferences/theme", handler.HandleGetTheme)
	v1.Put("/preferences/theme", handler.HandleSetTheme)

	return nil
}
