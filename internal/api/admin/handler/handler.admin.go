// Package adminhdl - Handler đăng nhập admin và dashboard.
package adminhdl

import (
	"github.com/gofiber/fiber/v3"

	admindto "github.com/khulnastore11/khulnastore/internal/api/admin/dto"
	adminvc "github.com/khulnastore11/khulnastore/internal/api/admin/service"
	basehdl "github.com/khulnastore11/khulnastore/internal/api/base/handler"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// AdminHandler xử lý các route quản trị chung.
type AdminHandler struct {
	AuthService      *adminvc.AuthService
	DashboardService *adminvc.DashboardService
}

// NewAdminHandler tạo AdminHandler mới.
func NewAdminHandler() (*AdminHandler, error) {
	dashboardSvc, err := adminvc.NewDashboardService()
	if err != nil {
		return nil, err
	}
	return &AdminHandler{
		AuthService:      adminvc.NewAuthService(global.MongoDB_ServerConfig),
		DashboardService: dashboardSvc,
	}, nil
}

// HandleLogin xử lý POST /admin/login.
func (h *AdminHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input admindto.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Dữ liệu gửi lên không đúng định dạng JSON", "status": "error",
			})
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": common.MsgValidationError, "details": err.Error(), "status": "error",
			})
			return nil
		}

		token, expiresAt, err := h.AuthService.Login(input.Email, input.Password)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, admindto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil)
		return nil
	})
}

// HandleDashboard xử lý GET /admin/dashboard.
func (h *AdminHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.DashboardService.Stats(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, stats, nil)
		return nil
	})
}
