// Package prefhdl - Handler tuỳ chọn client (theme).
package prefhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/khulnastore11/khulnastore/internal/api/base/handler"
	prefdto "github.com/khulnastore11/khulnastore/internal/api/pref/dto"
	prefvc "github.com/khulnastore11/khulnastore/internal/api/pref/service"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// HeaderCartToken - theme dùng chung token với giỏ hàng.
const HeaderCartToken = "X-Cart-Token"

// PrefHandler xử lý các route tuỳ chọn client.
type PrefHandler struct {
	PrefService *prefvc.PrefService
}

// NewPrefHandler tạo PrefHandler mới.
func NewPrefHandler() (*PrefHandler, error) {
	svc, err := prefvc.NewPrefService()
	if err != nil {
		return nil, err
	}
	return &PrefHandler{PrefService: svc}, nil
}

// clientToken đọc token client từ header, ghi lỗi 400 nếu thiếu.
func clientToken(c fiber.Ctx) (string, bool) {
	token := c.Get(HeaderCartToken)
	if token == "" {
		c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code": common.ErrCodeValidationInput.Code, "message": "Thiếu header " + HeaderCartToken, "status": "error",
		})
		return "", false
	}
	return token, true
}

// HandleGetTheme xử lý GET /preferences/theme.
func (h *PrefHandler) HandleGetTheme(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := clientToken(c)
		if !ok {
			return nil
		}
		theme, err := h.PrefService.GetTheme(c.Context(), token)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, prefdto.ThemeResponse{Theme: theme}, nil)
		return nil
	})
}

// HandleSetTheme xử lý PUT /preferences/theme.
func (h *PrefHandler) HandleSetTheme(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := clientToken(c)
		if !ok {
			return nil
		}
		var input prefdto.ThemeInput
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

		if err := h.PrefService.SetTheme(c.Context(), token, input.Theme); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, prefdto.ThemeResponse{Theme: input.Theme}, nil)
		return nil
	})
}
