// Package carthdl - Handler giỏ hàng. Mọi route nhận token giỏ qua
// header X-Cart-Token do client sinh và giữ.
package carthdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/khulnastore11/khulnastore/internal/api/base/handler"
	cartdto "github.com/khulnastore11/khulnastore/internal/api/cart/dto"
	cartvc "github.com/khulnastore11/khulnastore/internal/api/cart/service"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// HeaderCartToken là header chứa token định danh giỏ hàng.
const HeaderCartToken = "X-Cart-Token"

// CartHandler xử lý các route giỏ hàng.
type CartHandler struct {
	CartService *cartvc.CartService
}

// NewCartHandler tạo CartHandler mới.
func NewCartHandler() (*CartHandler, error) {
	svc, err := cartvc.NewCartService()
	if err != nil {
		return nil, err
	}
	return &CartHandler{CartService: svc}, nil
}

// cartToken đọc token giỏ từ header, ghi lỗi 400 nếu thiếu.
func cartToken(c fiber.Ctx) (string, bool) {
	token := c.Get(HeaderCartToken)
	if token == "" {
		c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code": common.ErrCodeValidationInput.Code, "message": "Thiếu header " + HeaderCartToken, "status": "error",
		})
		return "", false
	}
	return token, true
}

// parseProductId đọc productId từ chuỗi hex, ghi lỗi 400 nếu không hợp lệ.
func parseProductId(c fiber.Ctx, hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code": common.ErrCodeValidationFormat.Code, "message": "productId không hợp lệ", "status": "error",
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

// HandleGetCart xử lý GET /cart.
func (h *CartHandler) HandleGetCart(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := cartToken(c)
		if !ok {
			return nil
		}
		cart, err := h.CartService.GetOrCreate(c.Context(), token)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, cartdto.NewCartResponse(cart), nil)
		return nil
	})
}

// HandleAddItem xử lý POST /cart/items.
func (h *CartHandler) HandleAddItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := cartToken(c)
		if !ok {
			return nil
		}
		var input cartdto.CartAddInput
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
		productId, ok := parseProductId(c, input.ProductId)
		if !ok {
			return nil
		}

		cart, err := h.CartService.AddItem(c.Context(), token, productId, input.Quantity)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, cartdto.NewCartResponse(cart), nil)
		return nil
	})
}

// HandleIncreaseItem xử lý POST /cart/items/:productId/increase.
func (h *CartHandler) HandleIncreaseItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := cartToken(c)
		if !ok {
			return nil
		}
		productId, ok := parseProductId(c, c.Params("productId"))
		if !ok {
			return nil
		}
		cart, err := h.CartService.IncreaseItem(c.Context(), token, productId)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, cartdto.NewCartResponse(cart), nil)
		return nil
	})
}

// HandleDecreaseItem xử lý POST /cart/items/:productId/decrease.
func (h *CartHandler) HandleDecreaseItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := cartToken(c)
		if !ok {
			return nil
		}
		productId, ok := parseProductId(c, c.Params("productId"))
		if !ok {
			return nil
		}
		cart, err := h.CartService.DecreaseItem(c.Context(), token, productId)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, cartdto.NewCartResponse(cart), nil)
		return nil
	})
}

// HandleRemoveItem xử lý DELETE /cart/items/:productId.
func (h *CartHandler) HandleRemoveItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := cartToken(c)
		if !ok {
			return nil
		}
		productId, ok := parseProductId(c, c.Params("productId"))
		if !ok {
			return nil
		}
		cart, err := h.CartService.RemoveItem(c.Context(), token, productId)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, cartdto.NewCartResponse(cart), nil)
		return nil
	})
}

// HandleClearCart xử lý DELETE /cart.
func (h *CartHandler) HandleClearCart(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, ok := cartToken(c)
		if !ok {
			return nil
		}
		cart, err := h.CartService.ClearCart(c.Context(), token)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, cartdto.NewCartResponse(cart), nil)
		return nil
	})
}
