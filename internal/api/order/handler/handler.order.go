// Package orderhdl - Handler đơn hàng: checkout, tra cứu công khai và quản trị.
package orderhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/khulnastore11/khulnastore/internal/api/base/handler"
	orderdto "github.com/khulnastore11/khulnastore/internal/api/order/dto"
	ordermodels "github.com/khulnastore11/khulnastore/internal/api/order/models"
	ordervc "github.com/khulnastore11/khulnastore/internal/api/order/service"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// HeaderCartToken là header chứa token giỏ hàng, dùng lại khi checkout.
const HeaderCartToken = "X-Cart-Token"

// OrderHandler xử lý các route đơn hàng.
type OrderHandler struct {
	OrderService *ordervc.OrderService
}

// NewOrderHandler tạo OrderHandler mới.
func NewOrderHandler() (*OrderHandler, error) {
	svc, err := ordervc.NewOrderService()
	if err != nil {
		return nil, err
	}
	return &OrderHandler{OrderService: svc}, nil
}

// HandleCheckout xử lý POST /orders/checkout.
func (h *OrderHandler) HandleCheckout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token := c.Get(HeaderCartToken)
		if token == "" {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Thiếu header " + HeaderCartToken, "status": "error",
			})
			return nil
		}
		var input orderdto.CheckoutInput
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

		order, err := h.OrderService.Checkout(c.Context(), token, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleCreated(c, orderdto.NewOrderStatusResponse(order))
		return nil
	})
}

// HandleCheckoutConfig xử lý GET /orders/checkout-config.
// Trang checkout cần phí giao và số tài khoản nhận tiền trước khi đặt hàng.
func (h *OrderHandler) HandleCheckoutConfig(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		cfg := global.MongoDB_ServerConfig
		basehdl.HandleResponse(c, orderdto.CheckoutConfigResponse{
			DeliveryFee: float64(cfg.DeliveryFee),
			Methods:     []string{ordermodels.PaymentCOD, ordermodels.PaymentBkash, ordermodels.PaymentNagad},
			BkashNumber: cfg.BkashNumber,
			NagadNumber: cfg.NagadNumber,
		}, nil)
		return nil
	})
}

// HandleGetByPublicId xử lý GET /orders/:publicId (tra cứu công khai).
func (h *OrderHandler) HandleGetByPublicId(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		order, err := h.OrderService.GetByPublicId(c.Context(), c.Params("publicId"))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, orderdto.NewOrderStatusResponse(order), nil)
		return nil
	})
}

// HandleListOrders xử lý GET /admin/orders. Query: status, page, limit.
func (h *OrderHandler) HandleListOrders(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page := parseInt64Query(c, "page", 1)
		limit := parseInt64Query(c, "limit", 20)
		result, err := h.OrderService.ListOrders(c.Context(), c.Query("status"), page, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		items := make([]orderdto.OrderResponse, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, *orderdto.NewOrderResponse(&result.Items[i]))
		}
		basehdl.HandleResponse(c, fiber.Map{
			"items":     items,
			"page":      result.Page,
			"limit":     result.Limit,
			"total":     result.Total,
			"totalPage": result.TotalPage,
		}, nil)
		return nil
	})
}

// HandleUpdateStatus xử lý PUT /admin/orders/:id/status.
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, ok := parseOrderId(c)
		if !ok {
			return nil
		}
		var input orderdto.StatusUpdateInput
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

		order, err := h.OrderService.UpdateStatus(c.Context(), id, input.Status)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, orderdto.NewOrderResponse(order), nil)
		return nil
	})
}

// HandleSetAdminNote xử lý PUT /admin/orders/:id/note.
func (h *OrderHandler) HandleSetAdminNote(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, ok := parseOrderId(c)
		if !ok {
			return nil
		}
		var input orderdto.AdminNoteInput
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

		order, err := h.OrderService.SetAdminNote(c.Context(), id, input.Note)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, orderdto.NewOrderResponse(order), nil)
		return nil
	})
}

// parseOrderId đọc :id của đơn từ path, ghi lỗi 400 nếu không hợp lệ.
func parseOrderId(c fiber.Ctx) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code": common.ErrCodeValidationFormat.Code, "message": "id đơn hàng không hợp lệ", "status": "error",
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseInt64Query đọc query param số, trả về defaultValue nếu thiếu hoặc không hợp lệ.
func parseInt64Query(c fiber.Ctx, name string, defaultValue int64) int64 {
	if s := c.Query(name); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
