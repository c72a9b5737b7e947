// Package dto - DTO cho domain order.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartmodels "github.com/khulnastore11/khulnastore/internal/api/cart/models"
	ordermodels "github.com/khulnastore11/khulnastore/internal/api/order/models"
)

// CustomerInput thông tin người nhận khi checkout.
type CustomerInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required,no_xss"`
}

// PaymentInput thông tin thanh toán khi checkout.
// PayerNumber/TrxId được kiểm tra theo method ở tầng service vì
// điều kiện bắt buộc phụ thuộc vào giá trị của field khác.
type PaymentInput struct {
	Method      string `json:"method" validate:"required,payment_method"`
	PayerNumber string `json:"payerNumber,omitempty"`
	TrxId       string `json:"trxId,omitempty"`
}

// CheckoutInput dữ liệu đặt hàng từ giỏ.
type CheckoutInput struct {
	Customer CustomerInput `json:"customer" validate:"required"`
	Payment  PaymentInput  `json:"payment" validate:"required"`
}

// StatusUpdateInput dữ liệu admin đổi trạng thái đơn.
type StatusUpdateInput struct {
	Status string `json:"status" validate:"required,order_status"`
}

// AdminNoteInput dữ liệu admin ghi chú lên đơn. Ghi đè vô điều kiện,
// lưu lại cùng nội dung nhiều lần cho cùng kết quả.
type AdminNoteInput struct {
	Note string `json:"note" validate:"omitempty,no_xss"`
}

// CheckoutConfigResponse trả về thông tin trang checkout cần hiển thị:
// phí giao cố định và số tài khoản nhận tiền của từng phương thức.
type CheckoutConfigResponse struct {
	DeliveryFee float64  `json:"deliveryFee"`
	Methods     []string `json:"methods"`
	BkashNumber string   `json:"bkashNumber,omitempty"`
	NagadNumber string   `json:"nagadNumber,omitempty"`
}

// OrderResponse trả về đơn hàng đầy đủ (admin).
type OrderResponse struct {
	ID          primitive.ObjectID    `json:"id"`
	PublicId    string                `json:"publicId"`
	Customer    ordermodels.Customer  `json:"customer"`
	Items       []cartmodels.CartLine `json:"items"`
	Subtotal    float64               `json:"subtotal"`
	DeliveryFee float64               `json:"deliveryFee"`
	Total       float64               `json:"total"`
	Payment     ordermodels.Payment   `json:"payment"`
	Status      string                `json:"status"`
	AdminNote   string                `json:"adminNote,omitempty"`
	CreatedAt   int64                 `json:"createdAt"`
	UpdatedAt   int64                 `json:"updatedAt"`
}

// OrderStatusResponse trả về khi khách tra cứu đơn theo mã công khai.
// Không chứa ghi chú nội bộ của admin.
type OrderStatusResponse struct {
	PublicId    string                `json:"publicId"`
	Customer    ordermodels.Customer  `json:"customer"`
	Items       []cartmodels.CartLine `json:"items"`
	Subtotal    float64               `json:"subtotal"`
	DeliveryFee float64               `json:"deliveryFee"`
	Total       float64               `json:"total"`
	Payment     ordermodels.Payment   `json:"payment"`
	Status      string                `json:"status"`
	CreatedAt   int64                 `json:"createdAt"`
}

// NewOrderResponse dựng OrderResponse từ model.
func NewOrderResponse(o *ordermodels.Order) *OrderResponse {
	items := o.Items
	if items == nil {
		items = []cartmodels.CartLine{}
	}
	return &OrderResponse{
		ID:          o.ID,
		PublicId:    o.PublicId,
		Customer:    o.Customer,
		Items:       items,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Payment:     o.Payment,
		Status:      o.Status,
		AdminNote:   o.AdminNote,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// NewOrderStatusResponse dựng OrderStatusResponse từ model.
func NewOrderStatusResponse(o *ordermodels.Order) *OrderStatusResponse {
	items := o.Items
	if items == nil {
		items = []cartmodels.CartLine{}
	}
	return &OrderStatusResponse{
		PublicId:    o.PublicId,
		Customer:    o.Customer,
		Items:       items,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Payment:     o.Payment,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
