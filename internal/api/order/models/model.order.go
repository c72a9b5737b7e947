// Package models - Order thuộc domain order (orders).
// Đơn hàng là bản ghi bất biến về mặt nội dung: các dòng hàng là snapshot
// từ giỏ tại thời điểm checkout, admin chỉ đổi được status và ghi chú.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartmodels "github.com/khulnastore11/khulnastore/internal/api/cart/models"
)

// Trạng thái đơn hàng. Chuyển trạng thái tự do, không ràng buộc thứ tự.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// Phương thức thanh toán.
const (
	PaymentCOD   = "COD"
	PaymentBkash = "bkash"
	PaymentNagad = "nagad"
)

// AllStatuses liệt kê các trạng thái hợp lệ, dùng cho thống kê dashboard.
var AllStatuses = []string{StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled}

// Customer là thông tin người nhận do khách nhập khi checkout.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Payment là thông tin thanh toán. PayerNumber và TrxId chỉ bắt buộc
// với phương thức chuyển khoản (bkash/nagad), COD để trống.
type Payment struct {
	Method      string `json:"method" bson:"method"`
	PayerNumber string `json:"payerNumber,omitempty" bson:"payerNumber,omitempty"`
	TrxId       string `json:"trxId,omitempty" bson:"trxId,omitempty"`
}

// Order lưu đơn hàng (orders).
type Order struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// PublicId là mã đơn ngắn khách dùng để tra cứu, dạng <prefix>-XXXXXX.
	// Unique index là chốt chặn cuối cùng chống trùng mã.
	PublicId string `json:"publicId" bson:"publicId" index:"unique"`

	Customer Customer              `json:"customer" bson:"customer"`
	Items    []cartmodels.CartLine `json:"items" bson:"items"`

	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee" bson:"deliveryFee"`
	Total       float64 `json:"total" bson:"total"`

	Payment   Payment `json:"payment" bson:"payment"`
	Status    string  `json:"status" bson:"status" index:"single:1"`
	AdminNote string  `json:"adminNote,omitempty" bson:"adminNote,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsValidStatus kiểm tra chuỗi có phải trạng thái đơn hợp lệ không.
func IsValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// RequiresPaymentProof cho biết phương thức có bắt buộc số điện thoại
// người trả và mã giao dịch hay không.
func RequiresPaymentProof(method string) bool {
	return method == PaymentBkash || method == PaymentNagad
}
