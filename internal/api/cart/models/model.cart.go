// Package models - Cart thuộc domain cart (carts).
// Giỏ hàng server-side, định danh bằng token do client sinh và gửi kèm header.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine là một dòng trong giỏ hàng. Tên, giá, đơn vị và ảnh được
// snapshot tại thời điểm thêm vào giỏ, không theo sản phẩm gốc.
type CartLine struct {
	ProductId primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	UnitPrice float64            `json:"unitPrice" bson:"unitPrice"`
	Unit      string             `json:"unit" bson:"unit"`
	ImageRef  string             `json:"imageRef,omitempty" bson:"imageRef,omitempty"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
}

// LineTotal trả về thành tiền của dòng (đơn giá × số lượng).
func (l *CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart lưu giỏ hàng (carts). Mỗi token có tối đa một giỏ.
type Cart struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Token string     `json:"token" bson:"token" index:"unique"`
	Items []CartLine `json:"items" bson:"items"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Subtotal trả về tổng tiền hàng của giỏ (chưa gồm phí giao).
func (c *Cart) Subtotal() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].LineTotal()
	}
	return total
}

// ItemCount trả về tổng số lượng trên mọi dòng.
func (c *Cart) ItemCount() int64 {
	var count int64
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// FindLine trả về index của dòng chứa productId, -1 nếu không có.
func (c *Cart) FindLine(productId primitive.ObjectID) int {
	for i := range c.Items {
		if c.Items[i].ProductId == productId {
			return i
		}
	}
	return -1
}
