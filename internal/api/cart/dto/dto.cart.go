// Package dto - DTO cho domain cart.
package dto

import (
	cartmodels "github.com/khulnastore11/khulnastore/internal/api/cart/models"
)

// CartAddInput dữ liệu thêm sản phẩm vào giỏ.
type CartAddInput struct {
	ProductId string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"omitempty,gte=1"`
}

// CartResponse trả về giỏ hàng kèm các giá trị dẫn xuất.
type CartResponse struct {
	Token     string                `json:"token"`
	Items     []cartmodels.CartLine `json:"items"`
	Subtotal  float64               `json:"subtotal"`
	ItemCount int64                 `json:"itemCount"`
	UpdatedAt int64                 `json:"updatedAt"`
}

// NewCartResponse dựng CartResponse từ model.
func NewCartResponse(cart *cartmodels.Cart) *CartResponse {
	items := cart.Items
	if items == nil {
		items = []cartmodels.CartLine{}
	}
	return &CartResponse{
		Token:     cart.Token,
		Items:     items,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
		UpdatedAt: cart.UpdatedAt,
	}
}
