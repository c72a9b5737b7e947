// Package models - Test tính tiền giỏ hàng.
package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartSubtotal_TinhDungTongTienHang(t *testing.T) {
	// Kịch bản chuẩn: 1 sản phẩm giá 100, số lượng 2, phí giao 60
	cart := Cart{
		Items: []CartLine{
			{ProductId: primitive.NewObjectID(), Name: "Gạo", UnitPrice: 100, Quantity: 2},
		},
	}

	subtotal := cart.Subtotal()
	if subtotal != 200 {
		t.Errorf("Subtotal = %v, muốn 200", subtotal)
	}

	const deliveryFee = 60.0
	if total := subtotal + deliveryFee; total != 260 {
		t.Errorf("total = %v, muốn 260", total)
	}
}

func TestCartSubtotal_GioRongBangKhong(t *testing.T) {
	cart := Cart{Items: []CartLine{}}
	if got := cart.Subtotal(); got != 0 {
		t.Errorf("Subtotal giỏ rỗng = %v, muốn 0", got)
	}
	if got := cart.ItemCount(); got != 0 {
		t.Errorf("ItemCount giỏ rỗng = %v, muốn 0", got)
	}
}

func TestCartSubtotal_NhieuDong(t *testing.T) {
	cart := Cart{
		Items: []CartLine{
			{UnitPrice: 50, Quantity: 3},
			{UnitPrice: 120.5, Quantity: 1},
		},
	}
	if got := cart.Subtotal(); got != 270.5 {
		t.Errorf("Subtotal = %v, muốn 270.5", got)
	}
	if got := cart.ItemCount(); got != 4 {
		t.Errorf("ItemCount = %v, muốn 4", got)
	}
}

func TestCartFindLine(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	cart := Cart{
		Items: []CartLine{
			{ProductId: first, Quantity: 1},
			{ProductId: second, Quantity: 2},
		},
	}

	if idx := cart.FindLine(second); idx != 1 {
		t.Errorf("FindLine = %d, muốn 1", idx)
	}
	if idx := cart.FindLine(primitive.NewObjectID()); idx != -1 {
		t.Errorf("FindLine với id lạ = %d, muốn -1", idx)
	}
}

func TestCartLineLineTotal(t *testing.T) {
	line := CartLine{UnitPrice: 33.5, Quantity: 2}
	if got := line.LineTotal(); got != 67 {
		t.Errorf("LineTotal = %v, muốn 67", got)
	}
}
