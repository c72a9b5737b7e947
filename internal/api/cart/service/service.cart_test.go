// Package cartvc - Test quy tắc thay đổi số lượng dòng trong giỏ.
package cartvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	cartmodels "github.com/khulnastore11/khulnastore/internal/api/cart/models"
)

func TestApplyDecrease_GiamBinhThuong(t *testing.T) {
	items := []cartmodels.CartLine{
		{ProductId: primitive.NewObjectID(), Quantity: 3},
	}
	result := applyDecrease(items, 0)
	if len(result) != 1 {
		t.Fatalf("số dòng = %d, muốn 1", len(result))
	}
	if result[0].Quantity != 2 {
		t.Errorf("Quantity = %d, muốn 2", result[0].Quantity)
	}
}

func TestApplyDecrease_XuongDuoi1ThiXoaDong(t *testing.T) {
	keep := primitive.NewObjectID()
	items := []cartmodels.CartLine{
		{ProductId: primitive.NewObjectID(), Quantity: 1},
		{ProductId: keep, Quantity: 5},
	}
	result := applyDecrease(items, 0)
	if len(result) != 1 {
		t.Fatalf("số dòng = %d, muốn 1 (dòng về 0 phải bị xoá)", len(result))
	}
	if result[0].ProductId != keep {
		t.Error("dòng còn lại không phải dòng cần giữ")
	}
}

func TestRemoveLine_XoaDungDong(t *testing.T) {
	first := primitive.NewObjectID()
	third := primitive.NewObjectID()
	items := []cartmodels.CartLine{
		{ProductId: first, Quantity: 1},
		{ProductId: primitive.NewObjectID(), Quantity: 9},
		{ProductId: third, Quantity: 2},
	}
	result := removeLine(items, 1)
	if len(result) != 2 {
		t.Fatalf("số dòng = %d, muốn 2", len(result))
	}
	if result[0].ProductId != first || result[1].ProductId != third {
		t.Error("removeLine xoá sai dòng")
	}
}
