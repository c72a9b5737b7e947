// Package catalogvc - Test clamp stock.
package catalogvc

import "testing"

func TestClampStock_KhongBaoGioAm(t *testing.T) {
	// Đặt nhiều hơn tồn kho: stock 3, đặt 5 => về 0 chứ không âm
	if got := ClampStock(3, 5); got != 0 {
		t.Errorf("ClampStock(3, 5) = %d, muốn 0", got)
	}
}

func TestClampStock_TruBinhThuong(t *testing.T) {
	if got := ClampStock(10, 4); got != 6 {
		t.Errorf("ClampStock(10, 4) = %d, muốn 6", got)
	}
	if got := ClampStock(5, 5); got != 0 {
		t.Errorf("ClampStock(5, 5) = %d, muốn 0", got)
	}
	if got := ClampStock(0, 1); got != 0 {
		t.Errorf("ClampStock(0, 1) = %d, muốn 0", got)
	}
}
