// Package models - Test trạng thái đơn và yêu cầu thanh toán.
package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	for _, status := range AllStatuses {
		if !IsValidStatus(status) {
			t.Errorf("%q phải là trạng thái hợp lệ", status)
		}
	}
	for _, status := range []string{"", "pending", "Shipped", "Done"} {
		if IsValidStatus(status) {
			t.Errorf("%q không được là trạng thái hợp lệ", status)
		}
	}
}

func TestRequiresPaymentProof(t *testing.T) {
	if RequiresPaymentProof(PaymentCOD) {
		t.Error("COD không được yêu cầu chứng từ thanh toán")
	}
	if !RequiresPaymentProof(PaymentBkash) {
		t.Error("bkash phải yêu cầu chứng từ thanh toán")
	}
	if !RequiresPaymentProof(PaymentNagad) {
		t.Error("nagad phải yêu cầu chứng từ thanh toán")
	}
}
