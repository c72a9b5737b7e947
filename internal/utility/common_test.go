package utility

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+84912345678", "01712345678", "0123456789"}
	for _, phone := range valid {
		if err := ValidatePhone(phone); err != nil {
			t.Errorf("ValidatePhone(%q) lỗi: %v", phone, err)
		}
	}

	invalid := []string{"", "abc", "123", "+84 912 345 678"}
	for _, phone := range invalid {
		if err := ValidatePhone(phone); err == nil {
			t.Errorf("ValidatePhone(%q) phải trả lỗi", phone)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("admin@khulnastore.local"); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}
	for _, email := range []string{"", "khong-phai-email", "a@b"} {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) phải trả lỗi", email)
		}
	}
}
