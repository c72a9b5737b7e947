package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Các giá trị hợp lệ cho custom validators của cửa hàng
var (
	validOrderStatuses  = map[string]bool{"Pending": true, "Confirmed": true, "Delivered": true, "Cancelled": true}
	validPaymentMethods = map[string]bool{"COD": true, "bkash": true, "nagad": true}
	validThemes         = map[string]bool{"light": true, "dark": true}
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
	_ = Validate.RegisterValidation("payment_method", validatePaymentMethod)
	_ = Validate.RegisterValidation("theme", validateTheme)
}

// validateNoXSS kiểm tra XSS trong các field văn bản tự do (tên, địa chỉ, ghi chú)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateOrderStatus kiểm tra trạng thái đơn hàng thuộc tập cố định
func validateOrderStatus(fl validator.FieldLevel) bool {
	return validOrderStatuses[fl.Field().String()]
}

// validatePaymentMethod kiểm tra phương thức thanh toán được hỗ trợ
func validatePaymentMethod(fl validator.FieldLevel) bool {
	return validPaymentMethods[fl.Field().String()]
}

// validateTheme kiểm tra giá trị theme hợp lệ
func validateTheme(fl validator.FieldLevel) bool {
	return validThemes[fl.Field().String()]
}
