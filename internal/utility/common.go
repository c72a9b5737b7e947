package utility

import (
	"regexp"

	"github.com/khulnastore11/khulnastore/internal/common"
)

// phoneRegex chấp nhận số điện thoại 10-15 chữ số, cho phép prefix +
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// ValidatePhone kiểm tra định dạng số điện thoại khách hàng
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return common.ErrInvalidFormat
	}
	return nil
}

// emailRegex kiểm tra định dạng email cơ bản
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidFormat
	}
	return nil
}
