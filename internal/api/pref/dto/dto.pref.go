// Package dto - DTO cho domain pref.
package dto

// ThemeInput dữ liệu đổi theme.
type ThemeInput struct {
	Theme string `json:"theme" validate:"required,theme"`
}

// ThemeResponse trả về theme hiện tại của client.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
