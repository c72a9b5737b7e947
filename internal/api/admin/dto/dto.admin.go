// Package dto - DTO cho domain admin.
package dto

// LoginInput dữ liệu đăng nhập admin.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse trả về token sau khi đăng nhập thành công.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"` // Unix milli
}

// DashboardResponse trả về số liệu tổng quan cho dashboard admin.
type DashboardResponse struct {
	ProductCount int64            `json:"productCount"`
	OrderCount   int64            `json:"orderCount"`
	Revenue      float64          `json:"revenue"`
	StatusCounts map[string]int64 `json:"statusCounts"`
}
