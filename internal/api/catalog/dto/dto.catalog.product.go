// Package dto - DTO cho domain catalog (product).
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCreateInput dữ liệu tạo sản phẩm mới.
type ProductCreateInput struct {
	Name          string   `json:"name" validate:"required,no_xss"`
	Price         float64  `json:"price" validate:"required,gte=0"`
	Unit          string   `json:"unit" validate:"required"`
	Stock         int64    `json:"stock" validate:"gte=0"`
	Images        []string `json:"images,omitempty"`
	FeaturedIndex int      `json:"featuredIndex,omitempty"`
	Category      string   `json:"category,omitempty"`
	Desc          string   `json:"desc,omitempty" validate:"omitempty,no_xss"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm.
// Con trỏ để phân biệt "không gửi" với "gửi giá trị zero".
type ProductUpdateInput struct {
	Name          *string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Price         *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Unit          *string   `json:"unit,omitempty"`
	Stock         *int64    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Images        *[]string `json:"images,omitempty"`
	FeaturedIndex *int      `json:"featuredIndex,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Desc          *string   `json:"desc,omitempty" validate:"omitempty,no_xss"`
}

// ProductResponse trả về sản phẩm.
type ProductResponse struct {
	ID            primitive.ObjectID `json:"id"`
	Name          string             `json:"name"`
	Price         float64            `json:"price"`
	Unit          string             `json:"unit"`
	Stock         int64              `json:"stock"`
	Images        []string           `json:"images"`
	FeaturedIndex int                `json:"featuredIndex"`
	FeaturedImage string             `json:"featuredImage,omitempty"`
	Category      string             `json:"category,omitempty"`
	Desc          string             `json:"desc,omitempty"`
	CreatedAt     int64              `json:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt"`
}

// ImageUploadResponse trả về kết quả upload ảnh.
type ImageUploadResponse struct {
	URL string `json:"url"` // URL bền vững của ảnh đã upload
}
