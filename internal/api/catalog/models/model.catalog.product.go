// Package models - Product thuộc domain catalog (products).
// Sản phẩm của cửa hàng, stock bị trừ khi checkout.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu sản phẩm (products).
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name          string   `json:"name" bson:"name" index:"text"`
	Price         float64  `json:"price" bson:"price"`
	Unit          string   `json:"unit" bson:"unit"`
	Stock         int64    `json:"stock" bson:"stock"`
	Images        []string `json:"images" bson:"images"`
	FeaturedIndex int      `json:"featuredIndex" bson:"featuredIndex"`
	Category      string   `json:"category" bson:"category" index:"single:1"`
	Desc          string   `json:"desc,omitempty" bson:"desc,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// FeaturedImage trả về ảnh đại diện theo FeaturedIndex, rỗng nếu chưa có ảnh.
func (p *Product) FeaturedImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	if p.FeaturedIndex >= 0 && p.FeaturedIndex < len(p.Images) {
		return p.Images[p.FeaturedIndex]
	}
	return p.Images[0]
}
