// Package models - Preference thuộc domain pref (preferences).
// Tuỳ chọn giao diện của client, định danh bằng cùng token với giỏ hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Theme hợp lệ.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preference lưu tuỳ chọn của một client (preferences).
type Preference struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Token string `json:"token" bson:"token" index:"unique"`
	Theme string `json:"theme" bson:"theme"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
