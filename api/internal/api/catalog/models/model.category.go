// Package models định nghĩa các model của domain catalog
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category đại diện cho danh mục sản phẩm
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                    // ID của danh mục
	Name        string             `json:"name" bson:"name" index:"text"`                        // Tên danh mục
	Code        string             `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"` // Mã sinh từ tên, tối đa 15 ký tự
	Slug        string             `json:"slug,omitempty" bson:"slug,omitempty" index:"unique,sparse"` // Slug sinh từ tên, dùng cho URL
	Description string             `json:"description,omitempty" bson:"description,omitempty"`   // Mô tả danh mục
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`               // URL ảnh đại diện
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single"`              // Trạng thái hiển thị
	CreatedBy   string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`       // ID admin tạo
	UpdatedBy   string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`       // ID admin cập nhật gần nhất
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`                           // Thời gian tạo (unix milli)
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`                           // Thời gian cập nhật (unix milli)
}

// CategoryPublic là các trường của danh mục được phép trả ra endpoint công khai
type CategoryPublic struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
}
