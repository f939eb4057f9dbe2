package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Size đại diện cho kích cỡ sản phẩm (S, M, L, 40, 41, ...)
type Size struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                          // ID của kích cỡ
	Name        string             `json:"name" bson:"name" index:"text"`                              // Tên kích cỡ
	Code        string             `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"` // Mã sinh từ tên, tối đa 10 ký tự
	Description string             `json:"description,omitempty" bson:"description,omitempty"`        // Mô tả kích cỡ
	SortOrder   int                `json:"sortOrder" bson:"sortOrder"`                                 // Thứ tự hiển thị
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single"`                    // Trạng thái hiển thị
	CreatedBy   string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`             // ID admin tạo
	UpdatedBy   string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`             // ID admin cập nhật gần nhất
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`                                 // Thời gian tạo (unix milli)
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`                                 // Thời gian cập nhật (unix milli)
}
