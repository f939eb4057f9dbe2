// Package models định nghĩa các model của domain auth
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin đại diện cho tài khoản quản trị viên trong hệ thống
type Admin struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                              // ID của admin
	Email        string             `json:"email" bson:"email" validate:"required,email" index:"unique"`    // Email đăng nhập
	PasswordHash string             `json:"-" bson:"passwordHash"`                                          // Mật khẩu đã băm bcrypt, không trả ra ngoài
	Name         string             `json:"name" bson:"name" validate:"required,min=2,max=100" index:"text"` // Tên hiển thị
	Role         string             `json:"role" bson:"role"`                                               // Vai trò, hiện tại chỉ có "admin"
	IsBlock      bool               `json:"isBlock" bson:"isBlock" index:"single"`                          // Trạng thái khóa tài khoản
	BlockNote    string             `json:"blockNote,omitempty" bson:"blockNote,omitempty"`                 // Ghi chú lý do khóa
	LastLoginAt  int64              `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`             // Thời điểm đăng nhập gần nhất (unix milli)
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`                                     // Thời gian tạo (unix milli)
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`                                     // Thời gian cập nhật (unix milli)
}

// RoleAdmin là vai trò mặc định của tài khoản quản trị
const RoleAdmin = "admin"
