// Package authdto định nghĩa các cấu trúc dữ liệu đầu vào của domain auth
package authdto

// AdminLoginInput dữ liệu đăng nhập của quản trị viên
type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`       // Email đăng nhập
	Password string `json:"password" validate:"required,min=6"`    // Mật khẩu
}

// AdminCreateInput dữ liệu tạo tài khoản quản trị viên mới
type AdminCreateInput struct {
	Email    string `json:"email" validate:"required,email"`                // Email đăng nhập
	Password string `json:"password" validate:"required,min=6,max=72"`      // Mật khẩu (giới hạn 72 byte của bcrypt)
	Name     string `json:"name" validate:"required,min=2,max=100,no_xss"`  // Tên hiển thị
}

// AdminChangeInfoInput dữ liệu cập nhật thông tin cá nhân
type AdminChangeInfoInput struct {
	Name  string `json:"name" validate:"required,min=2,max=100,no_xss"` // Tên hiển thị mới
	Email string `json:"email" validate:"omitempty,email"`              // Email mới, bỏ trống nếu không đổi
}

// AdminChangePasswordInput dữ liệu đổi mật khẩu
type AdminChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`              // Mật khẩu hiện tại
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"` // Mật khẩu mới
}

// AdminBlockInput dữ liệu khóa/mở khóa tài khoản quản trị viên
type AdminBlockInput struct {
	IsBlock   bool   `json:"isBlock"`                              // true để khóa, false để mở
	BlockNote string `json:"blockNote" validate:"max=500,no_xss"`  // Ghi chú lý do
}
