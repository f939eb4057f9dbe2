// Package catalogdto định nghĩa các cấu trúc dữ liệu đầu vào của domain catalog
package catalogdto

// CategoryCreateInput dữ liệu tạo danh mục mới
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100,no_xss"` // Tên danh mục
	Description string `json:"description" validate:"max=1000,no_xss"`        // Mô tả
	Image       string `json:"image" validate:"omitempty,url"`                // URL ảnh đại diện
	IsActive    *bool  `json:"isActive"`                                      // Trạng thái hiển thị, mặc định true
}

// CategoryUpdateInput dữ liệu cập nhật danh mục, các trường nil giữ nguyên giá trị cũ
type CategoryUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100,no_xss"` // Tên mới, đổi tên sẽ sinh lại code và slug
	Description *string `json:"description" validate:"omitempty,max=1000,no_xss"`
	Image       *string `json:"image" validate:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryListParams tham số lọc danh sách danh mục của trang quản trị
type CategoryListParams struct {
	Search   string // Tìm theo tên, so khớp chứa không phân biệt hoa thường
	IsActive string // "true"/"false" để lọc, rỗng để bỏ qua
	Page     string // Trang, 1-based
	Limit    string // Số phần tử mỗi trang
}
