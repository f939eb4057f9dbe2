package catalogdto

// SizeCreateInput dữ liệu tạo kích cỡ mới
type SizeCreateInput struct {
	Name        string `json:"name" validate:"required,min=1,max=50,no_xss"` // Tên kích cỡ
	Description string `json:"description" validate:"max=500,no_xss"`        // Mô tả
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`                   // Thứ tự hiển thị
	IsActive    *bool  `json:"isActive"`                                     // Trạng thái hiển thị, mặc định true
}

// SizeUpdateInput dữ liệu cập nhật kích cỡ, các trường nil giữ nguyên giá trị cũ
type SizeUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50,no_xss"` // Tên mới, đổi tên sẽ sinh lại code
	Description *string `json:"description" validate:"omitempty,max=500,no_xss"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

// SizeListParams tham số lọc danh sách kích cỡ của trang quản trị
type SizeListParams struct {
	Search   string // Tìm theo tên
	IsActive string // "true"/"false" để lọc, rỗng để bỏ qua
	Page     string
	Limit    string
}
