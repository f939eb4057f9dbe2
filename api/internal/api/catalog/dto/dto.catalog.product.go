package catalogdto

// ProductSizeInput một biến thể theo kích cỡ trong payload sản phẩm.
// Các ràng buộc giá/tồn kho (price >= 0, salePrice < price, stock >= 0)
// được service kiểm tra lại trước khi ghi.
type ProductSizeInput struct {
	Size      string   `json:"size" validate:"required"` // ID của Size, dạng hex 24 ký tự
	Price     float64  `json:"price"`                    // Giá gốc
	SalePrice *float64 `json:"salePrice"`                // Giá khuyến mãi, bỏ trống nếu không có
	Stock     int      `json:"stock"`                    // Số lượng tồn kho
	Weight    *float64 `json:"weight" validate:"omitempty,gte=0"` // Khối lượng của biến thể
	IsActive  *bool    `json:"isActive"`                 // Biến thể có đang bán không, mặc định true
}

// ProductImageInput một ảnh trong payload sản phẩm
type ProductImageInput struct {
	URL       string `json:"url" validate:"required,url"` // URL ảnh
	Alt       string `json:"alt" validate:"max=200,no_xss"`
	IsPrimary bool   `json:"isPrimary"` // Đánh dấu ảnh đại diện
	Order     int    `json:"order"`     // Thứ tự hiển thị, nhỏ hơn đứng trước
}

// ProductDimensionsInput kích thước vật lý trong payload sản phẩm
type ProductDimensionsInput struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

// ProductCreateInput dữ liệu tạo sản phẩm mới
type ProductCreateInput struct {
	Name             string                  `json:"name" validate:"required,min=2,max=200,no_xss"` // Tên sản phẩm
	Description      string                  `json:"description" validate:"max=5000,no_xss"`        // Mô tả
	ShortDescription string                  `json:"shortDescription" validate:"max=500,no_xss"`    // Mô tả ngắn
	Brand            string                  `json:"brand" validate:"max=100,no_xss"`               // Thương hiệu
	Model            string                  `json:"model" validate:"max=100,no_xss"`               // Dòng/mẫu sản phẩm
	Color            string                  `json:"color" validate:"max=50,no_xss"`                // Màu sắc
	Material         string                  `json:"material" validate:"max=100,no_xss"`            // Chất liệu
	Dimensions       *ProductDimensionsInput `json:"dimensions"`                                    // Kích thước vật lý
	Weight           *float64                `json:"weight" validate:"omitempty,gte=0"`             // Khối lượng chung
	Category         string                  `json:"category" validate:"required"`                  // ID danh mục
	Sizes            []ProductSizeInput      `json:"sizes" validate:"required,min=1,dive"`          // Các biến thể, ít nhất một
	Images           []ProductImageInput     `json:"images" validate:"omitempty,dive"`              // Danh sách ảnh
	Tags             []string                `json:"tags" validate:"omitempty,dive,max=50"`         // Nhãn tìm kiếm
	MetaTitle        string                  `json:"metaTitle" validate:"max=60,no_xss"`            // Tiêu đề SEO
	MetaDescription  string                  `json:"metaDescription" validate:"max=160,no_xss"`     // Mô tả SEO
	MetaKeywords     []string                `json:"metaKeywords" validate:"omitempty,dive,max=50"` // Từ khóa SEO
	IsActive         *bool                   `json:"isActive"`                                      // Mặc định true
	IsFeatured       *bool                   `json:"isFeatured"`                                    // Mặc định false
	IsOnSale         *bool                   `json:"isOnSale"`                                      // Mặc định false
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm, các trường nil giữ nguyên giá trị cũ
type ProductUpdateInput struct {
	Name             *string                 `json:"name" validate:"omitempty,min=2,max=200,no_xss"` // Tên mới, đổi tên sẽ sinh lại slug và SKU
	Description      *string                 `json:"description" validate:"omitempty,max=5000,no_xss"`
	ShortDescription *string                 `json:"shortDescription" validate:"omitempty,max=500,no_xss"`
	Brand            *string                 `json:"brand" validate:"omitempty,max=100,no_xss"`
	Model            *string                 `json:"model" validate:"omitempty,max=100,no_xss"`
	Color            *string                 `json:"color" validate:"omitempty,max=50,no_xss"`
	Material         *string                 `json:"material" validate:"omitempty,max=100,no_xss"`
	Dimensions       *ProductDimensionsInput `json:"dimensions"`
	Weight           *float64                `json:"weight" validate:"omitempty,gte=0"`
	Category         *string                 `json:"category"`                              // ID danh mục mới
	Sizes            []ProductSizeInput      `json:"sizes" validate:"omitempty,min=1,dive"` // Thay toàn bộ danh sách biến thể
	Images           []ProductImageInput     `json:"images" validate:"omitempty,dive"`      // Thay toàn bộ danh sách ảnh
	Tags             []string                `json:"tags" validate:"omitempty,dive,max=50"`
	MetaTitle        *string                 `json:"metaTitle" validate:"omitempty,max=60,no_xss"`
	MetaDescription  *string                 `json:"metaDescription" validate:"omitempty,max=160,no_xss"`
	MetaKeywords     []string                `json:"metaKeywords" validate:"omitempty,dive,max=50"`
	IsActive         *bool                   `json:"isActive"`
	IsFeatured       *bool                   `json:"isFeatured"`
	IsOnSale         *bool                   `json:"isOnSale"`
}

// ProductQueryParams là các tham số query thô của endpoint liệt kê sản phẩm,
// trước khi được phân tích thành đặc tả lọc có kiểu.
type ProductQueryParams struct {
	Search     string // Tìm toàn văn trên tên/mô tả/thương hiệu/nhãn
	Category   string // Lọc theo ID danh mục
	Size       string // Lọc theo ID kích cỡ trong các biến thể
	Brand      string // Lọc theo thương hiệu, so khớp chứa
	IsActive   string // "true"/"false", rỗng để bỏ qua
	IsFeatured string
	IsOnSale   string
	MinPrice   string // Chặn dưới của khoảng giá
	MaxPrice   string // Chặn trên của khoảng giá
	SortBy     string // Trường sắp xếp, mặc định createdAt
	SortOrder  string // "desc" là giảm dần, mọi giá trị khác là tăng dần
	Page       string // Trang, 1-based, mặc định 1
	Limit      string // Số phần tử mỗi trang, mặc định 10
}
