package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductSize là một biến thể theo kích cỡ của sản phẩm, nhúng trong Product
type ProductSize struct {
	Size      primitive.ObjectID `json:"size" bson:"size"`                             // Tham chiếu đến Size
	Price     float64            `json:"price" bson:"price"`                           // Giá gốc
	SalePrice *float64           `json:"salePrice,omitempty" bson:"salePrice,omitempty"` // Giá khuyến mãi, phải nhỏ hơn giá gốc
	Stock     int                `json:"stock" bson:"stock"`                           // Số lượng tồn kho
	Weight    *float64           `json:"weight,omitempty" bson:"weight,omitempty"`     // Khối lượng của biến thể (gram)
	IsActive  bool               `json:"isActive" bson:"isActive"`                     // Biến thể có đang bán không
}

// ProductImage là một ảnh của sản phẩm
type ProductImage struct {
	URL       string `json:"url" bson:"url"`             // URL ảnh
	Alt       string `json:"alt,omitempty" bson:"alt,omitempty"` // Mô tả thay thế
	IsPrimary bool   `json:"isPrimary" bson:"isPrimary"` // Ảnh đại diện, luôn có đúng một ảnh được đánh dấu
	Order     int    `json:"order" bson:"order"`         // Thứ tự hiển thị, nhỏ hơn đứng trước
}

// ProductDimensions là kích thước vật lý của sản phẩm
type ProductDimensions struct {
	Length float64 `json:"length" bson:"length"` // Chiều dài
	Width  float64 `json:"width" bson:"width"`   // Chiều rộng
	Height float64 `json:"height" bson:"height"` // Chiều cao
}

// Product đại diện cho sản phẩm trong catalog
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                          // ID của sản phẩm
	Name        string             `json:"name" bson:"name" index:"text"`                              // Tên sản phẩm
	Slug        string             `json:"slug,omitempty" bson:"slug,omitempty" index:"unique,sparse"` // Slug sinh từ tên
	SKU         string             `json:"sku,omitempty" bson:"sku,omitempty" index:"unique,sparse"`   // Mã SKU sinh từ tên, tối đa 20 ký tự
	Description string             `json:"description,omitempty" bson:"description,omitempty"`        // Mô tả sản phẩm
	ShortDescription string        `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"` // Mô tả ngắn cho trang danh sách
	Brand       string             `json:"brand,omitempty" bson:"brand,omitempty" index:"single"`      // Thương hiệu
	Model       string             `json:"model,omitempty" bson:"model,omitempty"`                     // Tên dòng/mẫu sản phẩm
	Color       string             `json:"color,omitempty" bson:"color,omitempty"`                     // Màu sắc
	Material    string             `json:"material,omitempty" bson:"material,omitempty"`               // Chất liệu
	Dimensions  *ProductDimensions `json:"dimensions,omitempty" bson:"dimensions,omitempty"`           // Kích thước vật lý
	Weight      *float64           `json:"weight,omitempty" bson:"weight,omitempty"`                   // Khối lượng chung của sản phẩm
	Category    primitive.ObjectID `json:"category" bson:"category" index:"single"`                    // Tham chiếu đến Category
	Sizes       []ProductSize      `json:"sizes" bson:"sizes"`                                         // Các biến thể theo kích cỡ
	Images      []ProductImage     `json:"images,omitempty" bson:"images,omitempty"`                   // Danh sách ảnh, đã sắp theo order
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`                       // Nhãn tự do phục vụ tìm kiếm
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single"`                    // Sản phẩm có hiển thị không
	IsFeatured  bool               `json:"isFeatured" bson:"isFeatured" index:"single"`                // Sản phẩm nổi bật
	IsOnSale    bool               `json:"isOnSale" bson:"isOnSale" index:"single"`                    // Sản phẩm đang khuyến mãi
	MetaTitle       string         `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`             // Tiêu đề SEO
	MetaDescription string         `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"` // Mô tả SEO
	MetaKeywords    []string       `json:"metaKeywords,omitempty" bson:"metaKeywords,omitempty"`       // Từ khóa SEO
	ViewCount     int64            `json:"viewCount" bson:"viewCount"`                                 // Số lượt xem chi tiết
	WishlistCount int64            `json:"wishlistCount" bson:"wishlistCount"`                         // Số lần được thêm vào wishlist
	CreatedBy   string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`             // ID admin tạo
	UpdatedBy   string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`             // ID admin cập nhật gần nhất
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`         // Thời gian tạo (unix milli)
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`                                 // Thời gian cập nhật (unix milli)
}

// ProductView là sản phẩm kèm các trường dẫn xuất, chỉ tính khi trả response,
// không bao giờ lưu xuống database.
type ProductView struct {
	Product      `bson:",inline"`
	LowestPrice  float64 `json:"lowestPrice"`  // Giá thấp nhất trong các biến thể đang bán
	HighestPrice float64 `json:"highestPrice"` // Giá cao nhất trong các biến thể đang bán
	TotalStock   int     `json:"totalStock"`   // Tổng tồn kho của các biến thể đang bán
	InStock      bool    `json:"inStock"`      // Còn hàng hay không
}

// NewProductView tính các trường dẫn xuất từ các biến thể đang bán.
// Giá hiệu lực của một biến thể là salePrice nếu có, ngược lại là price.
func NewProductView(p Product) ProductView {
	view := ProductView{Product: p}
	first := true
	for _, s := range p.Sizes {
		if !s.IsActive {
			continue
		}
		effective := s.Price
		if s.SalePrice != nil {
			effective = *s.SalePrice
		}
		if first {
			view.LowestPrice = effective
			view.HighestPrice = effective
			first = false
		} else {
			if effective < view.LowestPrice {
				view.LowestPrice = effective
			}
			if effective > view.HighestPrice {
				view.HighestPrice = effective
			}
		}
		view.TotalStock += s.Stock
	}
	view.InStock = view.TotalStock > 0
	return view
}

// NewProductViews áp dụng NewProductView cho một danh sách sản phẩm
func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}
