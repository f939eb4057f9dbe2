// Package catalogsvc chứa nghiệp vụ của domain catalog
package catalogsvc

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/utility"
)

// Mặc định phân trang của endpoint liệt kê sản phẩm
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
)

// FilterCondition là một điều kiện lọc có kiểu trong đặc tả truy vấn sản phẩm.
// Tập điều kiện được ghép với nhau bằng AND khi hạ xuống bson.M.
type FilterCondition interface {
	filterCondition()
}

// TextSearchCondition tìm toàn văn trên tên, mô tả, thương hiệu và nhãn
type TextSearchCondition struct {
	Term string
}

// CategoryEqCondition lọc theo đúng một danh mục
type CategoryEqCondition struct {
	ID primitive.ObjectID
}

// SizeEqCondition lọc các sản phẩm có biến thể thuộc kích cỡ cho trước
type SizeEqCondition struct {
	ID primitive.ObjectID
}

// BrandSubstringCondition lọc theo thương hiệu, so khớp chứa không phân biệt hoa thường
type BrandSubstringCondition struct {
	Term string
}

// BooleanFlagCondition lọc theo một cờ boolean (isActive, isFeatured, isOnSale)
type BooleanFlagCondition struct {
	Field string
	Value bool
}

// PriceRangeCondition lọc theo khoảng giá, chặn hai đầu đều bao gồm.
// Một biến thể khớp khi giá gốc HOẶC giá khuyến mãi nằm trong khoảng.
type PriceRangeCondition struct {
	Min *float64
	Max *float64
}

func (TextSearchCondition) filterCondition()     {}
func (CategoryEqCondition) filterCondition()     {}
func (SizeEqCondition) filterCondition()         {}
func (BrandSubstringCondition) filterCondition() {}
func (BooleanFlagCondition) filterCondition()    {}
func (PriceRangeCondition) filterCondition()     {}

// ProductQuery là đặc tả truy vấn đã phân tích từ query param
type ProductQuery struct {
	Conditions []FilterCondition
	SortBy     string
	SortDesc   bool
	Page       int64
	Limit      int64
}

// ParseProductQuery phân tích tham số thô thành đặc tả truy vấn có kiểu.
// ID danh mục/kích cỡ được kiểm tra cú pháp ObjectID tại đây, TRƯỚC khi có
// bất kỳ truy cập database nào; sai định dạng trả lỗi 400 ngay.
func ParseProductQuery(params *catalogdto.ProductQueryParams) (*ProductQuery, error) {
	q := &ProductQuery{
		SortBy:   "createdAt",
		SortDesc: true,
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}

	if term := strings.TrimSpace(params.Search); term != "" {
		q.Conditions = append(q.Conditions, TextSearchCondition{Term: term})
	}

	if params.Category != "" {
		if !primitive.IsValidObjectID(params.Category) {
			return nil, common.NewError(
				common.ErrCodeValidationReference,
				"ID danh mục không đúng định dạng ObjectID",
				common.StatusBadRequest,
				nil,
			)
		}
		q.Conditions = append(q.Conditions, CategoryEqCondition{ID: utility.String2ObjectID(params.Category)})
	}

	if params.Size != "" {
		if !primitive.IsValidObjectID(params.Size) {
			return nil, common.NewError(
				common.ErrCodeValidationReference,
				"ID kích cỡ không đúng định dạng ObjectID",
				common.StatusBadRequest,
				nil,
			)
		}
		q.Conditions = append(q.Conditions, SizeEqCondition{ID: utility.String2ObjectID(params.Size)})
	}

	if term := strings.TrimSpace(params.Brand); term != "" {
		q.Conditions = append(q.Conditions, BrandSubstringCondition{Term: term})
	}

	// Cờ boolean là tri-state: bỏ trống là không lọc, có giá trị thì
	// true khi và chỉ khi đúng chuỗi "true"
	for field, raw := range map[string]string{
		"isActive":   params.IsActive,
		"isFeatured": params.IsFeatured,
		"isOnSale":   params.IsOnSale,
	} {
		if raw != "" {
			q.Conditions = append(q.Conditions, BooleanFlagCondition{Field: field, Value: raw == "true"})
		}
	}

	minPrice := parsePrice(params.MinPrice)
	maxPrice := parsePrice(params.MaxPrice)
	if minPrice != nil || maxPrice != nil {
		q.Conditions = append(q.Conditions, PriceRangeCondition{Min: minPrice, Max: maxPrice})
	}

	if params.SortBy != "" {
		q.SortBy = params.SortBy
	}
	if params.SortOrder != "" {
		q.SortDesc = params.SortOrder == "desc"
	}

	q.Page = parsePositive(params.Page, DefaultPage)
	q.Limit = parsePositive(params.Limit, DefaultLimit)

	return q, nil
}

// CompileConditions hạ danh sách điều kiện xuống bson.M.
// Các điều kiện đơn giản nằm phẳng trên document gốc; tìm toàn văn và
// khoảng giá sinh các mệnh đề $or nên phải gom vào $and tầng trên cùng
// để không ghi đè lẫn nhau.
func CompileConditions(conditions []FilterCondition) bson.M {
	filter := bson.M{}
	var andClauses []bson.M

	for _, condition := range conditions {
		switch cond := condition.(type) {
		case TextSearchCondition:
			pattern := regexp.QuoteMeta(cond.Term)
			andClauses = append(andClauses, bson.M{"$or": []bson.M{
				{"name": bson.M{"$regex": pattern, "$options": "i"}},
				{"description": bson.M{"$regex": pattern, "$options": "i"}},
				{"brand": bson.M{"$regex": pattern, "$options": "i"}},
				{"tags": bson.M{"$regex": pattern, "$options": "i"}},
			}})
		case CategoryEqCondition:
			filter["category"] = cond.ID
		case SizeEqCondition:
			filter["sizes.size"] = cond.ID
		case BrandSubstringCondition:
			filter["brand"] = bson.M{"$regex": regexp.QuoteMeta(cond.Term), "$options": "i"}
		case BooleanFlagCondition:
			filter[cond.Field] = cond.Value
		case PriceRangeCondition:
			// Cả hai chặn phải khớp trên CÙNG một phần tử mảng, vì vậy
			// dùng $elemMatch thay vì hai mệnh đề rời trên đường dẫn multikey:
			// sản phẩm chỉ có biến thể 5 và 60 không được khớp khoảng [10,50].
			bounds := bson.M{}
			if cond.Min != nil {
				bounds["$gte"] = *cond.Min
			}
			if cond.Max != nil {
				bounds["$lte"] = *cond.Max
			}
			if len(bounds) > 0 {
				andClauses = append(andClauses, bson.M{"sizes": bson.M{
					"$elemMatch": bson.M{"$or": []bson.M{
						{"price": bounds},
						{"salePrice": bounds},
					}},
				}})
			}
		}
	}

	if len(andClauses) > 0 {
		filter["$and"] = andClauses
	}
	return filter
}

// SortDoc trả về document sắp xếp cho driver Mongo
func (q *ProductQuery) SortDoc() bson.D {
	direction := 1
	if q.SortDesc {
		direction = -1
	}
	return bson.D{{Key: q.SortBy, Value: direction}}
}

// parsePrice đọc một chặn giá từ chuỗi, giá trị không hợp lệ bị bỏ qua
func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// parsePositive ép chuỗi về số nguyên dương, sai định dạng hoặc <= 0 thì
// dùng giá trị mặc định
func parsePositive(s string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// Pagination là khối phân trang trong envelope trả về của danh sách sản phẩm
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int64 `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination tính khối phân trang từ trang hiện tại, limit và tổng số phần tử
func NewPagination(page, limit, total int64) Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// ProductPage là envelope trả về của các endpoint liệt kê sản phẩm
type ProductPage struct {
	Items      []models.ProductView `json:"items"`
	Pagination Pagination           `json:"pagination"`
}
