package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop_catalog/api/internal/api/catalog/dto"
)

func TestParseProductQuery_MacDinh(t *testing.T) {
	q, err := ParseProductQuery(&catalogdto.ProductQueryParams{})
	require.NoError(t, err, "Tham số rỗng không được gây lỗi")

	assert.Empty(t, q.Conditions, "Không có tham số thì không có điều kiện lọc")
	assert.Equal(t, "createdAt", q.SortBy, "Trường sắp xếp mặc định phải là createdAt")
	assert.True(t, q.SortDesc, "Chiều sắp xếp mặc định phải là giảm dần")
	assert.Equal(t, int64(1), q.Page, "Trang mặc định phải là 1")
	assert.Equal(t, int64(10), q.Limit, "Limit mặc định phải là 10")
}

func TestParseProductQuery_EpKieuPhanTrang(t *testing.T) {
	tests := []struct {
		ten       string
		page      string
		limit     string
		wantPage  int64
		wantLimit int64
	}{
		{"số hợp lệ", "3", "25", 3, 25},
		{"không phải số", "abc", "xyz", 1, 10},
		{"số âm", "-2", "-5", 1, 10},
		{"số 0", "0", "0", 1, 10},
		{"chuỗi rỗng", "", "", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.ten, func(t *testing.T) {
			q, err := ParseProductQuery(&catalogdto.ProductQueryParams{Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, q.Page, "Trang ép kiểu sai")
			assert.Equal(t, tt.wantLimit, q.Limit, "Limit ép kiểu sai")
		})
	}
}

func TestParseProductQuery_CoBoolean(t *testing.T) {
	// Tri-state: bỏ trống là không lọc, có giá trị thì true chỉ khi đúng "true"
	q, err := ParseProductQuery(&catalogdto.ProductQueryParams{IsActive: "true", IsFeatured: "false", IsOnSale: "1"})
	require.NoError(t, err)
	require.Len(t, q.Conditions, 3, "Ba cờ có giá trị phải sinh ba điều kiện")

	values := map[string]bool{}
	for _, cond := range q.Conditions {
		flag, ok := cond.(BooleanFlagCondition)
		require.True(t, ok, "Điều kiện phải là BooleanFlagCondition")
		values[flag.Field] = flag.Value
	}
	assert.True(t, values["isActive"], "isActive=true phải cho giá trị true")
	assert.False(t, values["isFeatured"], "isFeatured=false phải cho giá trị false")
	assert.False(t, values["isOnSale"], `isOnSale="1" khác "true" nên phải là false`)
}

func TestParseProductQuery_IDSaiDinhDang(t *testing.T) {
	_, err := ParseProductQuery(&catalogdto.ProductQueryParams{Category: "khong-phai-objectid"})
	require.Error(t, err, "Category sai định dạng phải bị từ chối trước khi chạm database")

	_, err = ParseProductQuery(&catalogdto.ProductQueryParams{Size: "1234"})
	require.Error(t, err, "Size sai định dạng phải bị từ chối trước khi chạm database")
}

func TestParseProductQuery_SapXep(t *testing.T) {
	q, err := ParseProductQuery(&catalogdto.ProductQueryParams{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "name", q.SortBy)
	assert.False(t, q.SortDesc, `Mọi giá trị khác "desc" phải hiểu là tăng dần`)

	q, err = ParseProductQuery(&catalogdto.ProductQueryParams{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	assert.True(t, q.SortDesc)

	doc := q.SortDoc()
	require.Len(t, doc, 1)
	assert.Equal(t, "name", doc[0].Key)
	assert.Equal(t, -1, doc[0].Value)
}

func TestCompileConditions_KhoangGia(t *testing.T) {
	min := 10.0
	max := 50.0
	filter := CompileConditions([]FilterCondition{PriceRangeCondition{Min: &min, Max: &max}})

	andClauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok, "Khoảng giá phải sinh mệnh đề $and tầng trên cùng")
	require.Len(t, andClauses, 1, "Hai chặn giá gom vào MỘT mệnh đề $elemMatch")

	// Cả hai chặn phải nằm trong $elemMatch để áp lên CÙNG một biến thể;
	// hai mệnh đề rời trên sizes.price cho phép mỗi chặn khớp một phần
	// tử mảng khác nhau (ngữ nghĩa multikey của Mongo).
	elemMatch, ok := andClauses[0]["sizes"].(bson.M)["$elemMatch"].(bson.M)
	require.True(t, ok, "Chặn giá phải hạ xuống sizes.$elemMatch")
	orClauses, ok := elemMatch["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, orClauses, 2, "$elemMatch phủ cả price lẫn salePrice")
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, orClauses[0]["price"])
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, orClauses[1]["salePrice"])

	// Sản phẩm chỉ có biến thể 5 và 60: biến thể nào cũng trượt một chặn,
	// nên không phần tử đơn lẻ nào nằm trong khoảng và sản phẩm bị loại
	assert.False(t, matchCompiledPriceFilter(andClauses, []float64{5, 60}),
		"Sản phẩm chỉ có biến thể 5 và 60 phải bị loại khỏi khoảng [10, 50]")
	assert.False(t, matchCompiledPriceFilter(andClauses, []float64{5}), "Giá 5 phải bị loại")
	assert.False(t, matchCompiledPriceFilter(andClauses, []float64{60}), "Giá 60 phải bị loại")
	assert.True(t, matchCompiledPriceFilter(andClauses, []float64{5, 30, 60}),
		"Có một biến thể 30 nằm trong khoảng thì sản phẩm được nhận")
	assert.True(t, matchCompiledPriceFilter(andClauses, []float64{10}), "Biên dưới 10 phải được nhận (bao gồm)")
	assert.True(t, matchCompiledPriceFilter(andClauses, []float64{50}), "Biên trên 50 phải được nhận (bao gồm)")
}

func TestCompileConditions_KhoangGiaMotChan(t *testing.T) {
	min := 100.0
	filter := CompileConditions([]FilterCondition{PriceRangeCondition{Min: &min}})

	andClauses := filter["$and"].([]bson.M)
	require.Len(t, andClauses, 1)
	elemMatch := andClauses[0]["sizes"].(bson.M)["$elemMatch"].(bson.M)
	orClauses := elemMatch["$or"].([]bson.M)
	assert.Equal(t, bson.M{"$gte": 100.0}, orClauses[0]["price"], "Thiếu chặn trên thì chỉ còn $gte")
	assert.Equal(t, bson.M{"$gte": 100.0}, orClauses[1]["salePrice"])
}

// matchCompiledPriceFilter giả lập cách Mongo đánh giá filter đã biên dịch
// trên mảng biến thể: mệnh đề $elemMatch chỉ thỏa khi tồn tại MỘT phần tử
// thỏa toàn bộ các chặn. Mỗi giá trong prices là một biến thể chỉ có giá gốc.
func matchCompiledPriceFilter(andClauses []bson.M, prices []float64) bool {
	for _, clause := range andClauses {
		elemMatch := clause["sizes"].(bson.M)["$elemMatch"].(bson.M)
		orClauses := elemMatch["$or"].([]bson.M)
		matched := false
		for _, price := range prices {
			for _, or := range orClauses {
				bound, ok := or["price"].(bson.M)
				if !ok {
					continue
				}
				elementOK := true
				if v, ok := bound["$gte"].(float64); ok && price < v {
					elementOK = false
				}
				if v, ok := bound["$lte"].(float64); ok && price > v {
					elementOK = false
				}
				if elementOK {
					matched = true
				}
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func TestCompileConditions_TimKiemVaKhoangGiaCungTonTai(t *testing.T) {
	// Tìm toàn văn và chặn giá đều sinh $or, phải nằm chung trong $and
	// tầng trên cùng chứ không được ghi đè lẫn nhau
	min := 100.0
	filter := CompileConditions([]FilterCondition{
		TextSearchCondition{Term: "giày"},
		PriceRangeCondition{Min: &min},
	})

	andClauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok, "Tìm kiếm + chặn giá phải gom vào $and tầng trên cùng")
	require.Len(t, andClauses, 2, "Một mệnh đề tìm kiếm và một mệnh đề chặn giá")

	searchOr, ok := andClauses[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, searchOr, 4, "Tìm toàn văn phủ name/description/brand/tags")

	fields := []string{}
	for _, or := range searchOr {
		for field := range or {
			fields = append(fields, field)
		}
	}
	assert.ElementsMatch(t, []string{"name", "description", "brand", "tags"}, fields)
}

func TestCompileConditions_DieuKienDon(t *testing.T) {
	categoryID := primitive.NewObjectID()
	sizeID := primitive.NewObjectID()

	filter := CompileConditions([]FilterCondition{
		CategoryEqCondition{ID: categoryID},
		SizeEqCondition{ID: sizeID},
		BrandSubstringCondition{Term: "nike"},
		BooleanFlagCondition{Field: "isActive", Value: true},
	})

	assert.Equal(t, categoryID, filter["category"], "Lọc danh mục phải so khớp đúng ID")
	assert.Equal(t, sizeID, filter["sizes.size"], "Lọc kích cỡ phải so khớp trường nhúng sizes.size")
	assert.Equal(t, true, filter["isActive"])
	brand, ok := filter["brand"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "i", brand["$options"], "So khớp thương hiệu không phân biệt hoa thường")
	assert.NotContains(t, filter, "$and", "Điều kiện đơn không cần $and")
}

func TestNewPagination(t *testing.T) {
	// 25 phần tử, limit 10: 3 trang
	tests := []struct {
		ten      string
		page     int64
		wantNext bool
		wantPrev bool
	}{
		{"trang đầu", 1, true, false},
		{"trang giữa", 2, true, true},
		{"trang cuối", 3, false, true},
		{"quá trang cuối", 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.ten, func(t *testing.T) {
			p := NewPagination(tt.page, 10, 25)
			assert.Equal(t, int64(3), p.TotalPages, "25 phần tử với limit 10 phải có 3 trang")
			assert.Equal(t, int64(25), p.TotalItems)
			assert.Equal(t, int64(10), p.ItemsPerPage)
			assert.Equal(t, tt.wantNext, p.HasNextPage, "Cờ hasNextPage sai")
			assert.Equal(t, tt.wantPrev, p.HasPrevPage, "Cờ hasPrevPage sai")
		})
	}

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, int64(0), empty.TotalPages, "Không có phần tử thì tổng số trang là 0")
	assert.False(t, empty.HasNextPage)
}
