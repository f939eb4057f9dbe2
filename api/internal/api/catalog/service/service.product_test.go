package catalogsvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	"shop_catalog/api/internal/common"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestValidateVariant(t *testing.T) {
	tests := []struct {
		ten     string
		input   catalogdto.ProductSizeInput
		wantErr bool
	}{
		{"giá và tồn kho hợp lệ", catalogdto.ProductSizeInput{Price: 100, Stock: 5}, false},
		{"giá bằng 0 hợp lệ", catalogdto.ProductSizeInput{Price: 0, Stock: 0}, false},
		{"giá âm", catalogdto.ProductSizeInput{Price: -1, Stock: 5}, true},
		{"tồn kho âm", catalogdto.ProductSizeInput{Price: 100, Stock: -3}, true},
		{"giá khuyến mãi nhỏ hơn giá gốc", catalogdto.ProductSizeInput{Price: 100, SalePrice: floatPtr(80), Stock: 5}, false},
		{"giá khuyến mãi âm", catalogdto.ProductSizeInput{Price: 100, SalePrice: floatPtr(-10), Stock: 5}, true},
		{"giá khuyến mãi bằng giá gốc bị từ chối", catalogdto.ProductSizeInput{Price: 100, SalePrice: floatPtr(100), Stock: 5}, true},
		{"giá khuyến mãi lớn hơn giá gốc", catalogdto.ProductSizeInput{Price: 100, SalePrice: floatPtr(120), Stock: 5}, true},
		{"khối lượng hợp lệ", catalogdto.ProductSizeInput{Price: 100, Stock: 5, Weight: floatPtr(250)}, false},
		{"khối lượng âm", catalogdto.ProductSizeInput{Price: 100, Stock: 5, Weight: floatPtr(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.ten, func(t *testing.T) {
			err := validateVariant(0, &tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("Biến thể %+v phải bị từ chối nhưng lại được chấp nhận", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Biến thể %+v hợp lệ nhưng bị từ chối: %v", tt.input, err)
			}
			if tt.wantErr && err != nil {
				var appErr *common.Error
				if !errors.As(err, &appErr) {
					t.Errorf("Lỗi ràng buộc phải là *common.Error, nhận được %T", err)
				} else if appErr.StatusCode != common.StatusBadRequest {
					t.Errorf("Lỗi ràng buộc phải trả 400, nhận được %d", appErr.StatusCode)
				}
			}
		})
	}
}

func TestNormalizeImages(t *testing.T) {
	t.Run("không ảnh nào được đánh dấu thì ảnh đầu thành đại diện", func(t *testing.T) {
		images := NormalizeImages([]models.ProductImage{
			{URL: "a.jpg"},
			{URL: "b.jpg"},
		})
		if !images[0].IsPrimary {
			t.Error("Ảnh đầu tiên phải được đánh dấu đại diện")
		}
		if images[1].IsPrimary {
			t.Error("Ảnh thứ hai không được đánh dấu đại diện")
		}
	})

	t.Run("nhiều ảnh được đánh dấu thì ảnh gặp đầu tiên giữ", func(t *testing.T) {
		images := NormalizeImages([]models.ProductImage{
			{URL: "a.jpg"},
			{URL: "b.jpg", IsPrimary: true},
			{URL: "c.jpg", IsPrimary: true},
		})
		if images[0].IsPrimary {
			t.Error("Ảnh không được đánh dấu phải giữ nguyên")
		}
		if !images[1].IsPrimary {
			t.Error("Ảnh được đánh dấu đầu tiên phải giữ vai trò đại diện")
		}
		if images[2].IsPrimary {
			t.Error("Các ảnh được đánh dấu sau phải bị bỏ đánh dấu")
		}
	})

	t.Run("đúng một ảnh được đánh dấu thì giữ nguyên", func(t *testing.T) {
		images := NormalizeImages([]models.ProductImage{
			{URL: "a.jpg"},
			{URL: "b.jpg", IsPrimary: true},
		})
		if images[0].IsPrimary || !images[1].IsPrimary {
			t.Error("Danh sách đã chuẩn không được thay đổi")
		}
	})

	t.Run("danh sách rỗng không panic", func(t *testing.T) {
		images := NormalizeImages(nil)
		if len(images) != 0 {
			t.Error("Danh sách rỗng phải trả về rỗng")
		}
	})

	// Luôn có đúng một ảnh đại diện sau chuẩn hóa
	t.Run("bất biến một ảnh đại diện", func(t *testing.T) {
		cases := [][]models.ProductImage{
			{{URL: "a.jpg"}},
			{{URL: "a.jpg", IsPrimary: true}, {URL: "b.jpg", IsPrimary: true}, {URL: "c.jpg", IsPrimary: true}},
			{{URL: "a.jpg"}, {URL: "b.jpg"}, {URL: "c.jpg"}},
		}
		for _, images := range cases {
			normalized := NormalizeImages(images)
			count := 0
			for _, img := range normalized {
				if img.IsPrimary {
					count++
				}
			}
			if count != 1 {
				t.Errorf("Sau chuẩn hóa phải có đúng 1 ảnh đại diện, đếm được %d", count)
			}
		}
	})
}

func TestNewProductView(t *testing.T) {
	product := models.Product{
		Sizes: []models.ProductSize{
			{Price: 100, SalePrice: floatPtr(80), Stock: 3, IsActive: true},
			{Price: 150, Stock: 2, IsActive: true},
			{Price: 10, SalePrice: floatPtr(5), Stock: 99, IsActive: false}, // biến thể ngừng bán, bỏ qua
		},
	}

	view := models.NewProductView(product)
	if view.LowestPrice != 80 {
		t.Errorf("Giá thấp nhất phải là 80 (giá khuyến mãi), nhận được %v", view.LowestPrice)
	}
	if view.HighestPrice != 150 {
		t.Errorf("Giá cao nhất phải là 150, nhận được %v", view.HighestPrice)
	}
	if view.TotalStock != 5 {
		t.Errorf("Tổng tồn kho của biến thể đang bán phải là 5, nhận được %d", view.TotalStock)
	}
	if !view.InStock {
		t.Error("Tổng tồn kho dương thì inStock phải là true")
	}
}

func TestNewProductView_HetHang(t *testing.T) {
	product := models.Product{
		Sizes: []models.ProductSize{
			{Price: 100, Stock: 0, IsActive: true},
		},
	}
	view := models.NewProductView(product)
	if view.InStock {
		t.Error("Tồn kho bằng 0 thì inStock phải là false")
	}
	if view.LowestPrice != 100 || view.HighestPrice != 100 {
		t.Errorf("Một biến thể thì giá thấp nhất và cao nhất đều là 100, nhận được %v và %v", view.LowestPrice, view.HighestPrice)
	}
}

func TestBuildImages_SapTheoOrder(t *testing.T) {
	images := buildImages([]catalogdto.ProductImageInput{
		{URL: "c.jpg", Order: 2},
		{URL: "a.jpg", Order: 0, IsPrimary: true},
		{URL: "b.jpg", Order: 1},
		{URL: "b2.jpg", Order: 1},
	})

	want := []string{"a.jpg", "b.jpg", "b2.jpg", "c.jpg"}
	for i, url := range want {
		if images[i].URL != url {
			t.Errorf("Ảnh tại vị trí %d phải là %s theo order, nhận được %s", i, url, images[i].URL)
		}
	}
	if !images[0].IsPrimary {
		t.Error("Ảnh đại diện phải được giữ sau khi sắp theo order")
	}
}

// refCheckStub ghi lại thứ tự các lượt tra tồn tại thay cho database thật
type refCheckStub struct {
	kind   string
	exists bool
	calls  *[]string
}

func (s refCheckStub) DocumentExists(_ context.Context, _ interface{}) (bool, error) {
	*s.calls = append(*s.calls, s.kind)
	return s.exists, nil
}

func TestThuTuKiemTraThamChieu(t *testing.T) {
	validID := primitive.NewObjectID().Hex()

	t.Run("danh mục sai định dạng thì không tra database nào cả", func(t *testing.T) {
		var calls []string
		svc := &ProductService{
			categoryService: refCheckStub{kind: "category", exists: true, calls: &calls},
			sizeService:     refCheckStub{kind: "size", exists: true, calls: &calls},
		}

		_, err := svc.Create(context.Background(), "admin", &catalogdto.ProductCreateInput{
			Name:     "Giày chạy bộ",
			Category: "khong-phai-objectid",
			Sizes:    []catalogdto.ProductSizeInput{{Size: "cung-sai", Price: 100}},
		})
		if err == nil {
			t.Fatal("Danh mục sai định dạng phải bị từ chối")
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.Code != common.ErrCodeValidationReference {
			t.Errorf("Lỗi phải mang mã tham chiếu, nhận được %v", err)
		}
		if len(calls) != 0 {
			t.Errorf("Kiểm tra cú pháp phải chặn trước mọi lượt tra database, đã tra %v", calls)
		}
	})

	t.Run("danh mục không tồn tại thắng mọi lỗi kích cỡ", func(t *testing.T) {
		var calls []string
		svc := &ProductService{
			categoryService: refCheckStub{kind: "category", exists: false, calls: &calls},
			sizeService:     refCheckStub{kind: "size", exists: false, calls: &calls},
		}

		_, err := svc.Create(context.Background(), "admin", &catalogdto.ProductCreateInput{
			Name:     "Giày chạy bộ",
			Category: validID,
			Sizes:    []catalogdto.ProductSizeInput{{Size: "sai-dinh-dang", Price: 100}},
		})
		if err == nil {
			t.Fatal("Danh mục không tồn tại phải bị từ chối")
		}
		if !strings.Contains(err.Error(), "Danh mục") {
			t.Errorf("Lỗi phải nói về danh mục, nhận được: %v", err)
		}
		if len(calls) != 1 || calls[0] != "category" {
			t.Errorf("Chỉ danh mục được tra, các kích cỡ chưa đến lượt; thứ tự thực tế %v", calls)
		}
	})

	t.Run("kích cỡ sai đầu tiên thắng và báo đúng vị trí", func(t *testing.T) {
		var calls []string
		svc := &ProductService{
			categoryService: refCheckStub{kind: "category", exists: true, calls: &calls},
			sizeService:     refCheckStub{kind: "size", exists: true, calls: &calls},
		}

		_, err := svc.Create(context.Background(), "admin", &catalogdto.ProductCreateInput{
			Name:     "Giày chạy bộ",
			Category: validID,
			Sizes: []catalogdto.ProductSizeInput{
				{Size: validID, Price: 100},
				{Size: "sai-dinh-dang", Price: 100},
				{Size: "cung-sai", Price: 100},
			},
		})
		if err == nil {
			t.Fatal("Kích cỡ sai định dạng phải bị từ chối")
		}
		if !strings.Contains(err.Error(), "vị trí 1") {
			t.Errorf("Lỗi phải chỉ đúng vị trí 1, nhận được: %v", err)
		}
		if len(calls) != 2 || calls[0] != "category" || calls[1] != "size" {
			t.Errorf("Thứ tự tra phải là danh mục rồi kích cỡ 0, dừng ở kích cỡ sai; thực tế %v", calls)
		}
	})
}
