package catalogsvc

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	basesvc "shop_catalog/api/internal/api/base/service"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/global"
	"shop_catalog/api/internal/utility"
)

// existenceChecker là phần duy nhất của kho dữ liệu mà bước kiểm tra tham
// chiếu cần đến, tách thành interface hẹp để kiểm thử thứ tự kiểm tra mà
// không cần database thật.
type existenceChecker interface {
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// ProductService xử lý nghiệp vụ của sản phẩm: kiểm tra tham chiếu,
// ràng buộc giá/tồn kho, chuẩn hóa ảnh đại diện và truy vấn động.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	categoryService existenceChecker
	sizeService     existenceChecker
}

// NewProductService tạo ProductService mới với các collection từ registry
func NewProductService() (*ProductService, error) {
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, common.NewError(common.ErrCodeDatabaseConnection, "Không tìm thấy collection products", common.StatusInternalServerError, nil)
	}
	categoryCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, common.NewError(common.ErrCodeDatabaseConnection, "Không tìm thấy collection categories", common.StatusInternalServerError, nil)
	}
	sizeCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sizes)
	if !exist {
		return nil, common.NewError(common.ErrCodeDatabaseConnection, "Không tìm thấy collection sizes", common.StatusInternalServerError, nil)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCol),
		categoryService:      basesvc.NewBaseServiceMongo[models.Category](categoryCol),
		sizeService:          basesvc.NewBaseServiceMongo[models.Size](sizeCol),
	}, nil
}

// validateCategoryRef kiểm tra tham chiếu danh mục theo hai bậc:
// cú pháp ObjectID trước, rồi mới tra tồn tại trong database.
func (s *ProductService) validateCategoryRef(ctx context.Context, raw string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationReference,
			"ID danh mục không đúng định dạng ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}
	id := utility.String2ObjectID(raw)
	exists, err := s.categoryService.DocumentExists(ctx, bson.M{"_id": id})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !exists {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationReference,
			"Danh mục không tồn tại",
			common.StatusBadRequest,
			nil,
		)
	}
	return id, nil
}

// buildVariants kiểm tra tham chiếu kích cỡ và ràng buộc giá/tồn kho của
// từng biến thể theo đúng thứ tự trong mảng, dừng ở phần tử sai đầu tiên.
func (s *ProductService) buildVariants(ctx context.Context, inputs []catalogdto.ProductSizeInput) ([]models.ProductSize, error) {
	if len(inputs) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Sản phẩm phải có ít nhất một biến thể kích cỡ",
			common.StatusBadRequest,
			nil,
		)
	}

	variants := make([]models.ProductSize, 0, len(inputs))
	for i, input := range inputs {
		if !primitive.IsValidObjectID(input.Size) {
			return nil, common.NewError(
				common.ErrCodeValidationReference,
				fmt.Sprintf("ID kích cỡ tại vị trí %d không đúng định dạng ObjectID", i),
				common.StatusBadRequest,
				nil,
			)
		}
		sizeID := utility.String2ObjectID(input.Size)
		exists, err := s.sizeService.DocumentExists(ctx, bson.M{"_id": sizeID})
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.NewError(
				common.ErrCodeValidationReference,
				fmt.Sprintf("Kích cỡ tại vị trí %d không tồn tại", i),
				common.StatusBadRequest,
				nil,
			)
		}

		if err := validateVariant(i, &input); err != nil {
			return nil, err
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}
		variants = append(variants, models.ProductSize{
			Size:      sizeID,
			Price:     input.Price,
			SalePrice: input.SalePrice,
			Stock:     input.Stock,
			Weight:    input.Weight,
			IsActive:  isActive,
		})
	}
	return variants, nil
}

// validateVariant áp các ràng buộc giá/tồn kho lên một biến thể.
// Giá khuyến mãi phải NHỎ HƠN HẲN giá gốc, bằng nhau cũng bị từ chối.
func validateVariant(index int, input *catalogdto.ProductSizeInput) error {
	if input.Price < 0 {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Giá của biến thể tại vị trí %d phải lớn hơn hoặc bằng 0", index),
			common.StatusBadRequest,
			nil,
		)
	}
	if input.SalePrice != nil {
		if *input.SalePrice < 0 {
			return common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Giá khuyến mãi của biến thể tại vị trí %d phải lớn hơn hoặc bằng 0", index),
				common.StatusBadRequest,
				nil,
			)
		}
		if *input.SalePrice >= input.Price {
			return common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Giá khuyến mãi của biến thể tại vị trí %d phải nhỏ hơn giá gốc", index),
				common.StatusBadRequest,
				nil,
			)
		}
	}
	if input.Stock < 0 {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Tồn kho của biến thể tại vị trí %d phải lớn hơn hoặc bằng 0", index),
			common.StatusBadRequest,
			nil,
		)
	}
	if input.Weight != nil && *input.Weight < 0 {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Khối lượng của biến thể tại vị trí %d phải lớn hơn hoặc bằng 0", index),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// NormalizeImages đảm bảo có đúng một ảnh đại diện: không ảnh nào được đánh
// dấu thì ảnh đầu tiên thành đại diện; nhiều ảnh được đánh dấu thì ảnh gặp
// đầu tiên giữ, các ảnh sau bị bỏ đánh dấu. Chuẩn hóa âm thầm, không báo lỗi.
func NormalizeImages(images []models.ProductImage) []models.ProductImage {
	if len(images) == 0 {
		return images
	}
	primarySeen := false
	for i := range images {
		if images[i].IsPrimary {
			if primarySeen {
				images[i].IsPrimary = false
			}
			primarySeen = true
		}
	}
	if !primarySeen {
		images[0].IsPrimary = true
	}
	return images
}

// buildImages chuyển ảnh từ payload sang model, sắp theo order tăng dần
// (sắp ổn định nên ảnh cùng order giữ nguyên thứ tự payload) rồi chuẩn hóa
// ảnh đại diện trên danh sách đã sắp.
func buildImages(inputs []catalogdto.ProductImageInput) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(inputs))
	for _, input := range inputs {
		images = append(images, models.ProductImage{
			URL:       input.URL,
			Alt:       input.Alt,
			IsPrimary: input.IsPrimary,
			Order:     input.Order,
		})
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].Order < images[j].Order })
	return NormalizeImages(images)
}

func buildDimensions(input *catalogdto.ProductDimensionsInput) *models.ProductDimensions {
	if input == nil {
		return nil
	}
	return &models.ProductDimensions{
		Length: input.Length,
		Width:  input.Width,
		Height: input.Height,
	}
}

// Create tạo sản phẩm mới. Thứ tự kiểm tra: danh mục trước, rồi từng biến
// thể theo thứ tự mảng; mọi lỗi đều được phát hiện trước khi ghi database.
func (s *ProductService) Create(ctx context.Context, adminID string, input *catalogdto.ProductCreateInput) (models.ProductView, error) {
	var zero models.ProductView

	categoryID, err := s.validateCategoryRef(ctx, input.Category)
	if err != nil {
		return zero, err
	}
	variants, err := s.buildVariants(ctx, input.Sizes)
	if err != nil {
		return zero, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	isFeatured := input.IsFeatured != nil && *input.IsFeatured
	isOnSale := input.IsOnSale != nil && *input.IsOnSale

	product := models.Product{
		Name:             input.Name,
		Slug:             utility.GenerateSlug(input.Name),
		SKU:              utility.GenerateEntityCode(input.Name, utility.CodeMaxLenProduct),
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Brand:            input.Brand,
		Model:            input.Model,
		Color:            input.Color,
		Material:         input.Material,
		Dimensions:       buildDimensions(input.Dimensions),
		Weight:           input.Weight,
		Category:         categoryID,
		Sizes:            variants,
		Images:           buildImages(input.Images),
		Tags:             input.Tags,
		MetaTitle:        input.MetaTitle,
		MetaDescription:  input.MetaDescription,
		MetaKeywords:     input.MetaKeywords,
		IsActive:         isActive,
		IsFeatured:       isFeatured,
		IsOnSale:         isOnSale,
		CreatedBy:        adminID,
		UpdatedBy:        adminID,
	}

	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return zero, err
	}
	return models.NewProductView(created), nil
}

// Update cập nhật sản phẩm; đổi tên sinh lại slug/SKU, danh mục và biến thể
// được kiểm tra lại như lúc tạo khi có trong payload.
func (s *ProductService) Update(ctx context.Context, adminID string, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) (models.ProductView, error) {
	var zero models.ProductView

	set := bson.M{"updatedBy": adminID}

	if input.Category != nil {
		categoryID, err := s.validateCategoryRef(ctx, *input.Category)
		if err != nil {
			return zero, err
		}
		set["category"] = categoryID
	}
	if input.Sizes != nil {
		variants, err := s.buildVariants(ctx, input.Sizes)
		if err != nil {
			return zero, err
		}
		set["sizes"] = variants
	}
	if input.Name != nil {
		set["name"] = *input.Name
		set["slug"] = utility.GenerateSlug(*input.Name)
		set["sku"] = utility.GenerateEntityCode(*input.Name, utility.CodeMaxLenProduct)
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.ShortDescription != nil {
		set["shortDescription"] = *input.ShortDescription
	}
	if input.Brand != nil {
		set["brand"] = *input.Brand
	}
	if input.Model != nil {
		set["model"] = *input.Model
	}
	if input.Color != nil {
		set["color"] = *input.Color
	}
	if input.Material != nil {
		set["material"] = *input.Material
	}
	if input.Dimensions != nil {
		set["dimensions"] = buildDimensions(input.Dimensions)
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}
	if input.Images != nil {
		set["images"] = buildImages(input.Images)
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.MetaTitle != nil {
		set["metaTitle"] = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		set["metaDescription"] = *input.MetaDescription
	}
	if input.MetaKeywords != nil {
		set["metaKeywords"] = input.MetaKeywords
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if input.IsFeatured != nil {
		set["isFeatured"] = *input.IsFeatured
	}
	if input.IsOnSale != nil {
		set["isOnSale"] = *input.IsOnSale
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, err
	}
	return models.NewProductView(updated), nil
}

// List thực thi truy vấn động: biên dịch điều kiện lọc, sắp xếp, phân trang
// và trả envelope items + pagination với các trường dẫn xuất đã tính.
func (s *ProductService) List(ctx context.Context, query *ProductQuery) (*ProductPage, error) {
	filter := CompileConditions(query.Conditions)
	opts := options.Find().SetSort(query.SortDoc())

	result, err := s.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Items:      models.NewProductViews(result.Items),
		Pagination: NewPagination(query.Page, query.Limit, result.Total),
	}, nil
}

// GetDetail trả chi tiết sản phẩm theo slug hoặc ID và tăng số lượt xem.
// Tham số nhận cả hai dạng: chuỗi hex 24 ký tự được hiểu là ID, còn lại là slug.
func (s *ProductService) GetDetail(ctx context.Context, idOrSlug string) (models.ProductView, error) {
	var zero models.ProductView

	filter := bson.M{"slug": idOrSlug}
	if primitive.IsValidObjectID(idOrSlug) {
		filter = bson.M{"_id": utility.String2ObjectID(idOrSlug)}
	}

	product, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}

	// Tăng lượt xem, lỗi ở đây không chặn việc trả chi tiết
	if _, err := s.UpdateById(ctx, product.ID, &basesvc.UpdateData{Inc: bson.M{"viewCount": 1}}); err == nil {
		product.ViewCount++
	}

	return models.NewProductView(product), nil
}

// GetByID trả chi tiết sản phẩm cho trang quản trị, không tăng lượt xem
func (s *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (models.ProductView, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.ProductView{}, err
	}
	return models.NewProductView(product), nil
}

// Featured trả các sản phẩm nổi bật đang hiển thị, mới tạo trước
func (s *ProductService) Featured(ctx context.Context, limitRaw string) ([]models.ProductView, error) {
	limit := parsePositive(limitRaw, DefaultLimit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	products, err := s.Find(ctx, bson.M{"isActive": true, "isFeatured": true}, opts)
	if err != nil {
		return nil, err
	}
	return models.NewProductViews(products), nil
}

// ByCategory trả các sản phẩm đang hiển thị thuộc một danh mục, có phân trang
func (s *ProductService) ByCategory(ctx context.Context, categoryRaw string, pageRaw, limitRaw string) (*ProductPage, error) {
	if !primitive.IsValidObjectID(categoryRaw) {
		return nil, common.NewError(
			common.ErrCodeValidationReference,
			"ID danh mục không đúng định dạng ObjectID",
			common.StatusBadRequest,
			nil,
		)
	}

	page := parsePositive(pageRaw, DefaultPage)
	limit := parsePositive(limitRaw, DefaultLimit)
	filter := bson.M{
		"category": utility.String2ObjectID(categoryRaw),
		"isActive": true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}
	return &ProductPage{
		Items:      models.NewProductViews(result.Items),
		Pagination: NewPagination(page, limit, result.Total),
	}, nil
}

// Các cờ boolean của sản phẩm được phép đảo qua endpoint toggle
const (
	ToggleFieldActive   = "isActive"
	ToggleFieldFeatured = "isFeatured"
	ToggleFieldOnSale   = "isOnSale"
)

// Toggle đảo một cờ boolean của sản phẩm và trả về bản ghi sau khi đổi
func (s *ProductService) Toggle(ctx context.Context, adminID string, id primitive.ObjectID, field string) (models.ProductView, error) {
	var zero models.ProductView

	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	var newValue bool
	switch field {
	case ToggleFieldActive:
		newValue = !product.IsActive
	case ToggleFieldFeatured:
		newValue = !product.IsFeatured
	case ToggleFieldOnSale:
		newValue = !product.IsOnSale
	default:
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Không hỗ trợ đảo trạng thái trường %s", field),
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: bson.M{field: newValue, "updatedBy": adminID},
	})
	if err != nil {
		return zero, err
	}
	return models.NewProductView(updated), nil
}
