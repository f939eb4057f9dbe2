package catalogsvc

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	basemodels "shop_catalog/api/internal/api/base/models"
	basesvc "shop_catalog/api/internal/api/base/service"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/global"
	"shop_catalog/api/internal/utility"
)

// CategoryService xử lý nghiệp vụ của danh mục sản phẩm
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo CategoryService mới với collection từ registry
func NewCategoryService() (*CategoryService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection categories",
			common.StatusInternalServerError,
			nil,
		)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](col),
	}, nil
}

// nameExistsFilter so khớp tên chính xác nhưng không phân biệt hoa thường
func nameExistsFilter(name string) bson.M {
	return bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
}

// checkDuplicateName trả ErrDuplicateName nếu đã có bản ghi khác cùng tên.
// Cuộc đua giữa hai request tạo cùng tên vẫn được index unique trên code/slug
// chặn ở tầng ghi.
func (s *CategoryService) checkDuplicateName(ctx context.Context, name string, excludeID primitive.ObjectID) error {
	filter := nameExistsFilter(name)
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrDuplicateName
	}
	return nil
}

// Create tạo danh mục mới, code và slug được sinh từ tên
func (s *CategoryService) Create(ctx context.Context, adminID string, input *catalogdto.CategoryCreateInput) (models.Category, error) {
	var zero models.Category

	if err := s.checkDuplicateName(ctx, input.Name, primitive.NilObjectID); err != nil {
		return zero, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	category := models.Category{
		Name:        input.Name,
		Code:        utility.GenerateEntityCode(input.Name, utility.CodeMaxLenCategory),
		Slug:        utility.GenerateSlug(input.Name),
		Description: input.Description,
		Image:       input.Image,
		IsActive:    isActive,
		CreatedBy:   adminID,
		UpdatedBy:   adminID,
	}
	return s.InsertOne(ctx, category)
}

// Update cập nhật danh mục; đổi tên sẽ sinh lại code và slug
func (s *CategoryService) Update(ctx context.Context, adminID string, id primitive.ObjectID, input *catalogdto.CategoryUpdateInput) (models.Category, error) {
	var zero models.Category

	set := bson.M{"updatedBy": adminID}
	if input.Name != nil {
		if err := s.checkDuplicateName(ctx, *input.Name, id); err != nil {
			return zero, err
		}
		set["name"] = *input.Name
		set["code"] = utility.GenerateEntityCode(*input.Name, utility.CodeMaxLenCategory)
		set["slug"] = utility.GenerateSlug(*input.Name)
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// List trả danh sách danh mục cho trang quản trị, lọc theo tên và trạng thái
func (s *CategoryService) List(ctx context.Context, params *catalogdto.CategoryListParams) (*basemodels.PaginateResult[models.Category], error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(params.Search), "$options": "i"}
	}
	if params.IsActive != "" {
		filter["isActive"] = params.IsActive == "true"
	}

	page := parsePositive(params.Page, DefaultPage)
	limit := parsePositive(params.Limit, DefaultLimit)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// PublicList trả các danh mục đang hiển thị với trường công khai, xếp theo tên tăng dần
func (s *CategoryService) PublicList(ctx context.Context) ([]models.CategoryPublic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	categories, err := s.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}

	result := make([]models.CategoryPublic, 0, len(categories))
	for _, c := range categories {
		result = append(result, models.CategoryPublic{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Image:       c.Image,
		})
	}
	return result, nil
}
