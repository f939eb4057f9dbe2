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

// SizeService xử lý nghiệp vụ của kích cỡ sản phẩm
type SizeService struct {
	*basesvc.BaseServiceMongoImpl[models.Size]
}

// NewSizeService tạo SizeService mới với collection từ registry
func NewSizeService() (*SizeService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sizes)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection sizes",
			common.StatusInternalServerError,
			nil,
		)
	}
	return &SizeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Size](col),
	}, nil
}

// checkDuplicateName trả ErrDuplicateName nếu đã có kích cỡ khác cùng tên
func (s *SizeService) checkDuplicateName(ctx context.Context, name string, excludeID primitive.ObjectID) error {
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

// Create tạo kích cỡ mới, code được sinh từ tên
func (s *SizeService) Create(ctx context.Context, adminID string, input *catalogdto.SizeCreateInput) (models.Size, error) {
	var zero models.Size

	if err := s.checkDuplicateName(ctx, input.Name, primitive.NilObjectID); err != nil {
		return zero, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	size := models.Size{
		Name:        input.Name,
		Code:        utility.GenerateEntityCode(input.Name, utility.CodeMaxLenSize),
		Description: input.Description,
		SortOrder:   input.SortOrder,
		IsActive:    isActive,
		CreatedBy:   adminID,
		UpdatedBy:   adminID,
	}
	return s.InsertOne(ctx, size)
}

// Update cập nhật kích cỡ; đổi tên sẽ sinh lại code
func (s *SizeService) Update(ctx context.Context, adminID string, id primitive.ObjectID, input *catalogdto.SizeUpdateInput) (models.Size, error) {
	var zero models.Size

	set := bson.M{"updatedBy": adminID}
	if input.Name != nil {
		if err := s.checkDuplicateName(ctx, *input.Name, id); err != nil {
			return zero, err
		}
		set["name"] = *input.Name
		set["code"] = utility.GenerateEntityCode(*input.Name, utility.CodeMaxLenSize)
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.SortOrder != nil {
		set["sortOrder"] = *input.SortOrder
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// List trả danh sách kích cỡ cho trang quản trị, lọc theo tên và trạng thái
func (s *SizeService) List(ctx context.Context, params *catalogdto.SizeListParams) (*basemodels.PaginateResult[models.Size], error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(params.Search), "$options": "i"}
	}
	if params.IsActive != "" {
		filter["isActive"] = params.IsActive == "true"
	}

	page := parsePositive(params.Page, DefaultPage)
	limit := parsePositive(params.Limit, DefaultLimit)
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}
