// Package basesvc cung cấp service CRUD cơ bản cho việc tương tác với MongoDB.
// Mọi service domain nhúng BaseServiceMongoImpl và kế thừa toàn bộ thao tác
// chuẩn: insert, find, update, delete, phân trang, upsert.
package basesvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "shop_catalog/api/internal/api/base/models"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/utility"
)

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi upsert tạo mới
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các trường cần xóa
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Các trường cần thêm vào array
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`    // Các trường cần thêm vào set (không trùng)
	Inc         map[string]interface{} `bson:"$inc,omitempty"`         // Các trường cần tăng/giảm giá trị số
}

// ToUpdateData chuẩn hóa dữ liệu update về *UpdateData.
// Chấp nhận: *UpdateData, UpdateData, map có sẵn toán tử $set, hoặc map
// thường (được bọc vào Set).
func ToUpdateData(data interface{}) (*UpdateData, error) {
	switch v := data.(type) {
	case *UpdateData:
		return v, nil
	case UpdateData:
		return &v, nil
	case map[string]interface{}:
		if set, ok := v["$set"].(map[string]interface{}); ok {
			return &UpdateData{Set: set}, nil
		}
		return &UpdateData{Set: v}, nil
	case bson.M:
		if set, ok := v["$set"].(map[string]interface{}); ok {
			return &UpdateData{Set: set}, nil
		}
		return &UpdateData{Set: v}, nil
	default:
		// Struct bất kỳ: convert qua map bson
		dataMap, err := utility.ToMap(data)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu update không hợp lệ", common.StatusBadRequest, err)
		}
		return &UpdateData{Set: dataMap}, nil
	}
}

// toUpdateDocument chuyển UpdateData thành document update của MongoDB,
// tự động stamp updatedAt vào $set.
func toUpdateDocument(update *UpdateData) bson.M {
	doc := bson.M{}
	set := update.Set
	if set == nil {
		set = map[string]interface{}{}
	}
	set["updatedAt"] = time.Now().UnixMilli()
	doc["$set"] = set

	if len(update.SetOnInsert) > 0 {
		doc["$setOnInsert"] = update.SetOnInsert
	}
	if len(update.Unset) > 0 {
		doc["$unset"] = update.Unset
	}
	if len(update.Push) > 0 {
		doc["$push"] = update.Push
	}
	if len(update.AddToSet) > 0 {
		doc["$addToSet"] = update.AddToSet
	}
	if len(update.Inc) > 0 {
		doc["$inc"] = update.Inc
	}
	return doc
}

// BaseServiceMongo định nghĩa contract CRUD chung cho mọi model
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (Model, error)
	FindOneAndDelete(ctx context.Context, filter interface{}) (Model, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data interface{}) (Model, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl là triển khai BaseServiceMongo trên một collection
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo service CRUD mới trên collection cho trước
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// Collection trả về collection mà service đang thao tác
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// normalizeFilter đảm bảo filter nil trở thành filter rỗng hợp lệ
func normalizeFilter(filter interface{}) interface{} {
	if filter == nil {
		return bson.D{}
	}
	return filter
}

// toInsertMap chuyển model thành map để insert: stamp createdAt/updatedAt
// và loại bỏ các field chuỗi rỗng để sparse unique index không coi chúng
// là giá trị trùng nhau.
func toInsertMap(data interface{}) (map[string]interface{}, error) {
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Không thể chuyển đổi dữ liệu insert", common.StatusBadRequest, err)
	}

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	for key, value := range dataMap {
		if str, ok := value.(string); ok && str == "" {
			delete(dataMap, key)
		}
	}
	return dataMap, nil
}

// InsertOne chèn một document mới và trả về document đã lưu
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := toInsertMap(data)
	if err != nil {
		return zero, err
	}
	delete(dataMap, "_id") // để driver tự sinh ObjectID

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Đọc lại document sau khi insert để trả về bản ghi hoàn chỉnh
	var inserted T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&inserted); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return inserted, nil
}

// InsertMany chèn nhiều document mới và trả về các document đã lưu
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	docs := make([]interface{}, 0, len(data))
	for _, item := range data {
		dataMap, err := toInsertMap(item)
		if err != nil {
			return nil, err
		}
		delete(dataMap, "_id")
		docs = append(docs, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return s.FindManyByIds(ctx, toObjectIDs(result.InsertedIDs))
}

// toObjectIDs lọc danh sách interface{} lấy các ObjectID hợp lệ
func toObjectIDs(ids []interface{}) []primitive.ObjectID {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if objID, ok := id.(primitive.ObjectID); ok {
			objectIDs = append(objectIDs, objID)
		}
	}
	return objectIDs
}

// FindOne tìm một document theo filter
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	err := s.collection.FindOne(ctx, normalizeFilter(filter), opts).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneById tìm một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds tìm nhiều document theo danh sách ObjectID
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// Find tìm danh sách document theo filter. Không có kết quả trả về
// slice rỗng, không phải nil.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindWithPagination tìm danh sách document có phân trang.
// Page nhỏ hơn 1 được đưa về 1, limit không dương được đưa về 10.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	normalized := normalizeFilter(filter)

	total, err := s.collection.CountDocuments(ctx, normalized)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit)
	opts.SetLimit(limit)

	items, err := s.Find(ctx, normalized, opts)
	if err != nil {
		return nil, err
	}

	totalPage := int64(0)
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// FindOneAndUpdate cập nhật một document theo filter và trả về bản ghi
// sau khi cập nhật (mặc định ReturnDocument After).
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, err
	}

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	if opts.ReturnDocument == nil {
		opts.SetReturnDocument(options.After)
	}

	var result T
	err = s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), toUpdateDocument(updateData), opts).Decode(&result)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneAndDelete xóa một document theo filter và trả về bản ghi đã xóa
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}) (T, error) {
	var result T
	err := s.collection.FindOneAndDelete(ctx, normalizeFilter(filter)).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// UpdateById cập nhật document theo ObjectID với dữ liệu partial update.
// Trả về ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, toUpdateDocument(updateData), options.Update().SetUpsert(false))
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, common.ErrNotFound
	}

	// Đọc lại document sau khi update để trả về bản ghi mới nhất
	return s.FindOneById(ctx, id)
}

// UpdateMany cập nhật nhiều document theo filter, trả về số document đã sửa
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	updateData, err := ToUpdateData(update)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.UpdateMany(ctx, normalizeFilter(filter), toUpdateDocument(updateData))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// DeleteById xóa document theo ObjectID. Trả về ErrNotFound nếu không có
// document nào khớp.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteOne xóa một document theo filter
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, normalizeFilter(filter))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany xóa nhiều document theo filter, trả về số document đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// CountDocuments đếm số document khớp filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct lấy danh sách giá trị duy nhất của một field theo filter
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	values, err := s.collection.Distinct(ctx, fieldName, normalizeFilter(filter))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// Upsert cập nhật document khớp filter hoặc tạo mới nếu chưa có,
// trả về bản ghi sau thao tác. CreatedAt chỉ stamp khi tạo mới.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, err
	}
	if updateData.SetOnInsert == nil {
		updateData.SetOnInsert = map[string]interface{}{}
	}
	updateData.SetOnInsert["createdAt"] = time.Now().UnixMilli()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result T
	err = s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), toUpdateDocument(updateData), opts).Decode(&result)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// DocumentExists kiểm tra document khớp filter có tồn tại không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
