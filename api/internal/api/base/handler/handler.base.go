// Package basehdl cung cấp handler CRUD cơ bản trên nền Fiber.
// Mọi handler domain nhúng BaseHandler và kế thừa các thao tác chuẩn:
// parse body, validate input, xử lý filter an toàn và response envelope.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "shop_catalog/api/internal/api/base/service"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/global"
)

// FilterOptions giới hạn filter mà client được phép gửi lên qua query
type FilterOptions struct {
	DeniedFields     []string // Các field không được phép filter (ví dụ: password)
	AllowedOperators []string // Các toán tử MongoDB được phép dùng
	MaxFields        int      // Số field tối đa trong một filter
}

// DefaultFilterOptions trả về cấu hình filter mặc định
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		DeniedFields:     []string{"password"},
		AllowedOperators: []string{"$eq", "$ne", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$and", "$or", "$regex", "$options", "$exists", "$elemMatch"},
		MaxFields:        20,
	}
}

// BaseHandler là handler CRUD chung cho một model với DTO tạo/sửa tương ứng
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T]
	filterOptions FilterOptions
}

// NewBaseHandler tạo một BaseHandler mới với cấu hình filter mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService:   service,
		filterOptions: DefaultFilterOptions(),
	}
}

// ParseRequestBody parse JSON body vào struct đích và validate bằng
// validator dùng chung. Dùng json.Decoder với UseNumber để giữ nguyên
// độ chính xác của số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Body không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
	}
	return h.ValidateInput(out)
}

// ValidateInput kiểm tra struct với validator dùng chung
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Dữ liệu đầu vào không hợp lệ: %v", err), common.StatusBadRequest, nil)
	}
	return nil
}

// ParseIDParam đọc path param chứa ObjectID, kiểm tra cú pháp trước khi
// chạm tới database.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return primitive.ObjectIDFromHex(id)
}

// ProcessFilter parse query param "filter" (JSON) thành bson.M và kiểm tra
// theo FilterOptions: chặn field cấm, toán tử lạ và filter quá lớn.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (bson.M, error) {
	raw := c.Query("filter", "{}")

	var filter bson.M
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Filter không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
	}

	if len(filter) > h.filterOptions.MaxFields {
		return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Filter vượt quá %d field cho phép", h.filterOptions.MaxFields), common.StatusBadRequest, nil)
	}

	if err := h.validateFilterMap(filter); err != nil {
		return nil, err
	}
	return filter, nil
}

// validateFilterMap kiểm tra đệ quy các key trong filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilterMap(m map[string]interface{}) error {
	for key, value := range m {
		if strings.HasPrefix(key, "$") && !h.isAllowedOperator(key) {
			return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Toán tử '%s' không được phép trong filter", key), common.StatusBadRequest, nil)
		}
		for _, denied := range h.filterOptions.DeniedFields {
			if key == denied {
				return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Field '%s' không được phép filter", key), common.StatusBadRequest, nil)
			}
		}
		switch nested := value.(type) {
		case map[string]interface{}:
			if err := h.validateFilterMap(nested); err != nil {
				return err
			}
		case []interface{}:
			for _, item := range nested {
				if nestedMap, ok := item.(map[string]interface{}); ok {
					if err := h.validateFilterMap(nestedMap); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) isAllowedOperator(op string) bool {
	for _, allowed := range h.filterOptions.AllowedOperators {
		if op == allowed {
			return true
		}
	}
	return false
}

// ParsePagination đọc page/limit từ query, coercion kiểu text với
// fallback về mặc định khi không phải số dương.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (page, limit int64) {
	page = ParsePositiveInt(c.Query("page"), 1)
	limit = ParsePositiveInt(c.Query("limit"), 10)
	return page, limit
}

// ParsePositiveInt coerce chuỗi thành số nguyên dương, trả về fallback
// khi chuỗi không phải số hoặc không dương.
func ParsePositiveInt(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
