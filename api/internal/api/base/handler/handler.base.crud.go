package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "shop_catalog/api/internal/api/base/service"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/utility"
)

// inputToModel chuyển DTO thành model qua vòng bson Marshal/Unmarshal,
// dựa trên bson tag trùng tên field giữa DTO và model.
func inputToModel[T any](input interface{}) (T, error) {
	var model T
	dataMap, err := utility.ToMap(input)
	if err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat, "Không thể chuyển đổi dữ liệu đầu vào", common.StatusBadRequest, err)
	}
	raw, err := bson.Marshal(dataMap)
	if err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat, "Không thể chuyển đổi dữ liệu đầu vào", common.StatusBadRequest, err)
	}
	if err := bson.Unmarshal(raw, &model); err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat, "Không thể chuyển đổi dữ liệu đầu vào", common.StatusBadRequest, err)
	}
	return model, nil
}

// inputToUpdateMap chuyển DTO update thành map partial update. Các field
// pointer nil bị loại nhờ bson tag omitempty trên DTO.
func inputToUpdateMap(input interface{}) (map[string]interface{}, error) {
	dataMap, err := utility.ToMap(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Không thể chuyển đổi dữ liệu update", common.StatusBadRequest, err)
	}
	return dataMap, nil
}

// InsertOne xử lý POST /insert-one: parse CreateInput, validate và chèn mới
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := inputToModel[T](input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.BaseService.InsertOne(c.Context(), model)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// Find xử lý GET /find: tìm danh sách theo filter trong query param
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		results, err := h.BaseService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, results, err)
		return nil
	})
}

// FindOne xử lý GET /find-one: tìm một document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.BaseService.FindOne(c.Context(), filter, nil)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// FindOneById xử lý GET /find-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// findManyByIdsInput là body của POST /find-by-ids
type findManyByIdsInput struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// FindManyByIds xử lý POST /find-by-ids: tìm nhiều document theo danh sách id
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input findManyByIdsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ids := utility.StringArray2ObjectIDArray(input.IDs)
		results, err := h.BaseService.FindManyByIds(c.Context(), ids)
		h.HandleResponse(c, results, err)
		return nil
	})
}

// FindWithPagination xử lý GET /find-with-pagination
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// UpdateById xử lý PUT /update-by-id/:id: partial update từ UpdateInput
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateMap, err := inputToUpdateMap(input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.BaseService.UpdateById(c.Context(), id, &basesvc.UpdateData{Set: updateMap})
		h.HandleResponse(c, result, err)
		return nil
	})
}

// DeleteById xử lý DELETE /delete-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// Count xử lý GET /count: đếm document khớp filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) Count(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"totalCount": count}, err)
		return nil
	})
}

// Distinct xử lý GET /distinct?field=<name>: giá trị duy nhất của field
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		field := c.Query("field")
		if field == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu query param 'field'", common.StatusBadRequest, nil))
			return nil
		}

		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		values, err := h.BaseService.Distinct(c.Context(), field, filter)
		h.HandleResponse(c, values, err)
		return nil
	})
}

// UpsertOne xử lý POST /upsert-one: cập nhật theo filter hoặc tạo mới
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateMap, err := inputToUpdateMap(input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.BaseService.Upsert(c.Context(), filter, &basesvc.UpdateData{Set: updateMap})
		h.HandleResponse(c, result, err)
		return nil
	})
}

// Exists xử lý GET /exists: kiểm tra document khớp filter có tồn tại
func (h *BaseHandler[T, CreateInput, UpdateInput]) Exists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"exists": exists}, err)
		return nil
	})
}
