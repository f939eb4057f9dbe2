package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "shop_catalog/api/internal/api/base/handler"
	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	"shop_catalog/api/internal/api/catalog/service"
)

// SizeHandler xử lý các request liên quan đến kích cỡ sản phẩm
type SizeHandler struct {
	*basehdl.BaseHandler[models.Size, catalogdto.SizeCreateInput, catalogdto.SizeUpdateInput]
	SizeService *catalogsvc.SizeService
}

// NewSizeHandler tạo SizeHandler mới
func NewSizeHandler() (*SizeHandler, error) {
	service, err := catalogsvc.NewSizeService()
	if err != nil {
		return nil, err
	}
	return &SizeHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Size, catalogdto.SizeCreateInput, catalogdto.SizeUpdateInput](service),
		SizeService: service,
	}, nil
}

// HandleCreate xử lý POST /size/create: tạo kích cỡ, code sinh từ tên
func (h *SizeHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.SizeCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.SizeService.Create(c.Context(), operatorID(c), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /size/update/:id
func (h *SizeHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.SizeUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.SizeService.Update(c.Context(), operatorID(c), id, &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleList xử lý GET /size/list: danh sách cho trang quản trị
func (h *SizeHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		params := catalogdto.SizeListParams{
			Search:   c.Query("search"),
			IsActive: c.Query("isActive"),
			Page:     c.Query("page"),
			Limit:    c.Query("limit"),
		}

		result, err := h.SizeService.List(c.Context(), &params)
		h.HandleResponse(c, result, err)
		return nil
	})
}
