// Package cataloghdl chứa handler HTTP của domain catalog
package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "shop_catalog/api/internal/api/base/handler"
	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	"shop_catalog/api/internal/api/catalog/service"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo CategoryHandler mới
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](service),
		CategoryService: service,
	}, nil
}

func operatorID(c fiber.Ctx) string {
	if id, ok := c.Locals("admin_id").(string); ok {
		return id
	}
	return ""
}

// HandleCreate xử lý POST /category/create: tạo danh mục, code và slug sinh từ tên
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.CategoryService.Create(c.Context(), operatorID(c), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /category/update/:id
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.CategoryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.CategoryService.Update(c.Context(), operatorID(c), id, &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleList xử lý GET /category/list: danh sách cho trang quản trị
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		params := catalogdto.CategoryListParams{
			Search:   c.Query("search"),
			IsActive: c.Query("isActive"),
			Page:     c.Query("page"),
			Limit:    c.Query("limit"),
		}

		result, err := h.CategoryService.List(c.Context(), &params)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandlePublicList xử lý GET /public/categories: danh mục đang hiển thị,
// chỉ gồm trường công khai, xếp theo tên tăng dần
func (h *CategoryHandler) HandlePublicList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.CategoryService.PublicList(c.Context())
		h.HandleResponse(c, result, err)
		return nil
	})
}
