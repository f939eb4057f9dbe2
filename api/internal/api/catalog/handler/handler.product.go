package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "shop_catalog/api/internal/api/base/handler"
	"shop_catalog/api/internal/api/catalog/dto"
	"shop_catalog/api/internal/api/catalog/models"
	"shop_catalog/api/internal/api/catalog/service"
	"shop_catalog/api/internal/common"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới
func NewProductHandler() (*ProductHandler, error) {
	service, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](service),
		ProductService: service,
	}, nil
}

// queryParams gom toàn bộ tham số truy vấn của endpoint liệt kê sản phẩm
func queryParams(c fiber.Ctx) *catalogdto.ProductQueryParams {
	return &catalogdto.ProductQueryParams{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Size:       c.Query("size"),
		Brand:      c.Query("brand"),
		IsActive:   c.Query("isActive"),
		IsFeatured: c.Query("isFeatured"),
		IsOnSale:   c.Query("isOnSale"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	}
}

// HandleCreate xử lý POST /product/create
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ProductService.Create(c.Context(), operatorID(c), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /product/update/:id
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ProductService.Update(c.Context(), operatorID(c), id, &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleList xử lý GET /product/list: truy vấn động với lọc, tìm kiếm,
// sắp xếp và phân trang. Dùng chung cho trang quản trị và endpoint công khai.
func (h *ProductHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query, err := catalogsvc.ParseProductQuery(queryParams(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ProductService.List(c.Context(), query)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetByID xử lý GET /product/detail/:id cho trang quản trị
func (h *ProductHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ProductService.GetByID(c.Context(), id)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandlePublicDetail xử lý GET /public/products/:idOrSlug: chi tiết theo
// slug hoặc ID, mỗi lần xem tăng viewCount
func (h *ProductHandler) HandlePublicDetail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idOrSlug := c.Params("idOrSlug")
		if idOrSlug == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		result, err := h.ProductService.GetDetail(c.Context(), idOrSlug)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleFeatured xử lý GET /public/products/featured
func (h *ProductHandler) HandleFeatured(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.ProductService.Featured(c.Context(), c.Query("limit"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleByCategory xử lý GET /public/products/by-category/:id
func (h *ProductHandler) HandleByCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.ProductService.ByCategory(c.Context(), c.Params("id"), c.Query("page"), c.Query("limit"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// makeToggleHandler tạo handler đảo một cờ boolean của sản phẩm
func (h *ProductHandler) makeToggleHandler(field string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			id, err := h.ParseIDParam(c, "id")
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}

			result, err := h.ProductService.Toggle(c.Context(), operatorID(c), id, field)
			h.HandleResponse(c, result, err)
			return nil
		})
	}
}

// HandleToggleActive xử lý PATCH /product/toggle-active/:id
func (h *ProductHandler) HandleToggleActive(c fiber.Ctx) error {
	return h.makeToggleHandler(catalogsvc.ToggleFieldActive)(c)
}

// HandleToggleFeatured xử lý PATCH /product/toggle-featured/:id
func (h *ProductHandler) HandleToggleFeatured(c fiber.Ctx) error {
	return h.makeToggleHandler(catalogsvc.ToggleFieldFeatured)(c)
}

// HandleToggleSale xử lý PATCH /product/toggle-sale/:id
func (h *ProductHandler) HandleToggleSale(c fiber.Ctx) error {
	return h.makeToggleHandler(catalogsvc.ToggleFieldOnSale)(c)
}
