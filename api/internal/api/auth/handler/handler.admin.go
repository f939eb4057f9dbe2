// Package authhdl chứa handler HTTP của domain auth
package authhdl

import (
	"github.com/gofiber/fiber/v3"

	"shop_catalog/api/internal/api/auth/dto"
	"shop_catalog/api/internal/api/auth/models"
	"shop_catalog/api/internal/api/auth/service"
	basehdl "shop_catalog/api/internal/api/base/handler"
	"shop_catalog/api/internal/common"
)

// AdminHandler xử lý các request liên quan đến tài khoản quản trị viên
type AdminHandler struct {
	*basehdl.BaseHandler[models.Admin, authdto.AdminCreateInput, authdto.AdminChangeInfoInput]
	AdminService *authsvc.AdminService
}

// NewAdminHandler tạo AdminHandler mới
func NewAdminHandler() (*AdminHandler, error) {
	service, err := authsvc.NewAdminService()
	if err != nil {
		return nil, err
	}
	return &AdminHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Admin, authdto.AdminCreateInput, authdto.AdminChangeInfoInput](service),
		AdminService: service,
	}, nil
}

// HandleLogin xử lý POST /admin/login
func (h *AdminHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.AdminLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetProfile xử lý GET /admin/profile: trả về admin đang đăng nhập
func (h *AdminHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		admin, ok := c.Locals("admin").(models.Admin)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		h.HandleResponse(c, admin, nil)
		return nil
	})
}

// HandleChangeInfo xử lý PUT /admin/profile: cập nhật thông tin cá nhân
func (h *AdminHandler) HandleChangeInfo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		adminID, ok := c.Locals("admin_id").(string)
		if !ok || adminID == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input authdto.AdminChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.ChangeInfo(c.Context(), adminID, &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleChangePassword xử lý PUT /admin/change-password
func (h *AdminHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		adminID, ok := c.Locals("admin_id").(string)
		if !ok || adminID == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input authdto.AdminChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.AdminService.ChangePassword(c.Context(), adminID, &input)
		h.HandleResponse(c, fiber.Map{"changed": err == nil}, err)
		return nil
	})
}

// HandleCreateAdmin xử lý POST /admin/create: tạo tài khoản quản trị viên mới
func (h *AdminHandler) HandleCreateAdmin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.AdminCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.Create(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleSetBlock xử lý PUT /admin/block/:id: khóa hoặc mở khóa tài khoản
func (h *AdminHandler) HandleSetBlock(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Không cho admin tự khóa chính mình
		if adminID, ok := c.Locals("admin_id").(string); ok && adminID == id.Hex() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessState,
				"Không thể tự khóa tài khoản của chính mình",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input authdto.AdminBlockInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.SetBlock(c.Context(), id.Hex(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}
