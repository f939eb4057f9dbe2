// Package router định nghĩa hạ tầng đăng ký route: interface CRUDHandler,
// cấu hình bật/tắt từng thao tác CRUD và các helper đăng ký route kèm
// middleware xác thực.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"shop_catalog/api/internal/api/middleware"
	"shop_catalog/api/internal/logger"
)

// CRUDHandler là contract chung mà mọi handler domain phải thỏa để
// đăng ký được bộ route CRUD chuẩn.
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	Count(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	UpsertOne(c fiber.Ctx) error
	Exists(c fiber.Ctx) error
}

// CRUDConfig cấu hình bật/tắt từng thao tác CRUD khi đăng ký route
type CRUDConfig struct {
	InsOne   bool // POST /insert-one
	FindMany bool // GET /find
	FindOne  bool // GET /find-one
	FindByID bool // GET /find-by-id/:id
	FindIDs  bool // POST /find-by-ids
	FindPage bool // GET /find-with-pagination
	UpdByID  bool // PUT /update-by-id/:id
	DelByID  bool // DELETE /delete-by-id/:id
	Count    bool // GET /count
	Distinct bool // GET /distinct
	Upsert   bool // POST /upsert-one
	Exists   bool // GET /exists
}

// ReadOnlyConfig chỉ bật các thao tác đọc
var ReadOnlyConfig = CRUDConfig{
	FindMany: true,
	FindOne:  true,
	FindByID: true,
	FindIDs:  true,
	FindPage: true,
	Count:    true,
	Distinct: true,
	Exists:   true,
}

// ReadWriteConfig bật toàn bộ thao tác đọc/ghi
var ReadWriteConfig = CRUDConfig{
	InsOne:   true,
	FindMany: true,
	FindOne:  true,
	FindByID: true,
	FindIDs:  true,
	FindPage: true,
	UpdByID:  true,
	DelByID:  true,
	Count:    true,
	Distinct: true,
	Upsert:   true,
	Exists:   true,
}

// RoutePrefix chứa các prefix chuẩn của API
type RoutePrefix struct {
	Base string
	V1   string
}

// NewRoutePrefix trả về prefix mặc định của API
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
		V1:   "/api/v1",
	}
}

// Router giữ app Fiber và cung cấp các phương thức đăng ký route
type Router struct {
	App *fiber.App
}

// NewRouter tạo Router mới trên app Fiber cho trước
func NewRouter(app *fiber.App) *Router {
	return &Router{App: app}
}

// RegisterRouteWithMiddleware đăng ký một route kèm danh sách middleware.
// Fiber v3 yêu cầu gắn middleware qua group.Use thay vì truyền inline
// cùng handler, nếu không middleware sẽ không được gọi.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	group := router.Group(prefix)
	for _, mw := range middlewares {
		group.Use(path, mw)
	}

	switch method {
	case fiber.MethodGet:
		group.Get(path, handler)
	case fiber.MethodPost:
		group.Post(path, handler)
	case fiber.MethodPut:
		group.Put(path, handler)
	case fiber.MethodPatch:
		group.Patch(path, handler)
	case fiber.MethodDelete:
		group.Delete(path, handler)
	default:
		logger.GetAppLogger().Errorf("Method %s không được hỗ trợ khi đăng ký route %s%s", method, prefix, path)
	}
}

// RegisterCRUDRoutes đăng ký bộ route CRUD chuẩn cho một handler domain.
// permissionPrefix là prefix quyền (ví dụ "Product" sinh ra "Product.Read",
// "Product.Insert", ...); chuỗi rỗng nghĩa là route công khai.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, handler CRUDHandler, config CRUDConfig, permissionPrefix string) {
	authFor := func(action string) []fiber.Handler {
		if permissionPrefix == "" {
			return nil
		}
		return []fiber.Handler{middleware.AuthMiddleware(permissionPrefix + "." + action)}
	}

	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPost, "/insert-one", authFor("Insert"), handler.InsertOne)
	}
	if config.FindMany {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find", authFor("Read"), handler.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find-one", authFor("Read"), handler.FindOne)
	}
	if config.FindByID {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find-by-id/:id", authFor("Read"), handler.FindOneById)
	}
	if config.FindIDs {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPost, "/find-by-ids", authFor("Read"), handler.FindManyByIds)
	}
	if config.FindPage {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/find-with-pagination", authFor("Read"), handler.FindWithPagination)
	}
	if config.UpdByID {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPut, "/update-by-id/:id", authFor("Update"), handler.UpdateById)
	}
	if config.DelByID {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodDelete, "/delete-by-id/:id", authFor("Delete"), handler.DeleteById)
	}
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/count", authFor("Read"), handler.Count)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/distinct", authFor("Read"), handler.Distinct)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPost, "/upsert-one", authFor("Update"), handler.UpsertOne)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/exists", authFor("Read"), handler.Exists)
	}
}

// RegisterFunc là hàm đăng ký route của một domain lên group v1
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes tạo group /api/v1 và gọi lần lượt các hàm đăng ký domain
func SetupRoutes(app *fiber.App, registers ...RegisterFunc) error {
	r := NewRouter(app)
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	for _, register := range registers {
		if err := register(v1, r); err != nil {
			return fmt.Errorf("failed to register routes: %w", err)
		}
	}
	return nil
}
