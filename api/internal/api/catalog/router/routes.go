// Package router đăng ký các route thuộc domain catalog: Category, Size,
// Product và các endpoint công khai.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "shop_catalog/api/internal/api/catalog/handler"
	"shop_catalog/api/internal/api/middleware"
	apirouter "shop_catalog/api/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1. Route ghi đi qua handler
// domain (sinh code/slug, kiểm tra tham chiếu, ràng buộc); bộ CRUD chung
// chỉ mở các thao tác đọc.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerCategoryRoutes(v1, r); err != nil {
		return err
	}
	if err := registerSizeRoutes(v1, r); err != nil {
		return err
	}
	if err := registerProductRoutes(v1, r); err != nil {
		return err
	}
	if err := registerPublicRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerCategoryRoutes(router fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	insertMiddleware := middleware.AuthMiddleware("Category.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/category", "POST", "/create", []fiber.Handler{insertMiddleware}, categoryHandler.HandleCreate)
	updateMiddleware := middleware.AuthMiddleware("Category.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/category", "PUT", "/update/:id", []fiber.Handler{updateMiddleware}, categoryHandler.HandleUpdate)
	readMiddleware := middleware.AuthMiddleware("Category.Read")
	apirouter.RegisterRouteWithMiddleware(router, "/category", "GET", "/list", []fiber.Handler{readMiddleware}, categoryHandler.HandleList)
	r.RegisterCRUDRoutes(router, "/category", categoryHandler, deleteEnabled(apirouter.ReadOnlyConfig), "Category")
	return nil
}

func registerSizeRoutes(router fiber.Router, r *apirouter.Router) error {
	sizeHandler, err := cataloghdl.NewSizeHandler()
	if err != nil {
		return fmt.Errorf("failed to create size handler: %w", err)
	}
	insertMiddleware := middleware.AuthMiddleware("Size.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/size", "POST", "/create", []fiber.Handler{insertMiddleware}, sizeHandler.HandleCreate)
	updateMiddleware := middleware.AuthMiddleware("Size.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/size", "PUT", "/update/:id", []fiber.Handler{updateMiddleware}, sizeHandler.HandleUpdate)
	readMiddleware := middleware.AuthMiddleware("Size.Read")
	apirouter.RegisterRouteWithMiddleware(router, "/size", "GET", "/list", []fiber.Handler{readMiddleware}, sizeHandler.HandleList)
	r.RegisterCRUDRoutes(router, "/size", sizeHandler, deleteEnabled(apirouter.ReadOnlyConfig), "Size")
	return nil
}

func registerProductRoutes(router fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}
	insertMiddleware := middleware.AuthMiddleware("Product.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/product", "POST", "/create", []fiber.Handler{insertMiddleware}, productHandler.HandleCreate)
	updateMiddleware := middleware.AuthMiddleware("Product.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/product", "PUT", "/update/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/product", "PATCH", "/toggle-active/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleToggleActive)
	apirouter.RegisterRouteWithMiddleware(router, "/product", "PATCH", "/toggle-featured/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleToggleFeatured)
	apirouter.RegisterRouteWithMiddleware(router, "/product", "PATCH", "/toggle-sale/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleToggleSale)
	readMiddleware := middleware.AuthMiddleware("Product.Read")
	apirouter.RegisterRouteWithMiddleware(router, "/product", "GET", "/list", []fiber.Handler{readMiddleware}, productHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(router, "/product", "GET", "/detail/:id", []fiber.Handler{readMiddleware}, productHandler.HandleGetByID)
	r.RegisterCRUDRoutes(router, "/product", productHandler, deleteEnabled(apirouter.ReadOnlyConfig), "Product")
	return nil
}

// registerPublicRoutes đăng ký các endpoint không cần xác thực
func registerPublicRoutes(router fiber.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	router.Get("/public/categories", categoryHandler.HandlePublicList)
	router.Get("/public/products", productHandler.HandleList)
	router.Get("/public/products/featured", productHandler.HandleFeatured)
	router.Get("/public/products/by-category/:id", productHandler.HandleByCategory)
	router.Get("/public/products/:idOrSlug", productHandler.HandlePublicDetail)
	return nil
}

// deleteEnabled bật thêm thao tác xóa trên một cấu hình CRUD chỉ đọc
func deleteEnabled(config apirouter.CRUDConfig) apirouter.CRUDConfig {
	config.DelByID = true
	return config
}
