// Package router đăng ký các route thuộc domain auth: Auth, Admin, System.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "shop_catalog/api/internal/api/auth/handler"
	basehdl "shop_catalog/api/internal/api/base/handler"
	"shop_catalog/api/internal/api/middleware"
	apirouter "shop_catalog/api/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, admin) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	router.Post("/admin/login", adminHandler.HandleLogin)
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/admin", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, adminHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/admin", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, adminHandler.HandleChangeInfo)
	apirouter.RegisterRouteWithMiddleware(router, "/admin", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, adminHandler.HandleChangePassword)
	return nil
}

func registerAdminRoutes(router fiber.Router, r *apirouter.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	createMiddleware := middleware.AuthMiddleware("Admin.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/admin", "POST", "/create", []fiber.Handler{createMiddleware}, adminHandler.HandleCreateAdmin)
	blockMiddleware := middleware.AuthMiddleware("Admin.Block")
	apirouter.RegisterRouteWithMiddleware(router, "/admin", "PUT", "/block/:id", []fiber.Handler{blockMiddleware}, adminHandler.HandleSetBlock)
	r.RegisterCRUDRoutes(router, "/admin", adminHandler, apirouter.ReadOnlyConfig, "Admin")
	return nil
}
