package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"shop_catalog/api/internal/api/auth/dto"
	"shop_catalog/api/internal/api/auth/service"
	"shop_catalog/api/internal/global"
	"shop_catalog/api/internal/logger"
)

// InitDefaultData tạo tài khoản quản trị viên mặc định nếu hệ thống chưa có
// admin nào. Thông tin lấy từ cấu hình DEFAULT_ADMIN_*.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	adminService, err := authsvc.NewAdminService()
	if err != nil {
		log.Fatalf("Failed to initialize admin service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := adminService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count admins: %v", err)
	}
	if count > 0 {
		log.Info("✅ [INIT] Admin account already exists, skipping seed")
		return
	}

	cfg := global.MongoDB_ServerConfig
	admin, err := adminService.Create(ctx, &authdto.AdminCreateInput{
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword,
		Name:     cfg.DefaultAdminName,
	})
	if err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	log.Infof("✅ [INIT] Default admin seeded successfully (email: %s, id: %s)", admin.Email, admin.ID.Hex())
	log.Warn("Đổi mật khẩu admin mặc định ngay sau lần đăng nhập đầu tiên")
}
