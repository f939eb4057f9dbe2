// Package middleware chứa các middleware xác thực cho tầng API
package middleware

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "shop_catalog/api/internal/api/base/handler"
	basesvc "shop_catalog/api/internal/api/base/service"
	"shop_catalog/api/internal/api/auth/models"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/global"
	"shop_catalog/api/internal/logger"
)

// AdminClaims là payload của JWT cấp cho quản trị viên
type AdminClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// AuthManager quản lý việc xác thực token và tra cứu admin.
// Dùng singleton để tránh khởi tạo lại service trên mỗi request.
type AuthManager struct {
	adminService *basesvc.BaseServiceMongoImpl[models.Admin]
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về AuthManager singleton
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Admins)
		if !exist {
			logger.GetErrorLogger().Errorf("Không lấy được collection admins cho AuthManager: chưa đăng ký %s", global.MongoDB_ColNames.Admins)
		}
		authManager = &AuthManager{
			adminService: basesvc.NewBaseServiceMongo[models.Admin](col),
		}
	})
	return authManager
}

// VerifyToken kiểm tra chữ ký và hạn của token, trả về claims nếu hợp lệ
func (am *AuthManager) VerifyToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// FindAdminByID tra cứu admin theo ID trong claims
func (am *AuthManager) FindAdminByID(ctx context.Context, id string) (models.Admin, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Admin{}, common.ErrTokenInvalid
	}
	return am.adminService.FindOneById(ctx, objID)
}

// AuthMiddleware xác thực JWT của quản trị viên trước khi cho request đi tiếp.
// requirePermission được giữ lại để tương thích với khung đăng ký route;
// hệ thống hiện chỉ có một vai trò admin nên mọi quyền quy về việc token hợp lệ.
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			basehdl.HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			basehdl.HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		am := GetAuthManager()
		claims, err := am.VerifyToken(parts[1])
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		admin, err := am.FindAdminByID(ctx, claims.AdminID)
		if err != nil {
			basehdl.HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if admin.IsBlock {
			basehdl.HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Tài khoản đã bị khóa",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("admin_id", admin.ID.Hex())
		c.Locals("admin", admin)

		return c.Next()
	}
}
