// Package authsvc chứa nghiệp vụ xác thực và quản lý tài khoản quản trị viên
package authsvc

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"shop_catalog/api/internal/api/auth/dto"
	"shop_catalog/api/internal/api/auth/models"
	basesvc "shop_catalog/api/internal/api/base/service"
	"shop_catalog/api/internal/common"
	"shop_catalog/api/internal/global"
	"shop_catalog/api/internal/utility"
)

// AdminService xử lý nghiệp vụ của tài khoản quản trị viên
type AdminService struct {
	*basesvc.BaseServiceMongoImpl[models.Admin]
}

// NewAdminService tạo AdminService mới với collection từ registry
func NewAdminService() (*AdminService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Admins)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection admins",
			common.StatusInternalServerError,
			nil,
		)
	}
	return &AdminService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Admin](col),
	}, nil
}

// LoginResult là kết quả đăng nhập thành công
type LoginResult struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// Login kiểm tra thông tin đăng nhập và phát hành JWT nếu hợp lệ.
// Sai email hay sai mật khẩu đều trả về cùng một lỗi để không lộ
// thông tin tài khoản nào tồn tại.
func (s *AdminService) Login(ctx context.Context, input *authdto.AdminLoginInput) (*LoginResult, error) {
	admin, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if admin.IsBlock {
		return nil, common.NewError(
			common.ErrCodeAuthRole,
			"Tài khoản đã bị khóa",
			common.StatusForbidden,
			nil,
		)
	}

	token, err := s.createToken(&admin)
	if err != nil {
		return nil, err
	}

	// Ghi nhận thời điểm đăng nhập, lỗi ở đây không chặn việc đăng nhập
	_, _ = s.UpdateById(ctx, admin.ID, &basesvc.UpdateData{
		Set: bson.M{"lastLoginAt": time.Now().UnixMilli()},
	})

	return &LoginResult{Token: token, Admin: admin}, nil
}

// createToken phát hành JWT HS256 với hạn tính theo cấu hình JwtExpireDays
func (s *AdminService) createToken(admin *models.Admin) (string, error) {
	cfg := global.MongoDB_ServerConfig
	now := time.Now()
	claims := jwt.MapClaims{
		"adminId": admin.ID.Hex(),
		"email":   admin.Email,
		"role":    admin.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(cfg.JwtExpireDays) * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return "", common.NewError(
			common.ErrCodeAuthToken,
			"Không phát hành được token",
			common.StatusInternalServerError,
			err,
		)
	}
	return signed, nil
}

// Create tạo tài khoản quản trị viên mới, mật khẩu được băm bcrypt trước khi lưu
func (s *AdminService) Create(ctx context.Context, input *authdto.AdminCreateInput) (models.Admin, error) {
	var zero models.Admin

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), global.MongoDB_ServerConfig.BcryptCost)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeInternalServer,
			"Không băm được mật khẩu",
			common.StatusInternalServerError,
			err,
		)
	}

	admin := models.Admin{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         models.RoleAdmin,
	}
	return s.InsertOne(ctx, admin)
}

// ChangeInfo cập nhật thông tin hiển thị của admin đang đăng nhập
func (s *AdminService) ChangeInfo(ctx context.Context, adminID string, input *authdto.AdminChangeInfoInput) (models.Admin, error) {
	set := bson.M{"name": input.Name}
	if input.Email != "" {
		set["email"] = input.Email
	}
	return s.UpdateById(ctx, utility.String2ObjectID(adminID), &basesvc.UpdateData{Set: set})
}

// ChangePassword đổi mật khẩu sau khi xác nhận mật khẩu cũ
func (s *AdminService) ChangePassword(ctx context.Context, adminID string, input *authdto.AdminChangePasswordInput) error {
	admin, err := s.FindOneById(ctx, utility.String2ObjectID(adminID))
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.OldPassword)); err != nil {
		return common.NewError(
			common.ErrCodeAuthCredentials,
			"Mật khẩu hiện tại không đúng",
			common.StatusUnauthorized,
			nil,
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), global.MongoDB_ServerConfig.BcryptCost)
	if err != nil {
		return common.NewError(
			common.ErrCodeInternalServer,
			"Không băm được mật khẩu",
			common.StatusInternalServerError,
			err,
		)
	}

	_, err = s.UpdateById(ctx, admin.ID, &basesvc.UpdateData{
		Set: bson.M{"passwordHash": string(hash)},
	})
	return err
}

// SetBlock khóa hoặc mở khóa một tài khoản quản trị viên
func (s *AdminService) SetBlock(ctx context.Context, adminID string, input *authdto.AdminBlockInput) (models.Admin, error) {
	set := bson.M{"isBlock": input.IsBlock}
	if input.IsBlock {
		set["blockNote"] = input.BlockNote
	} else {
		set["blockNote"] = ""
	}
	return s.UpdateById(ctx, utility.String2ObjectID(adminID), &basesvc.UpdateData{Set: set})
}
