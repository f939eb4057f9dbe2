// Package config đọc cấu hình tĩnh của ứng dụng từ file env theo
// môi trường (GO_ENV) và parse vào struct qua env tag.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật ký JWT
	JwtExpireDays         int    `env:"JWT_EXPIRE_DAYS" envDefault:"30"`           // Số ngày token còn hiệu lực
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu catalog
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	BcryptCost            int    `env:"BCRYPT_COST" envDefault:"10"`               // Cost khi hash mật khẩu admin
	// Tài khoản admin mặc định, tạo khi hệ thống chưa có admin nào
	DefaultAdminEmail    string `env:"DEFAULT_ADMIN_EMAIL" envDefault:"admin@shop-catalog.local"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD" envDefault:"admin123"`
	DefaultAdminName     string `env:"DEFAULT_ADMIN_NAME" envDefault:"Administrator"`
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn file private key (.key)
}

// getEnvPath trả về đường dẫn file env theo môi trường, tìm thư mục
// config/env bằng cách đi lên từ thư mục hiện tại.
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env theo môi trường. Trả về nil nếu
// không tìm thấy hoặc không parse được (caller quyết định Fatalf).
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
