// Package logger cung cấp hệ thống logging của ứng dụng: logrus với
// file rotation (lumberjack), ghi log bất đồng bộ và logger đặt tên
// theo từng mối quan tâm (app, error).
package logger

import (
	"os"
	"strconv"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      string // Mức log: debug, info, warn, error
	Format     string // Định dạng: json hoặc text
	Output     string // Đích ghi: file, stdout, both
	MaxSize    int    // Kích thước tối đa mỗi file log (MB)
	MaxBackups int    // Số file log cũ giữ lại
	MaxAge     int    // Số ngày giữ file log cũ
	Compress   bool   // Nén file log cũ
	LogPath    string // Thư mục chứa file log
	AppFile    string // Tên file log chính
	ErrorFile  string // Tên file log lỗi
}

// DefaultConfig trả về cấu hình mặc định theo môi trường (GO_ENV),
// cho phép override từng giá trị qua biến môi trường LOG_*.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
		LogPath:    "logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
	}

	if os.Getenv("GO_ENV") == "production" {
		cfg.Level = "warn"
		cfg.Format = "json"
		cfg.Output = "file"
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSize = n
		}
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBackups = n
		}
	}
	if v := os.Getenv("LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxAge = n
		}
	}

	return cfg
}
