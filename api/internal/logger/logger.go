package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers lưu các logger instance theo tên
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging hiện hành
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình. Truyền nil để dùng
// cấu hình mặc định.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa tồn tại
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger
	return logger
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger trả về logger cho lỗi
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}

// WithRequest trả về entry gắn sẵn thông tin request (id, method, path, ip)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"request_id": c.Get("X-Request-ID"),
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
	})
}

// createLogger tạo một logger mới theo cấu hình hiện hành
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				parts := strings.Split(f.Function, ".")
				funcName := parts[len(parts)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// Tách writer theo cấu hình; ghi qua async hook để file I/O chậm
	// không block request handling
	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   getLogFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if len(writers) > 0 {
		logger.AddHook(NewAsyncHookWithWriters(writers, 1000))
		// Output discard để tránh ghi trùng: hook xử lý toàn bộ việc ghi
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)
	return logger
}

// getLogFilePath trả về đường dẫn file log cho logger name
func getLogFilePath(name string) string {
	var filename string
	switch name {
	case "app":
		filename = config.AppFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}
	return filepath.Join(config.LogPath, filename)
}
