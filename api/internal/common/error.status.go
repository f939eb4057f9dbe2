// Package common định nghĩa hệ thống lỗi chuẩn hóa của toàn bộ API:
// mã lỗi phân loại theo nhóm, HTTP status tương ứng và các lỗi sentinel
// dùng chung giữa các tầng service/handler.
package common

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Các HTTP status code sử dụng trong toàn hệ thống
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessable       = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Các message chuẩn trả về cho client
const (
	MsgSuccess        = "Thành công"
	MsgBadRequest     = "Yêu cầu không hợp lệ"
	MsgUnauthorized   = "Chưa xác thực"
	MsgForbidden      = "Không có quyền truy cập"
	MsgNotFound       = "Không tìm thấy dữ liệu"
	MsgConflict       = "Dữ liệu đã tồn tại"
	MsgInternalServer = "Lỗi hệ thống"
)

// ErrorCode định nghĩa mã lỗi có phân loại (category/subCategory)
type ErrorCode struct {
	Code        string // Mã lỗi duy nhất, ví dụ: VAL_001
	Category    string // Nhóm lỗi chính: SYSTEM, AUTH, VALIDATION, DATABASE, BUSINESS
	SubCategory string // Nhóm lỗi phụ, mô tả chi tiết hơn
	Description string // Mô tả ý nghĩa của mã lỗi
}

// Danh sách mã lỗi của hệ thống
var (
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "SYSTEM", SubCategory: "INTERNAL", Description: "Lỗi nội bộ hệ thống"}

	ErrCodeAuth            = ErrorCode{Code: "AUTH_000", Category: "AUTH", SubCategory: "GENERAL", Description: "Lỗi xác thực chung"}
	ErrCodeAuthToken       = ErrorCode{Code: "AUTH_001", Category: "AUTH", SubCategory: "TOKEN", Description: "Lỗi liên quan đến token xác thực"}
	ErrCodeAuthCredentials = ErrorCode{Code: "AUTH_002", Category: "AUTH", SubCategory: "CREDENTIALS", Description: "Thông tin đăng nhập không hợp lệ"}
	ErrCodeAuthRole        = ErrorCode{Code: "AUTH_003", Category: "AUTH", SubCategory: "ROLE", Description: "Không đủ quyền thực hiện thao tác"}

	ErrCodeValidation          = ErrorCode{Code: "VAL_000", Category: "VALIDATION", SubCategory: "GENERAL", Description: "Lỗi kiểm tra dữ liệu chung"}
	ErrCodeValidationInput     = ErrorCode{Code: "VAL_001", Category: "VALIDATION", SubCategory: "INPUT", Description: "Dữ liệu đầu vào không hợp lệ"}
	ErrCodeValidationFormat    = ErrorCode{Code: "VAL_002", Category: "VALIDATION", SubCategory: "FORMAT", Description: "Định dạng dữ liệu không hợp lệ"}
	ErrCodeValidationReference = ErrorCode{Code: "VAL_003", Category: "VALIDATION", SubCategory: "REFERENCE", Description: "Tham chiếu đến thực thể không tồn tại hoặc sai định dạng"}

	ErrCodeDatabase           = ErrorCode{Code: "DB_000", Category: "DATABASE", SubCategory: "GENERAL", Description: "Lỗi cơ sở dữ liệu chung"}
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "DATABASE", SubCategory: "CONNECTION", Description: "Lỗi kết nối cơ sở dữ liệu"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "DATABASE", SubCategory: "QUERY", Description: "Lỗi truy vấn cơ sở dữ liệu"}
	ErrCodeDatabaseDuplicate  = ErrorCode{Code: "DB_003", Category: "DATABASE", SubCategory: "DUPLICATE", Description: "Dữ liệu trùng lặp (vi phạm unique index)"}

	ErrCodeBusiness          = ErrorCode{Code: "BIZ_000", Category: "BUSINESS", SubCategory: "GENERAL", Description: "Lỗi nghiệp vụ chung"}
	ErrCodeBusinessState     = ErrorCode{Code: "BIZ_001", Category: "BUSINESS", SubCategory: "STATE", Description: "Dữ liệu vi phạm ràng buộc nghiệp vụ"}
	ErrCodeBusinessOperation = ErrorCode{Code: "BIZ_002", Category: "BUSINESS", SubCategory: "OPERATION", Description: "Thao tác nghiệp vụ không hợp lệ"}
)

// Error là kiểu lỗi chuẩn của hệ thống, mang theo mã lỗi, thông điệp
// cho client, HTTP status và chi tiết bổ sung (nếu có)
type Error struct {
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

// Error trả về chuỗi mô tả lỗi, implement interface error
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("[%s] %s (details: %v)", e.Code.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code.Code, e.Message)
}

// Is so sánh hai lỗi dựa trên mã lỗi, phục vụ errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == t.Code.Code
}

// NewError tạo một lỗi chuẩn mới của hệ thống
func NewError(code ErrorCode, message string, statusCode int, details interface{}) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Các lỗi sentinel dùng chung trong toàn hệ thống
var (
	// Lỗi xác thực
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Email hoặc mật khẩu không đúng", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Token đã hết hạn", StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, nil)

	// Lỗi kiểm tra dữ liệu
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu trường dữ liệu bắt buộc", StatusBadRequest, nil)

	// Lỗi tham chiếu: id Category/Size sai định dạng hoặc không tồn tại
	ErrInvalidReference = NewError(ErrCodeValidationReference, "Tham chiếu không hợp lệ", StatusBadRequest, nil)

	// Lỗi ràng buộc nghiệp vụ: giá/số lượng/sale price vi phạm quy tắc
	ErrInvariantViolation = NewError(ErrCodeBusinessState, "Dữ liệu vi phạm ràng buộc nghiệp vụ", StatusBadRequest, nil)

	// Lỗi dữ liệu
	ErrNotFound       = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrMongoDuplicate = NewError(ErrCodeDatabaseDuplicate, MsgConflict, StatusConflict, nil)

	// Lỗi trùng tên: name/code/slug/sku đã tồn tại trong cùng loại thực thể
	ErrDuplicateName = NewError(ErrCodeDatabaseDuplicate, "Tên đã tồn tại trong hệ thống", StatusConflict, nil)
)

// ConvertMongoError chuyển đổi lỗi từ MongoDB driver thành lỗi chuẩn
// của hệ thống. Giữ nguyên các lỗi đã được chuẩn hóa trước đó.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Lỗi đã chuẩn hóa thì giữ nguyên
	var customErr *Error
	if errors.As(err, &customErr) {
		return err
	}

	// Không tìm thấy document
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Trùng unique index (name/code/slug/sku)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}

	// Lỗi timeout hoặc mất kết nối
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return NewError(ErrCodeDatabaseConnection, "Truy vấn cơ sở dữ liệu quá thời gian cho phép", StatusGatewayTimeout, nil)
	}
	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, "Mất kết nối đến cơ sở dữ liệu", StatusServiceUnavailable, nil)
	}

	// Lỗi lệnh từ server MongoDB
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case cmdErr.Code == 11000 || cmdErr.Code == 11001:
			return ErrDuplicateName
		case cmdErr.Code == 13 || cmdErr.Code == 18:
			return NewError(ErrCodeDatabaseConnection, "Lỗi xác thực với cơ sở dữ liệu", StatusInternalServerError, nil)
		default:
			return NewError(ErrCodeDatabaseQuery, MsgInternalServer, StatusInternalServerError, nil)
		}
	}

	// Lỗi không phân loại được: trả về lỗi hệ thống chung, không lộ chi tiết
	return NewError(ErrCodeInternalServer, MsgInternalServer, StatusInternalServerError, nil)
}
