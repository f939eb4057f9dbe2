package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"shop_catalog/api/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để các message tiếng Việt hiển thị đúng encoding.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc handler với recover để bắt panic: server luôn trả về
// response cho client, kể cả khi logic handler panic.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse chuẩn hóa response trả về cho client theo envelope
// thống nhất {code, message, data/details, status}.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		HandleErrorResponse(c, err)
		return
	}

	_ = JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleErrorResponse trả về envelope lỗi cho client. Lỗi đã chuẩn hóa
// giữ nguyên mã và HTTP status; lỗi lạ trả về 500 không lộ chi tiết.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		_ = JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}

	_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalServer,
		"status":  "error",
	})
}
