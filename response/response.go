package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code   int               `json:"code"`
	Mess   string            `json:"mess"`
	Data   interface{}       `json:"data,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Tạo thành công",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Thành công",
		Total: total,
		Data:  data,
	})
}

// Error trả về response lỗi với HTTP status cho trước
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Lỗi server")
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Chưa xác thực")
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Không có quyền truy cập")
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Không tìm thấy")
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// ValidationErrors trả về lỗi theo từng trường của form
func ValidationErrors(c *gin.Context, fields errors.FieldErrors) {
	c.JSON(http.StatusBadRequest, Response{
		Code:   0,
		Mess:   "Dữ liệu không hợp lệ",
		Errors: fields,
	})
}

// FromError chọn HTTP status theo loại lỗi
func FromError(c *gin.Context, err error) {
	var fields errors.FieldErrors
	if stderrors.As(err, &fields) {
		ValidationErrors(c, fields)
		return
	}

	Error(c, StatusFor(err), messageFor(err))
}

// StatusFor HTTP status tương ứng với err
func StatusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrBookingNotFound),
		stderrors.Is(err, errors.ErrCustomerNotFound),
		stderrors.Is(err, errors.ErrStaffNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidTransition),
		stderrors.Is(err, errors.ErrNothingSelected):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, errors.ErrInvalidInput),
		stderrors.Is(err, errors.ErrMissingRequired),
		stderrors.Is(err, errors.ErrInvalidFormat):
		return http.StatusBadRequest
	}
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
			return http.StatusUnauthorized
		case errors.ErrCodeForbidden:
			return http.StatusForbidden
		case errors.ErrCodeDBNotFound:
			return http.StatusNotFound
		case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidAmount:
			return http.StatusBadRequest
		case errors.ErrCodeInvalidOperation:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

func messageFor(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	if StatusFor(err) == http.StatusInternalServerError {
		return "Lỗi server"
	}
	return err.Error()
}
