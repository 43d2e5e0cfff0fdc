package services

import (
	"context"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/validator"
)

// FormState trạng thái của dialog form đặt phòng
type FormState string

const (
	FormEditing    FormState = "editing"
	FormValidating FormState = "validating"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormError      FormState = "error"
)

// SubmitFunc callback nhận payload đã chuẩn hóa
type SubmitFunc func(ctx context.Context, payload dto.BookingPayload) error

// BookingForm giữ giá trị form, lỗi theo trường và trạng thái submit.
type BookingForm struct {
	Values dto.BookingForm
	Errors apperrors.FieldErrors
	State  FormState
	// EditingID id booking đang sửa, rỗng khi tạo mới
	EditingID string
}

func NewBookingForm(initial *models.Booking) *BookingForm {
	form := &BookingForm{State: FormEditing, Errors: apperrors.FieldErrors{}}
	if initial != nil {
		form.Values = dto.BookingFormFromRecord(*initial)
		form.EditingID = initial.ID
	}
	return form
}

func (f *BookingForm) IsEdit() bool {
	return f.EditingID != ""
}

// Submit kiểm tra form rồi gọi submit. Lỗi của submit được ghi vào trường "submit",
// không trả về cho caller. Trả về true khi thành công.
func (f *BookingForm) Submit(ctx context.Context, values dto.BookingForm, submit SubmitFunc) bool {
	f.Values = values
	f.State = FormValidating

	payload, errs := validator.NormalizeBookingForm(values)
	if !errs.Empty() {
		f.Errors = errs
		f.State = FormError
		return false
	}

	f.State = FormSubmitting
	if err := submit(ctx, payload); err != nil {
		f.Errors = apperrors.FieldErrors{apperrors.SubmitField: errorMessage(err)}
		f.State = FormError
		return false
	}

	f.Errors = apperrors.FieldErrors{}
	f.State = FormSuccess
	return true
}

// errorMessage ưu tiên message của AppError để hiển thị cho người dùng
func errorMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
