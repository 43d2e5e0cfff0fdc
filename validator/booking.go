package validator

import (
	"reflect"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"hotelbooking/builders"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Thông báo lỗi theo trường của form đặt phòng
const (
	MsgCustomerRequired   = "Vui lòng chọn khách hàng"
	MsgHotelRequired      = "Tên khách sạn không được để trống"
	MsgCityRequired       = "Thành phố không được để trống"
	MsgCheckInRequired    = "Ngày nhận phòng không được để trống"
	MsgCheckInInvalid     = "Ngày nhận phòng không hợp lệ"
	MsgCheckOutRequired   = "Ngày trả phòng không được để trống"
	MsgCheckOutInvalid    = "Ngày trả phòng không hợp lệ"
	MsgCheckOutBeforeIn   = "Ngày trả phòng phải sau ngày nhận phòng"
	MsgTotalRequired      = "Tổng tiền không được để trống"
	MsgTotalInvalid       = "Tổng tiền phải là số lớn hơn 0"
	MsgPaidInvalid        = "Số tiền đã trả phải là số không âm"
	MsgPaidExceedsTotal   = "Số tiền đã trả không được lớn hơn tổng tiền"
	MsgValueOutOfRange    = "Giá trị không hợp lệ"
	MsgValueNotInEnumList = "Giá trị không nằm trong danh sách cho phép"
)

// ValidateBookingForm kiểm tra form đặt phòng, trả về lỗi theo từng trường.
func ValidateBookingForm(form dto.BookingForm) apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}

	if strings.TrimSpace(form.CustomerID) == "" {
		errs["customerId"] = MsgCustomerRequired
	}
	if strings.TrimSpace(form.HotelName) == "" {
		errs["hotelName"] = MsgHotelRequired
	}
	if strings.TrimSpace(form.City) == "" {
		errs["city"] = MsgCityRequired
	}

	checkIn, checkInOK := models.ParseInstant(form.CheckIn)
	switch {
	case strings.TrimSpace(form.CheckIn) == "":
		errs["checkIn"] = MsgCheckInRequired
	case !checkInOK:
		errs["checkIn"] = MsgCheckInInvalid
	}

	checkOut, checkOutOK := models.ParseInstant(form.CheckOut)
	switch {
	case strings.TrimSpace(form.CheckOut) == "":
		errs["checkOut"] = MsgCheckOutRequired
	case !checkOutOK:
		errs["checkOut"] = MsgCheckOutInvalid
	case checkInOK && !checkOut.After(checkIn.Time):
		errs["checkOut"] = MsgCheckOutBeforeIn
	}

	total, totalOK := form.TotalAmount.Float()
	switch {
	case form.TotalAmount.String() == "":
		errs["totalAmount"] = MsgTotalRequired
	case !totalOK || total <= 0:
		errs["totalAmount"] = MsgTotalInvalid
		totalOK = false
	}

	if form.PaidAmount.String() != "" {
		paid, ok := form.PaidAmount.Float()
		switch {
		case !ok || paid < 0:
			errs["paidAmount"] = MsgPaidInvalid
		case totalOK && paid > total:
			errs["paidAmount"] = MsgPaidExceedsTotal
		}
	}

	return errs
}

// NormalizeBookingForm kiểm tra form và chuyển thành payload gửi data service.
// Số đêm được tính lại từ ngày nhận/trả phòng.
func NormalizeBookingForm(form dto.BookingForm) (dto.BookingPayload, apperrors.FieldErrors) {
	errs := ValidateBookingForm(form)
	if !errs.Empty() {
		return dto.BookingPayload{}, errs
	}

	checkIn, _ := models.ParseInstant(form.CheckIn)
	checkOut, _ := models.ParseInstant(form.CheckOut)
	total, _ := form.TotalAmount.Float()
	paid, _ := form.PaidAmount.Float()

	payload := dto.BookingPayload{
		BookingNumber:   strings.TrimSpace(form.BookingNumber),
		CustomerID:      strings.TrimSpace(form.CustomerID),
		HotelName:       strings.TrimSpace(form.HotelName),
		City:            strings.TrimSpace(form.City),
		Country:         strings.TrimSpace(form.Country),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          builders.Nights(checkIn.Time, checkOut.Time),
		RoomType:        models.RoomType(orDefault(form.RoomType, string(models.RoomTypeStandard))),
		Rooms:           toInt(form.Rooms, 1),
		Adults:          toInt(form.Adults, 1),
		Children:        toInt(form.Children, 0),
		MealPlan:        models.MealPlan(orDefault(form.MealPlan, string(models.MealPlanBreakfast))),
		TotalAmount:     total,
		PaidAmount:      paid,
		PaymentMethod:   models.PaymentMethod(orDefault(form.PaymentMethod, string(models.PaymentMethodCash))),
		Status:          models.BookingStatus(orDefault(form.Status, string(models.BookingStatusPending))),
		SpecialRequests: form.SpecialRequests,
		Notes:           form.Notes,
	}

	if err := validate.Struct(payload); err != nil {
		return dto.BookingPayload{}, translate(err)
	}
	return payload, nil
}

func translate(err error) apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	validationErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		errs[apperrors.SubmitField] = err.Error()
		return errs
	}
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "oneof":
			errs[fe.Field()] = MsgValueNotInEnumList
		default:
			errs[fe.Field()] = MsgValueOutOfRange
		}
	}
	return errs
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// toInt ép giá trị form sang số nguyên; rỗng hoặc sai định dạng dùng giá trị mặc định.
func toInt(v dto.FormValue, def int) int {
	s := v.String()
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, ok := v.Float(); ok {
		return int(f)
	}
	return def
}
