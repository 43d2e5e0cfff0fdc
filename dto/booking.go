package dto

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"hotelbooking/models"
)

// BookingFilters bộ lọc của danh sách đặt phòng
type BookingFilters struct {
	Status    string `json:"status"`
	DateRange string `json:"dateRange"`
	City      string `json:"city"`
	RoomType  string `json:"roomType"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// DefaultBookingFilters bộ lọc mặc định: không lọc gì cả
func DefaultBookingFilters() BookingFilters {
	return BookingFilters{
		Status:    "all",
		DateRange: "all",
		RoomType:  "all",
	}
}

// LastFilters trạng thái tìm kiếm được lưu lại theo session
type LastFilters struct {
	Search    string         `json:"search"`
	Filters   BookingFilters `json:"filters"`
	SortField string         `json:"sortField"`
	SortDir   string         `json:"sortDir"`
}

// FormValue nhận giá trị form dạng chuỗi hoặc số trong JSON.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(strings.TrimSpace(string(data)))
	return nil
}

func (v FormValue) String() string {
	return strings.TrimSpace(string(v))
}

// Float parse giá trị số, ok=false nếu rỗng hoặc không phải số.
func (v FormValue) Float() (float64, bool) {
	s := v.String()
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// BookingForm dữ liệu form tạo/sửa đặt phòng
type BookingForm struct {
	BookingNumber   string    `json:"bookingNumber"`
	CustomerID      string    `json:"customerId"`
	HotelName       string    `json:"hotelName"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	RoomType        string    `json:"roomType"`
	Rooms           FormValue `json:"rooms"`
	Adults          FormValue `json:"adults"`
	Children        FormValue `json:"children"`
	MealPlan        string    `json:"mealPlan"`
	TotalAmount     FormValue `json:"totalAmount"`
	PaidAmount      FormValue `json:"paidAmount"`
	PaymentMethod   string    `json:"paymentMethod"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests"`
	Notes           string    `json:"notes"`
}

// BookingFormFromRecord điền form từ một booking có sẵn (mở dialog sửa).
func BookingFormFromRecord(b models.Booking) BookingForm {
	form := BookingForm{
		BookingNumber:   b.BookingNumber,
		CustomerID:      b.CustomerID,
		HotelName:       b.HotelName,
		City:            b.City,
		Country:         b.Country,
		RoomType:        string(b.RoomType),
		Rooms:           FormValue(strconv.Itoa(b.Rooms)),
		Adults:          FormValue(strconv.Itoa(b.Adults)),
		Children:        FormValue(strconv.Itoa(b.Children)),
		MealPlan:        string(b.MealPlan),
		TotalAmount:     FormValue(strconv.FormatFloat(b.TotalAmount, 'f', -1, 64)),
		PaidAmount:      FormValue(strconv.FormatFloat(b.PaidAmount, 'f', -1, 64)),
		PaymentMethod:   string(b.PaymentMethod),
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
	}
	if b.CheckIn.Valid() {
		form.CheckIn = b.CheckIn.Format("2006-01-02")
	}
	if b.CheckOut.Valid() {
		form.CheckOut = b.CheckOut.Format("2006-01-02")
	}
	return form
}

// BookingPayload dữ liệu đã chuẩn hóa gửi tới data service
type BookingPayload struct {
	BookingNumber   string               `json:"bookingNumber,omitempty"`
	CustomerID      string               `json:"customerId" validate:"required"`
	CustomerName    string               `json:"customerName"`
	HotelName       string               `json:"hotelName" validate:"required"`
	City            string               `json:"city" validate:"required"`
	Country         string               `json:"country"`
	CheckIn         models.Instant       `json:"checkIn"`
	CheckOut        models.Instant       `json:"checkOut"`
	Nights          int                  `json:"nights" validate:"gte=0"`
	RoomType        models.RoomType      `json:"roomType" validate:"oneof=standard deluxe suite family"`
	Rooms           int                  `json:"rooms" validate:"min=1,max=10"`
	Adults          int                  `json:"adults" validate:"min=1,max=10"`
	Children        int                  `json:"children" validate:"min=0,max=6"`
	MealPlan        models.MealPlan      `json:"mealPlan" validate:"oneof=breakfast halfBoard fullBoard allInclusive roomOnly"`
	TotalAmount     float64              `json:"totalAmount" validate:"gt=0"`
	PaidAmount      float64              `json:"paidAmount" validate:"gte=0"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod" validate:"oneof=cash card transfer"`
	Status          models.BookingStatus `json:"status" validate:"oneof=pending confirmed cancelled completed"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	Notes           string               `json:"notes,omitempty"`
}

// FilterPatch thay đổi một phần bộ lọc: trường nil giữ giá trị cũ, chuỗi rỗng xóa giá trị cũ.
type FilterPatch struct {
	Status    *string
	DateRange *string
	City      *string
	RoomType  *string
	StartDate *string
	EndDate   *string
}

func (p FilterPatch) Empty() bool {
	return p == FilterPatch{}
}

// StatusUpdateRequest yêu cầu đổi nhanh trạng thái
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingListResponse kết quả danh sách sau khi lọc
type BookingListResponse struct {
	Bookings  []models.Booking `json:"bookings"`
	Total     int              `json:"total"`
	Filtered  int              `json:"filtered"`
	Search    string           `json:"search"`
	Filters   BookingFilters   `json:"filters"`
	SortField string           `json:"sortField"`
	SortDir   string           `json:"sortDir"`
	Cities    []string         `json:"cities"`
}

// VoucherResponse dữ liệu voucher để in
type VoucherResponse struct {
	BookingID     string `json:"bookingId"`
	BookingNumber string `json:"bookingNumber"`
	CustomerName  string `json:"customerName"`
	HotelName     string `json:"hotelName"`
	Location      string `json:"location"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	RoomType      string `json:"roomType"`
	Rooms         int    `json:"rooms"`
	Guests        string `json:"guests"`
	MealPlan      string `json:"mealPlan"`
	TotalAmount   string `json:"totalAmount"`
	PaidAmount    string `json:"paidAmount"`
	BalanceDue    string `json:"balanceDue"`
	Status        string `json:"status"`
}

// PayloadFromBooking dựng payload từ booking hiện có (dùng khi chỉ đổi một vài trường).
func PayloadFromBooking(b models.Booking) BookingPayload {
	return BookingPayload{
		BookingNumber:   b.BookingNumber,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		HotelName:       b.HotelName,
		City:            b.City,
		Country:         b.Country,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          b.Nights,
		RoomType:        b.RoomType,
		Rooms:           b.Rooms,
		Adults:          b.Adults,
		Children:        b.Children,
		MealPlan:        b.MealPlan,
		TotalAmount:     b.TotalAmount,
		PaidAmount:      b.PaidAmount,
		PaymentMethod:   b.PaymentMethod,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
	}
}
