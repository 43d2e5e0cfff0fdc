package builders

import (
	"time"

	"hotelbooking/dto"
	"hotelbooking/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			RoomType:      models.RoomTypeStandard,
			Rooms:         1,
			Adults:        1,
			MealPlan:      models.MealPlanBreakfast,
			PaymentMethod: models.PaymentMethodCash,
			Status:        models.BookingStatusPending,
		},
	}
}

// FromPayload chép toàn bộ dữ liệu form đã chuẩn hóa
func (b *BookingBuilder) FromPayload(p dto.BookingPayload) *BookingBuilder {
	b.booking.BookingNumber = p.BookingNumber
	b.booking.CustomerID = p.CustomerID
	b.booking.CustomerName = p.CustomerName
	b.booking.HotelName = p.HotelName
	b.booking.City = p.City
	b.booking.Country = p.Country
	b.booking.CheckIn = p.CheckIn
	b.booking.CheckOut = p.CheckOut
	b.booking.Nights = p.Nights
	b.booking.RoomType = p.RoomType
	b.booking.Rooms = p.Rooms
	b.booking.Adults = p.Adults
	b.booking.Children = p.Children
	b.booking.MealPlan = p.MealPlan
	b.booking.TotalAmount = p.TotalAmount
	b.booking.PaidAmount = p.PaidAmount
	b.booking.PaymentMethod = p.PaymentMethod
	b.booking.Status = p.Status
	b.booking.SpecialRequests = p.SpecialRequests
	b.booking.Notes = p.Notes
	return b
}

// WithID gán id
func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.booking.ID = id
	return b
}

// WithBookingNumber gán mã đặt phòng
func (b *BookingBuilder) WithBookingNumber(number string) *BookingBuilder {
	b.booking.BookingNumber = number
	return b
}

// WithCustomer thêm thông tin khách hàng
func (b *BookingBuilder) WithCustomer(id, name string) *BookingBuilder {
	b.booking.CustomerID = id
	b.booking.CustomerName = name
	return b
}

// WithHotel thêm thông tin khách sạn
func (b *BookingBuilder) WithHotel(name, city, country string) *BookingBuilder {
	b.booking.HotelName = name
	b.booking.City = city
	b.booking.Country = country
	return b
}

// WithStay thêm ngày nhận/trả phòng và tính lại số đêm
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckIn = models.NewInstant(checkIn)
	b.booking.CheckOut = models.NewInstant(checkOut)
	b.booking.Nights = Nights(checkIn, checkOut)
	return b
}

// WithAmounts thêm tổng tiền và số tiền đã trả
func (b *BookingBuilder) WithAmounts(total, paid float64) *BookingBuilder {
	b.booking.TotalAmount = total
	b.booking.PaidAmount = paid
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status models.BookingStatus) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithRoomType thêm loại phòng
func (b *BookingBuilder) WithRoomType(roomType models.RoomType) *BookingBuilder {
	b.booking.RoomType = roomType
	return b
}

// WithTimestamps gán thời điểm tạo và cập nhật
func (b *BookingBuilder) WithTimestamps(createdAt, updatedAt time.Time) *BookingBuilder {
	b.booking.CreatedAt = models.NewInstant(createdAt)
	b.booking.UpdatedAt = models.NewInstant(updatedAt)
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() models.Booking {
	return *b.booking
}

const dayMillis = 86_400_000

// Nights = ceil(|checkOut - checkIn| / 1 ngày), tính theo mili giây.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.UnixMilli() - checkIn.UnixMilli()
	if diff < 0 {
		diff = -diff
	}
	return int((diff + dayMillis - 1) / dayMillis)
}
