package filters

import (
	"cmp"
	"slices"
	"strings"

	"hotelbooking/constants"
	"hotelbooking/models"
)

// SortField tên cột dùng để sắp xếp.
type SortField string

const (
	SortNone            SortField = ""
	SortID              SortField = "id"
	SortCustomerID      SortField = "customerId"
	SortSpecialRequests SortField = "specialRequests"
	SortNotes           SortField = "notes"
	SortUpdatedAt       SortField = "updatedAt"
	SortCustomerName    SortField = "customerName"
	SortBookingNumber   SortField = "bookingNumber"
	SortHotelName       SortField = "hotelName"
	SortCity            SortField = "city"
	SortCountry         SortField = "country"
	SortCheckIn         SortField = "checkIn"
	SortCheckOut        SortField = "checkOut"
	SortCreatedAt       SortField = "createdAt"
	SortNights          SortField = "nights"
	SortRooms           SortField = "rooms"
	SortAdults          SortField = "adults"
	SortChildren        SortField = "children"
	SortTotalAmount     SortField = "totalAmount"
	SortPaidAmount      SortField = "paidAmount"
	SortStatus          SortField = "status"
	SortRoomType        SortField = "roomType"
	SortMealPlan        SortField = "mealPlan"
	SortPaymentMethod   SortField = "paymentMethod"
)

// comparator so sánh hai booking theo một cột, kết quả -1/0/+1 theo chiều tăng.
type comparator func(a, b models.Booking) int

func byString(get func(models.Booking) string) comparator {
	return func(a, b models.Booking) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func byInstant(get func(models.Booking) models.Instant) comparator {
	return func(a, b models.Booking) int {
		return cmp.Compare(get(a).Millis(), get(b).Millis())
	}
}

func byNumber[T cmp.Ordered](get func(models.Booking) T) comparator {
	return func(a, b models.Booking) int {
		return cmp.Compare(get(a), get(b))
	}
}

// comparators: mỗi cột có đúng một quy tắc ép kiểu. Cột không có trong bảng giữ nguyên thứ tự.
var comparators = map[SortField]comparator{
	SortID:              byString(func(b models.Booking) string { return b.ID }),
	SortCustomerID:      byString(func(b models.Booking) string { return b.CustomerID }),
	SortSpecialRequests: byString(func(b models.Booking) string { return b.SpecialRequests }),
	SortNotes:           byString(func(b models.Booking) string { return b.Notes }),
	SortUpdatedAt:       byInstant(func(b models.Booking) models.Instant { return b.UpdatedAt }),
	SortCustomerName:    byString(func(b models.Booking) string { return b.CustomerName }),
	SortBookingNumber:   byString(func(b models.Booking) string { return b.BookingNumber }),
	SortHotelName:       byString(func(b models.Booking) string { return b.HotelName }),
	SortCity:            byString(func(b models.Booking) string { return b.City }),
	SortCountry:         byString(func(b models.Booking) string { return b.Country }),
	SortCheckIn:         byInstant(func(b models.Booking) models.Instant { return b.CheckIn }),
	SortCheckOut:        byInstant(func(b models.Booking) models.Instant { return b.CheckOut }),
	SortCreatedAt:       byInstant(func(b models.Booking) models.Instant { return b.CreatedAt }),
	SortTotalAmount:     byNumber(func(b models.Booking) float64 { return b.TotalAmount }),
	SortPaidAmount:      byNumber(func(b models.Booking) float64 { return b.PaidAmount }),
	SortNights:          byNumber(func(b models.Booking) int { return b.Nights }),
	SortRooms:           byNumber(func(b models.Booking) int { return b.Rooms }),
	SortAdults:          byNumber(func(b models.Booking) int { return b.Adults }),
	SortChildren:        byNumber(func(b models.Booking) int { return b.Children }),
	SortStatus:          byNumber(func(b models.Booking) string { return string(b.Status) }),
	SortRoomType:        byNumber(func(b models.Booking) string { return string(b.RoomType) }),
	SortMealPlan:        byNumber(func(b models.Booking) string { return string(b.MealPlan) }),
	SortPaymentMethod:   byNumber(func(b models.Booking) string { return string(b.PaymentMethod) }),
}

// KnownSortField cho biết cột có quy tắc so sánh hay không.
func KnownSortField(field SortField) bool {
	_, ok := comparators[field]
	return ok
}

// NormalizeDir trả về "desc" hoặc "asc" (mặc định).
func NormalizeDir(dir string) string {
	if strings.EqualFold(dir, constants.SortDesc) {
		return constants.SortDesc
	}
	return constants.SortAsc
}

// Sort sắp xếp ổn định records tại chỗ. Dùng trên slice do Apply tạo ra.
func Sort(records []models.Booking, field SortField, dir string) {
	compare, ok := comparators[field]
	if !ok {
		return
	}
	desc := NormalizeDir(dir) == constants.SortDesc
	slices.SortStableFunc(records, func(a, b models.Booking) int {
		c := compare(a, b)
		if desc {
			return -c
		}
		return c
	})
}
