// Package filters chứa pipeline lọc và sắp xếp danh sách đặt phòng.
//
// Apply là hàm thuần: không I/O, không sửa slice đầu vào, cùng input luôn cho cùng output.
package filters

import (
	"strings"
	"time"

	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/models"
)

// Query gom toàn bộ trạng thái cần để dựng danh sách hiển thị.
type Query struct {
	Search    string
	Filters   dto.BookingFilters
	SortField SortField
	SortDir   string
	// WeekStart ngày đầu tuần cho chế độ "week", mặc định Chủ nhật.
	WeekStart time.Weekday
}

// Apply lọc rồi sắp xếp records theo q, với mốc thời gian hiện tại now.
func Apply(records []models.Booking, q Query, now time.Time) []models.Booking {
	term := strings.ToLower(q.Search)
	window := newDateWindow(q.Filters, now, q.WeekStart)

	result := make([]models.Booking, 0, len(records))
	for _, b := range records {
		if term != "" && !matchesSearch(b, term) {
			continue
		}
		if !matchesStatus(b, q.Filters.Status) {
			continue
		}
		if q.Filters.City != "" && b.City != q.Filters.City {
			continue
		}
		if !matchesRoomType(b, q.Filters.RoomType) {
			continue
		}
		if !window.contains(b.CheckIn) {
			continue
		}
		result = append(result, b)
	}

	Sort(result, q.SortField, q.SortDir)
	return result
}

// matchesSearch: term đã được lower-case; trường rỗng không bao giờ khớp.
func matchesSearch(b models.Booking, term string) bool {
	for _, field := range []string{b.CustomerName, b.BookingNumber, b.HotelName, b.City} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesStatus(b models.Booking, status string) bool {
	if status == "" || status == constants.FilterAll {
		return true
	}
	return string(b.Status) == status
}

func matchesRoomType(b models.Booking, roomType string) bool {
	if roomType == "" || roomType == constants.FilterAll {
		return true
	}
	return string(b.RoomType) == roomType
}
