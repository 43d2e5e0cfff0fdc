package constants

// Giá trị "tất cả" của bộ lọc
const FilterAll = "all"

// Chế độ lọc theo ngày nhận phòng
const (
	DateRangeAll      = "all"
	DateRangeUpcoming = "upcoming"
	DateRangeToday    = "today"
	DateRangeWeek     = "week"
	DateRangeMonth    = "month"
	DateRangeCustom   = "custom"
)

// Chiều sắp xếp
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Quyền của nhân viên
const (
	PermissionBookingsRead  = "bookings:read"
	PermissionBookingsWrite = "bookings:write"
)

// Loại thông báo gửi qua websocket
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyInfo    = "info"
)

// Redis keys
const (
	CacheKeyBookings  = "bookings:all"
	LastFiltersPrefix = "last_filters:"
	IdempotencyPrefix = "idempotency:"
)
