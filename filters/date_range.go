package filters

import (
	"time"

	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/models"
)

const day = 24 * time.Hour

// dateWindow là khoảng [from, to) hoặc [from, to] áp lên ngày nhận phòng.
// Zero time ở một đầu nghĩa là không giới hạn đầu đó.
type dateWindow struct {
	active      bool
	from        time.Time
	to          time.Time
	toInclusive bool
}

// StartOfDay trả về 00:00 của ngày chứa t, theo múi giờ của t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay trả về 23:59:59.999 của ngày chứa t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// StartOfWeek trả về 00:00 của ngày đầu tuần chứa t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

func newDateWindow(f dto.BookingFilters, now time.Time, weekStart time.Weekday) dateWindow {
	today := StartOfDay(now)

	switch f.DateRange {
	case constants.DateRangeUpcoming:
		return dateWindow{active: true, from: today}
	case constants.DateRangeToday:
		return dateWindow{active: true, from: today, to: today.AddDate(0, 0, 1)}
	case constants.DateRangeWeek:
		start := StartOfWeek(now, weekStart)
		return dateWindow{active: true, from: start, to: start.AddDate(0, 0, 7)}
	case constants.DateRangeMonth:
		// Mốc cuối là 00:00 ngày 1 tháng sau (không tính), để trọn cả ngày cuối tháng.
		// Không đổi thành "ngày cuối tháng 00:00": sẽ bỏ sót booking nhận phòng trong ngày đó.
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return dateWindow{active: true, from: first, to: first.AddDate(0, 1, 0)}
	case constants.DateRangeCustom:
		w := dateWindow{toInclusive: true}
		if start, ok := parseBound(f.StartDate, now.Location()); ok {
			w.active = true
			w.from = StartOfDay(start)
		}
		if end, ok := parseBound(f.EndDate, now.Location()); ok {
			w.active = true
			w.to = EndOfDay(end)
		}
		return w
	default:
		return dateWindow{}
	}
}

// parseBound đọc mốc ngày của chế độ custom; giá trị không đọc được coi như bỏ trống.
func parseBound(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return t, true
	}
	if inst, ok := models.ParseInstant(raw); ok {
		return inst.Time.In(loc), true
	}
	return time.Time{}, false
}

func (w dateWindow) contains(checkIn models.Instant) bool {
	if !w.active {
		return true
	}
	if !checkIn.Valid() {
		return false
	}
	t := checkIn.Time
	if !w.from.IsZero() && t.Before(w.from) {
		return false
	}
	if w.to.IsZero() {
		return true
	}
	if w.toInclusive {
		return !t.After(w.to)
	}
	return t.Before(w.to)
}
