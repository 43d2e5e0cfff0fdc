package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Instant là kiểu thời điểm duy nhất dùng trong hệ thống.
// Dữ liệu có thể đến dưới dạng {"seconds": N}, chuỗi ngày hoặc epoch ms;
// tất cả đều được chuẩn hóa ngay khi decode. Giá trị zero nghĩa là "không có".
type Instant struct {
	time.Time
}

// DefaultLocation dùng khi parse chuỗi ngày không kèm múi giờ.
var DefaultLocation = time.Local

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

type secondsWrapper struct {
	Seconds *float64 `json:"seconds"`
}

func NewInstant(t time.Time) Instant {
	return Instant{Time: t}
}

// InstantFromMillis chuyển epoch ms thành Instant.
func InstantFromMillis(ms int64) Instant {
	return Instant{Time: time.UnixMilli(ms)}
}

// ParseInstant parse một giá trị ngày dạng chuỗi; chuỗi rỗng hoặc sai định dạng trả về ok=false.
func ParseInstant(raw string) (Instant, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Instant{}, false
	}
	for _, layout := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, raw)
		} else {
			t, err = time.ParseInLocation(layout, raw, DefaultLocation)
		}
		if err == nil {
			return Instant{Time: t}, true
		}
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return InstantFromMillis(ms), true
	}
	return Instant{}, false
}

// Valid cho biết Instant có giá trị hay không.
func (i Instant) Valid() bool {
	return !i.Time.IsZero()
}

// Millis trả về epoch ms, Instant rỗng trả về 0.
func (i Instant) Millis() int64 {
	if !i.Valid() {
		return 0
	}
	return i.Time.UnixMilli()
}

func (i Instant) MarshalJSON() ([]byte, error) {
	if !i.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(i.Time.Format(time.RFC3339Nano))
}

func (i *Instant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*i = Instant{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '{':
		var w secondsWrapper
		if err := json.Unmarshal(data, &w); err != nil || w.Seconds == nil {
			return nil
		}
		*i = InstantFromMillis(int64(*w.Seconds * 1000))
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if parsed, ok := ParseInstant(s); ok {
			*i = parsed
		}
	default:
		if ms, err := strconv.ParseFloat(string(data), 64); err == nil {
			*i = InstantFromMillis(int64(ms))
		}
	}
	return nil
}

// Value lưu Instant rỗng thành NULL.
func (i Instant) Value() (driver.Value, error) {
	if !i.Valid() {
		return nil, nil
	}
	return i.Time, nil
}

func (i *Instant) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*i = Instant{}
	case time.Time:
		*i = Instant{Time: v}
	case string:
		parsed, _ := ParseInstant(v)
		*i = parsed
	case []byte:
		parsed, _ := ParseInstant(string(v))
		*i = parsed
	default:
		return fmt.Errorf("không thể scan %T thành Instant", value)
	}
	return nil
}

// GormDataType giúp AutoMigrate tạo cột timestamptz.
func (Instant) GormDataType() string {
	return "timestamptz"
}
