package notification

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"

	"hotelbooking/constants"
	"hotelbooking/models"
)

// SessionKey khóa lưu session id trong melody.Session
const SessionKey = "sessionId"

// Toast thông báo ngắn hiển thị cho người dùng
type Toast struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Service interface {
	Send(sessionID string, toast Toast) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

// Send gửi toast tới các kết nối websocket của session; sessionID rỗng thì gửi cho tất cả.
func (s *MelodyService) Send(sessionID string, toast Toast) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	msg, err := json.Marshal(toast)
	if err != nil {
		return err
	}
	if sessionID == "" {
		return s.m.Broadcast(msg)
	}
	return s.m.BroadcastFilter(msg, func(session *melody.Session) bool {
		id, ok := session.Get(SessionKey)
		return ok && id == sessionID
	})
}

// Recorder lưu lại các toast đã gửi, dùng khi không có websocket (test, CLI)
type Recorder struct {
	mu     sync.Mutex
	Toasts []Toast
}

func (r *Recorder) Send(_ string, toast Toast) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Toasts = append(r.Toasts, toast)
	return nil
}

// Last trả về toast gần nhất
func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Toasts) == 0 {
		return Toast{}, false
	}
	return r.Toasts[len(r.Toasts)-1], true
}

type MessageBuilder struct {
	action  string
	booking models.Booking
}

func NewMessageBuilder(action string, booking models.Booking) *MessageBuilder {
	return &MessageBuilder{
		action:  action,
		booking: booking,
	}
}

func (b *MessageBuilder) Build() string {
	label := b.booking.BookingNumber
	if label == "" {
		label = b.booking.ID
	}
	switch b.action {
	case "created":
		return fmt.Sprintf("Đã tạo đặt phòng %s cho %s", label, b.booking.CustomerName)
	case "updated":
		return fmt.Sprintf("Đã cập nhật đặt phòng %s", label)
	case "deleted":
		return fmt.Sprintf("Đã xóa đặt phòng %s", label)
	case "status":
		return fmt.Sprintf("Đặt phòng %s chuyển sang trạng thái %s", label, b.booking.Status)
	case "voucher":
		return fmt.Sprintf("Đang chuẩn bị voucher cho đặt phòng %s", label)
	default:
		return label
	}
}

// Success tạo toast thành công
func Success(message string) Toast {
	return Toast{Type: constants.NotifySuccess, Message: message}
}

// Failure tạo toast lỗi
func Failure(message string) Toast {
	return Toast{Type: constants.NotifyError, Message: message}
}

// Info tạo toast thông tin
func Info(message string) Toast {
	return Toast{Type: constants.NotifyInfo, Message: message}
}
