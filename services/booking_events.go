package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/services/logger"
)

// Loại sự kiện booking
const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

type BookingEvent struct {
	Type       string          `json:"type"`
	BookingID  string          `json:"bookingId"`
	Booking    *models.Booking `json:"booking,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher ghi sự kiện vào Kafka, key là id booking để giữ thứ tự theo booking.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.BookingID), Value: value}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// PublishingBookingStore phát sự kiện sau mỗi thao tác ghi thành công.
// Lỗi phát sự kiện chỉ được log, không làm hỏng thao tác.
type PublishingBookingStore struct {
	next      BookingStore
	publisher EventPublisher
	logger    logger.Logger
	clock     func() time.Time
}

func NewPublishingBookingStore(next BookingStore, publisher EventPublisher, log logger.Logger) *PublishingBookingStore {
	return &PublishingBookingStore{next: next, publisher: publisher, logger: log, clock: time.Now}
}

func (s *PublishingBookingStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.next.ListBookings(ctx)
}

func (s *PublishingBookingStore) CreateBooking(ctx context.Context, payload dto.BookingPayload) (models.Booking, error) {
	booking, err := s.next.CreateBooking(ctx, payload)
	if err == nil {
		s.publish(ctx, EventBookingCreated, booking.ID, &booking)
	}
	return booking, err
}

func (s *PublishingBookingStore) UpdateBooking(ctx context.Context, id string, payload dto.BookingPayload) (models.Booking, error) {
	booking, err := s.next.UpdateBooking(ctx, id, payload)
	if err == nil {
		s.publish(ctx, EventBookingUpdated, booking.ID, &booking)
	}
	return booking, err
}

func (s *PublishingBookingStore) DeleteBooking(ctx context.Context, id string) error {
	err := s.next.DeleteBooking(ctx, id)
	if err == nil {
		s.publish(ctx, EventBookingDeleted, id, nil)
	}
	return err
}

func (s *PublishingBookingStore) publish(ctx context.Context, eventType, id string, booking *models.Booking) {
	event := BookingEvent{Type: eventType, BookingID: id, Booking: booking, OccurredAt: s.clock()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Không thể phát sự kiện %s cho booking %s: %v", eventType, id, err)
	}
}
