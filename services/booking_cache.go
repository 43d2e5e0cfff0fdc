package services

import (
	"context"
	"time"

	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/services/logger"
)

const bookingsCacheTTL = 10 * time.Minute

// CachedBookingStore đọc danh sách qua cache, xóa cache sau mỗi lần ghi.
// Dữ liệu cache đi qua models.Instant nên cả dạng {"seconds": N} cũng đọc được.
type CachedBookingStore struct {
	next   BookingStore
	cache  Cache
	logger logger.Logger
	ttl    time.Duration
}

func NewCachedBookingStore(next BookingStore, cache Cache, log logger.Logger) *CachedBookingStore {
	return &CachedBookingStore{next: next, cache: cache, logger: log, ttl: bookingsCacheTTL}
}

func (s *CachedBookingStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var cached []models.Booking
	found, err := s.cache.Get(ctx, constants.CacheKeyBookings, &cached)
	if err != nil {
		s.logger.Error("Lỗi khi đọc cache đặt phòng: %v", err)
	}
	if found && err == nil {
		return cached, nil
	}

	bookings, err := s.next.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, constants.CacheKeyBookings, bookings, s.ttl); err != nil {
		s.logger.Error("Lỗi khi lưu danh sách đặt phòng vào cache: %v", err)
	}
	return bookings, nil
}

func (s *CachedBookingStore) CreateBooking(ctx context.Context, payload dto.BookingPayload) (models.Booking, error) {
	booking, err := s.next.CreateBooking(ctx, payload)
	if err == nil {
		s.invalidate(ctx)
	}
	return booking, err
}

func (s *CachedBookingStore) UpdateBooking(ctx context.Context, id string, payload dto.BookingPayload) (models.Booking, error) {
	booking, err := s.next.UpdateBooking(ctx, id, payload)
	if err == nil {
		s.invalidate(ctx)
	}
	return booking, err
}

func (s *CachedBookingStore) DeleteBooking(ctx context.Context, id string) error {
	err := s.next.DeleteBooking(ctx, id)
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

// Invalidate xóa cache danh sách, dùng bởi job định kỳ
func (s *CachedBookingStore) Invalidate(ctx context.Context) {
	s.invalidate(ctx)
}

func (s *CachedBookingStore) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.CacheKeyBookings); err != nil {
		s.logger.Error("Lỗi khi xóa cache đặt phòng: %v", err)
	}
}
