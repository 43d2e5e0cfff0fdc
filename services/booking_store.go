package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelbooking/builders"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

// BookingStore data service quản lý booking
type BookingStore interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	CreateBooking(ctx context.Context, payload dto.BookingPayload) (models.Booking, error)
	UpdateBooking(ctx context.Context, id string, payload dto.BookingPayload) (models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// CustomerStore data service tra cứu khách hàng
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
}

type GormBookingStore struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db, clock: time.Now}
}

func (s *GormBookingStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải danh sách đặt phòng", err)
	}
	return bookings, nil
}

func (s *GormBookingStore) CreateBooking(ctx context.Context, payload dto.BookingPayload) (models.Booking, error) {
	now := s.clock()
	id := uuid.NewString()
	number := payload.BookingNumber
	if number == "" {
		number = GenerateBookingNumber(now, id)
	}
	booking := builders.NewBookingBuilder().
		FromPayload(payload).
		WithID(id).
		WithBookingNumber(number).
		WithTimestamps(now, now).
		Build()

	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return models.Booking{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tạo đặt phòng", err)
	}
	return booking, nil
}

func (s *GormBookingStore) UpdateBooking(ctx context.Context, id string, payload dto.BookingPayload) (models.Booking, error) {
	var existing models.Booking
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy đặt phòng", apperrors.ErrBookingNotFound)
		}
		return models.Booking{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải đặt phòng", err)
	}

	number := payload.BookingNumber
	if number == "" {
		number = existing.BookingNumber
	}
	updated := builders.NewBookingBuilder().
		FromPayload(payload).
		WithID(existing.ID).
		WithBookingNumber(number).
		WithTimestamps(existing.CreatedAt.Time, s.clock()).
		Build()

	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return models.Booking{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể cập nhật đặt phòng", err)
	}
	return updated, nil
}

func (s *GormBookingStore) DeleteBooking(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể xóa đặt phòng", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy đặt phòng", apperrors.ErrBookingNotFound)
	}
	return nil
}

// GenerateBookingNumber tạo mã dạng BK-YYMMDD-XXXX
func GenerateBookingNumber(now time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 4 {
		suffix = suffix[:4]
	}
	return "BK-" + now.Format("060102") + "-" + suffix
}

type GormCustomerStore struct {
	db *gorm.DB
}

func NewGormCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{db: db}
}

func (s *GormCustomerStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("name asc").Find(&customers).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải danh sách khách hàng", err)
	}
	return customers, nil
}

func (s *GormCustomerStore) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy khách hàng", apperrors.ErrCustomerNotFound)
		}
		return models.Customer{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải khách hàng", err)
	}
	return customer, nil
}
