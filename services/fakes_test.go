package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

var errStoreDown = errors.New("store unavailable")

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	nextID   int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls int
	created   []dto.BookingPayload
	updated   map[string]dto.BookingPayload
	deleted   []string
}

func newFakeBookingStore(bookings ...models.Booking) *fakeBookingStore {
	return &fakeBookingStore{bookings: bookings, updated: map[string]dto.BookingPayload{}}
}

func (s *fakeBookingStore) ListBookings(context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *fakeBookingStore) CreateBooking(_ context.Context, payload dto.BookingPayload) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return models.Booking{}, s.createErr
	}
	s.nextID++
	s.created = append(s.created, payload)
	b := bookingFromPayload(fmt.Sprintf("new-%d", s.nextID), payload)
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *fakeBookingStore) UpdateBooking(_ context.Context, id string, payload dto.BookingPayload) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return models.Booking{}, s.updateErr
	}
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.updated[id] = payload
			b := bookingFromPayload(id, payload)
			s.bookings[i] = b
			return b, nil
		}
	}
	return models.Booking{}, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy đặt phòng", apperrors.ErrBookingNotFound)
}

func (s *fakeBookingStore) DeleteBooking(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func bookingFromPayload(id string, p dto.BookingPayload) models.Booking {
	return models.Booking{
		ID:            id,
		BookingNumber: p.BookingNumber,
		CustomerID:    p.CustomerID,
		CustomerName:  p.CustomerName,
		HotelName:     p.HotelName,
		City:          p.City,
		Country:       p.Country,
		CheckIn:       p.CheckIn,
		CheckOut:      p.CheckOut,
		Nights:        p.Nights,
		RoomType:      p.RoomType,
		Rooms:         p.Rooms,
		Adults:        p.Adults,
		Children:      p.Children,
		MealPlan:      p.MealPlan,
		TotalAmount:   p.TotalAmount,
		PaidAmount:    p.PaidAmount,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
	}
}

type fakeCustomerStore struct {
	customers []models.Customer
	listErr   error
	getErr    error
}

func (s *fakeCustomerStore) ListCustomers(context.Context) ([]models.Customer, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.customers, nil
}

func (s *fakeCustomerStore) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	if s.getErr != nil {
		return models.Customer{}, s.getErr
	}
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy khách hàng", apperrors.ErrCustomerNotFound)
}

// fakeCache cache trong bộ nhớ, lưu bản JSON giống Redis
type fakeCache struct {
	mu     sync.Mutex
	values map[string][]byte
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string, target interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}
