package commands

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/models"
)

// BookingWriter phần ghi của data service mà các command cần
type BookingWriter interface {
	CreateBooking(ctx context.Context, payload dto.BookingPayload) (models.Booking, error)
	UpdateBooking(ctx context.Context, id string, payload dto.BookingPayload) (models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand command để tạo booking mới
type CreateBookingCommand struct {
	store   BookingWriter
	payload dto.BookingPayload
	Result  models.Booking
}

func NewCreateBookingCommand(store BookingWriter, payload dto.BookingPayload) *CreateBookingCommand {
	return &CreateBookingCommand{
		store:   store,
		payload: payload,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	booking, err := c.store.CreateBooking(ctx, c.payload)
	if err != nil {
		return err
	}
	c.Result = booking
	return nil
}

// UpdateBookingCommand command để cập nhật booking
type UpdateBookingCommand struct {
	store   BookingWriter
	id      string
	payload dto.BookingPayload
	Result  models.Booking
}

func NewUpdateBookingCommand(store BookingWriter, id string, payload dto.BookingPayload) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		store:   store,
		id:      id,
		payload: payload,
	}
}

func (c *UpdateBookingCommand) Execute(ctx context.Context) error {
	booking, err := c.store.UpdateBooking(ctx, c.id, c.payload)
	if err != nil {
		return err
	}
	c.Result = booking
	return nil
}

// DeleteBookingCommand command để xóa booking
type DeleteBookingCommand struct {
	store BookingWriter
	id    string
}

func NewDeleteBookingCommand(store BookingWriter, id string) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		store: store,
		id:    id,
	}
}

func (c *DeleteBookingCommand) Execute(ctx context.Context) error {
	return c.store.DeleteBooking(ctx, c.id)
}
