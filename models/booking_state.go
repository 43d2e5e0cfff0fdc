package models

import "errors"

var (
	ErrAlreadyConfirmed     = errors.New("booking already confirmed")
	ErrAlreadyCancelled     = errors.New("booking already cancelled")
	ErrAlreadyCompleted     = errors.New("booking already completed")
	ErrCannotCompletePend   = errors.New("cannot complete pending booking")
	ErrCannotConfirmCancel  = errors.New("cannot confirm cancelled booking")
	ErrCannotCompleteCancel = errors.New("cannot complete cancelled booking")
	ErrCannotCancelComplete = errors.New("cannot cancel completed booking")
	ErrUnknownTransition    = errors.New("unknown status transition")
)

// BookingState định nghĩa các thao tác chuyển trạng thái của booking
type BookingState interface {
	Confirm(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
}

type PendingState struct{}

func (PendingState) Confirm(b *Booking) error {
	b.Status = BookingStatusConfirmed
	return nil
}

func (PendingState) Cancel(b *Booking) error {
	b.Status = BookingStatusCancelled
	return nil
}

func (PendingState) Complete(*Booking) error { return ErrCannotCompletePend }

type ConfirmedState struct{}

func (ConfirmedState) Confirm(*Booking) error { return ErrAlreadyConfirmed }

func (ConfirmedState) Cancel(b *Booking) error {
	b.Status = BookingStatusCancelled
	return nil
}

func (ConfirmedState) Complete(b *Booking) error {
	b.Status = BookingStatusCompleted
	return nil
}

type CompletedState struct{}

func (CompletedState) Confirm(*Booking) error  { return ErrAlreadyCompleted }
func (CompletedState) Cancel(*Booking) error   { return ErrCannotCancelComplete }
func (CompletedState) Complete(*Booking) error { return ErrAlreadyCompleted }

type CancelledState struct{}

func (CancelledState) Confirm(*Booking) error  { return ErrCannotConfirmCancel }
func (CancelledState) Cancel(*Booking) error   { return ErrAlreadyCancelled }
func (CancelledState) Complete(*Booking) error { return ErrCannotCompleteCancel }

// GetBookingState trả về state tương ứng với trạng thái hiện tại
func GetBookingState(status BookingStatus) BookingState {
	switch status {
	case BookingStatusConfirmed:
		return ConfirmedState{}
	case BookingStatusCompleted:
		return CompletedState{}
	case BookingStatusCancelled:
		return CancelledState{}
	default:
		return PendingState{}
	}
}

// Transition áp dụng chuyển trạng thái tới target lên b.
func Transition(b *Booking, target BookingStatus) error {
	state := GetBookingState(b.Status)
	switch target {
	case BookingStatusConfirmed:
		return state.Confirm(b)
	case BookingStatusCancelled:
		return state.Cancel(b)
	case BookingStatusCompleted:
		return state.Complete(b)
	default:
		return ErrUnknownTransition
	}
}
