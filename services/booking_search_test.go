package services

import (
	"context"
	"errors"
	"testing"

	"hotelbooking/dto"
	"hotelbooking/models"
)

func validPayload() dto.BookingPayload {
	return dto.PayloadFromBooking(pageBooking("tmp", "Đà Lạt", models.BookingStatusPending, 500))
}

type fakeIndexer struct {
	indexed   []string
	removed   []string
	reindexed []models.Booking
	err       error
}

func (f *fakeIndexer) IndexBooking(_ context.Context, b models.Booking) error {
	f.indexed = append(f.indexed, b.ID)
	return f.err
}

func (f *fakeIndexer) RemoveBooking(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeIndexer) Reindex(_ context.Context, bookings []models.Booking) error {
	f.reindexed = bookings
	return f.err
}

func TestIndexingBookingStore_MirrorsWrites(t *testing.T) {
	inner := newFakeBookingStore(pageBooking("b1", "Huế", models.BookingStatusPending, 100))
	idx := &fakeIndexer{}
	store := NewIndexingBookingStore(inner, idx, nil)
	ctx := context.Background()

	created, err := store.CreateBooking(ctx, validPayload())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.UpdateBooking(ctx, "b1", validPayload()); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteBooking(ctx, "b1"); err != nil {
		t.Fatal(err)
	}

	if len(idx.indexed) != 2 || idx.indexed[0] != created.ID || idx.indexed[1] != "b1" {
		t.Errorf("indexed = %v", idx.indexed)
	}
	if len(idx.removed) != 1 || idx.removed[0] != "b1" {
		t.Errorf("removed = %v", idx.removed)
	}
}

func TestIndexingBookingStore_SkipsFailedWrites(t *testing.T) {
	inner := newFakeBookingStore()
	inner.createErr = errStoreDown
	inner.deleteErr = errStoreDown
	idx := &fakeIndexer{}
	store := NewIndexingBookingStore(inner, idx, nil)

	if _, err := store.CreateBooking(context.Background(), validPayload()); !errors.Is(err, errStoreDown) {
		t.Fatalf("err = %v", err)
	}
	if err := store.DeleteBooking(context.Background(), "x"); !errors.Is(err, errStoreDown) {
		t.Fatalf("err = %v", err)
	}
	if len(idx.indexed)+len(idx.removed) != 0 {
		t.Errorf("indexer touched after failure: %+v", idx)
	}
}

func TestIndexingBookingStore_IndexErrorDoesNotFailWrite(t *testing.T) {
	idx := &fakeIndexer{err: errors.New("es down")}
	store := NewIndexingBookingStore(newFakeBookingStore(), idx, nil)

	if _, err := store.CreateBooking(context.Background(), validPayload()); err != nil {
		t.Fatalf("create should succeed, got %v", err)
	}
}

func TestIndexingBookingStore_Reindex(t *testing.T) {
	inner := newFakeBookingStore(
		pageBooking("b1", "Huế", models.BookingStatusPending, 100),
		pageBooking("b2", "Hà Nội", models.BookingStatusConfirmed, 200),
	)
	idx := &fakeIndexer{}
	store := NewIndexingBookingStore(inner, idx, nil)

	if err := store.Reindex(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(idx.reindexed) != 2 {
		t.Fatalf("reindexed = %d", len(idx.reindexed))
	}

	inner.listErr = errStoreDown
	if err := store.Reindex(context.Background()); !errors.Is(err, errStoreDown) {
		t.Errorf("err = %v", err)
	}
}
