package validator

import (
	"testing"

	"hotelbooking/dto"
)

func validForm() dto.BookingForm {
	return dto.BookingForm{
		CustomerID:    "cus-1",
		HotelName:     "Sunrise Hotel",
		City:          "Da Nang",
		Country:       "Vietnam",
		CheckIn:       "2024-01-01",
		CheckOut:      "2024-01-03",
		RoomType:      "deluxe",
		Rooms:         "2",
		Adults:        "2",
		Children:      "1",
		MealPlan:      "halfBoard",
		TotalAmount:   "100",
		PaidAmount:    "40",
		PaymentMethod: "card",
		Status:        "confirmed",
	}
}

func TestValidFormHasNoErrors(t *testing.T) {
	if errs := ValidateBookingForm(validForm()); !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRequiredFields(t *testing.T) {
	errs := ValidateBookingForm(dto.BookingForm{})
	for _, field := range []string{"customerId", "hotelName", "city", "checkIn", "checkOut", "totalAmount"} {
		if !errs.Has(field) {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
	if errs.Has("paidAmount") {
		t.Fatalf("paid amount is optional, got %v", errs)
	}
}

func TestDateRules(t *testing.T) {
	form := validForm()
	form.CheckIn = "not-a-date"
	if errs := ValidateBookingForm(form); errs["checkIn"] != MsgCheckInInvalid {
		t.Fatalf("expected invalid check-in, got %v", errs)
	}

	form = validForm()
	form.CheckOut = form.CheckIn
	if errs := ValidateBookingForm(form); errs["checkOut"] != MsgCheckOutBeforeIn {
		t.Fatalf("expected check-out after check-in error, got %v", errs)
	}

	form = validForm()
	form.CheckOut = "2023-12-31"
	if errs := ValidateBookingForm(form); !errs.Has("checkOut") {
		t.Fatalf("expected check-out error, got %v", errs)
	}
}

func TestTotalAmountMustBePositive(t *testing.T) {
	for _, raw := range []dto.FormValue{"0", "-5", "abc"} {
		form := validForm()
		form.TotalAmount = raw
		form.PaidAmount = ""
		if errs := ValidateBookingForm(form); errs["totalAmount"] != MsgTotalInvalid {
			t.Fatalf("total %q: expected invalid total, got %v", raw, errs)
		}
	}
}

func TestPaidAmountAgainstTotal(t *testing.T) {
	form := validForm()
	form.TotalAmount = "100"
	form.PaidAmount = "150"
	if errs := ValidateBookingForm(form); errs["paidAmount"] != MsgPaidExceedsTotal {
		t.Fatalf("expected paid amount error, got %v", errs)
	}

	form.PaidAmount = "100"
	if errs := ValidateBookingForm(form); !errs.Empty() {
		t.Fatalf("expected paid == total to pass, got %v", errs)
	}

	form.PaidAmount = "-1"
	if errs := ValidateBookingForm(form); errs["paidAmount"] != MsgPaidInvalid {
		t.Fatalf("expected negative paid error, got %v", errs)
	}
}

func TestNormalizeComputesNightsAndCoercesNumbers(t *testing.T) {
	payload, errs := NormalizeBookingForm(validForm())
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if payload.Nights != 2 {
		t.Fatalf("expected 2 nights, got %d", payload.Nights)
	}
	if payload.Rooms != 2 || payload.Adults != 2 || payload.Children != 1 {
		t.Fatalf("unexpected occupancy %+v", payload)
	}
	if payload.TotalAmount != 100 || payload.PaidAmount != 40 {
		t.Fatalf("unexpected amounts %+v", payload)
	}
}

func TestNormalizeRoundsPartialDaysUp(t *testing.T) {
	form := validForm()
	form.CheckIn = "2024-01-01T14:00:00+07:00"
	form.CheckOut = "2024-01-03T12:00:00+07:00"
	payload, errs := NormalizeBookingForm(form)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if payload.Nights != 2 {
		t.Fatalf("expected 2 nights, got %d", payload.Nights)
	}
}

func TestNormalizeAppliesDefaultsAndEnumRules(t *testing.T) {
	form := validForm()
	form.RoomType = ""
	form.MealPlan = ""
	form.PaymentMethod = ""
	form.Status = ""
	form.Rooms = ""
	payload, errs := NormalizeBookingForm(form)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if payload.RoomType != "standard" || payload.MealPlan != "breakfast" || payload.PaymentMethod != "cash" || payload.Status != "pending" || payload.Rooms != 1 {
		t.Fatalf("unexpected defaults %+v", payload)
	}

	form = validForm()
	form.RoomType = "penthouse"
	form.Children = "9"
	_, errs = NormalizeBookingForm(form)
	if errs["roomType"] != MsgValueNotInEnumList || errs["children"] != MsgValueOutOfRange {
		t.Fatalf("expected enum and range errors, got %v", errs)
	}
}
