package utils

import (
	"testing"
	"time"

	"hotelbooking/models"
)

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "0 ₫",
		950:       "950 ₫",
		1000:      "1.000 ₫",
		1500000:   "1.500.000 ₫",
		-25000:    "-25.000 ₫",
		1234567.6: "1.234.568 ₫",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(models.Instant{}); got != "-" {
		t.Errorf("zero instant = %q, want -", got)
	}
	d := models.NewInstant(time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC))
	if got := FormatDate(d); got != "09/03/2024" {
		t.Errorf("FormatDate = %q", got)
	}
}
