package config

import (
	"testing"
	"time"
)

func TestBookingWeekStartDay(t *testing.T) {
	cases := map[string]time.Weekday{
		"":       time.Sunday,
		"Sunday": time.Sunday,
		"monday": time.Monday,
		"1":      time.Monday,
		"sat":    time.Saturday,
	}
	for in, want := range cases {
		got, err := Booking{WeekStart: in}.WeekStartDay()
		if err != nil || got != want {
			t.Errorf("WeekStartDay(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := (Booking{WeekStart: "friday"}).WeekStartDay(); err == nil {
		t.Error("expected error for unsupported week start")
	}
}

func TestBookingLocation(t *testing.T) {
	loc, err := Booking{Timezone: "UTC"}.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v", loc, err)
	}
	if _, err := (Booking{Timezone: "Mars/Olympus"}).Location(); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "s3cret")
	t.Setenv("BOOKING_WEEK_START", "monday")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.JWT.TTL != 72*time.Hour {
		t.Errorf("JWT = %+v", cfg.JWT)
	}
	if cfg.Booking.Timezone != "Asia/Ho_Chi_Minh" || cfg.Booking.WeekStart != "monday" || cfg.Booking.PageIdleTTL != 30*time.Minute {
		t.Errorf("Booking = %+v", cfg.Booking)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("Kafka brokers = %v", cfg.Kafka.Brokers)
	}
	if got := cfg.Postgres.DSN("UTC"); got != "host=localhost user=postgres password=postgres dbname=hotel_booking port=5432 sslmode=disable TimeZone=UTC" {
		t.Errorf("DSN = %q", got)
	}
}
