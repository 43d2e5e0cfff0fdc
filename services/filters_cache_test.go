package services

import (
	"context"
	"testing"

	"hotelbooking/dto"
)

func str(s string) *string { return &s }

func TestMergeFilters(t *testing.T) {
	old := dto.BookingFilters{Status: "confirmed", DateRange: "custom", City: "Huế", RoomType: "suite", StartDate: "2024-03-01", EndDate: "2024-03-31"}

	got := MergeFilters(old, dto.FilterPatch{City: str("Hà Nội")})
	want := old
	want.City = "Hà Nội"
	if got != want {
		t.Errorf("partial merge = %+v, want %+v", got, want)
	}

	got = MergeFilters(old, dto.FilterPatch{DateRange: str("week")})
	if got.DateRange != "week" || got.StartDate != "" || got.EndDate != "" {
		t.Errorf("switching away from custom should drop bounds: %+v", got)
	}
	if got.Status != "confirmed" || got.RoomType != "suite" {
		t.Errorf("other filters lost: %+v", got)
	}

	got = MergeFilters(old, dto.FilterPatch{StartDate: str("2024-03-05")})
	if got.DateRange != "custom" || got.StartDate != "2024-03-05" || got.EndDate != "2024-03-31" {
		t.Errorf("custom bound merge = %+v", got)
	}
}

func TestMergeFiltersClearsSingleBound(t *testing.T) {
	old := dto.BookingFilters{DateRange: "custom", StartDate: "2024-03-01", EndDate: "2024-03-31"}

	got := MergeFilters(old, dto.FilterPatch{EndDate: str("")})
	if got.DateRange != "custom" || got.StartDate != "2024-03-01" || got.EndDate != "" {
		t.Errorf("clearing endDate = %+v", got)
	}

	got = MergeFilters(old, dto.FilterPatch{DateRange: str("custom"), StartDate: str("")})
	if got.StartDate != "" || got.EndDate != "2024-03-31" {
		t.Errorf("clearing startDate = %+v", got)
	}

	if got := MergeFilters(old, dto.FilterPatch{}); got != old {
		t.Errorf("empty patch changed filters: %+v", got)
	}
}

func TestLastFiltersRoundTripThroughCache(t *testing.T) {
	cache := newFakeCache()
	ctx := context.Background()

	if _, found, err := GetLastFilters(ctx, cache, "s1"); found || err != nil {
		t.Fatalf("empty cache found=%v err=%v", found, err)
	}
	saved := dto.LastFilters{Search: "an", Filters: dto.DefaultBookingFilters(), SortField: "checkIn", SortDir: "asc"}
	if err := SaveLastFilters(ctx, cache, "s1", saved); err != nil {
		t.Fatal(err)
	}
	got, found, err := GetLastFilters(ctx, cache, "s1")
	if err != nil || !found || got != saved {
		t.Fatalf("got %+v found=%v err=%v", got, found, err)
	}
	if err := ClearLastFilters(ctx, cache, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := GetLastFilters(ctx, cache, "s1"); found {
		t.Error("filters should be cleared")
	}
}
