package services

import (
	"context"
	"time"

	"hotelbooking/constants"
	"hotelbooking/dto"
)

const lastFiltersTTL = 30 * time.Minute

func SaveLastFilters(ctx context.Context, cache Cache, sessionID string, filters dto.LastFilters) error {
	return cache.Set(ctx, constants.LastFiltersPrefix+sessionID, filters, lastFiltersTTL)
}

// GetLastFilters found=false khi session chưa lưu bộ lọc nào
func GetLastFilters(ctx context.Context, cache Cache, sessionID string) (dto.LastFilters, bool, error) {
	var filters dto.LastFilters
	found, err := cache.Get(ctx, constants.LastFiltersPrefix+sessionID, &filters)
	if err != nil || !found {
		return dto.LastFilters{}, false, err
	}
	return filters, true, nil
}

func ClearLastFilters(ctx context.Context, cache Cache, sessionID string) error {
	return cache.Delete(ctx, constants.LastFiltersPrefix+sessionID)
}

// MergeFilters áp patch lên bộ lọc cũ. Chọn chế độ ngày khác "custom" thì bỏ khoảng ngày cũ.
func MergeFilters(old dto.BookingFilters, patch dto.FilterPatch) dto.BookingFilters {
	merged := old
	applyPatch(&merged.Status, patch.Status)
	applyPatch(&merged.City, patch.City)
	applyPatch(&merged.RoomType, patch.RoomType)
	applyPatch(&merged.DateRange, patch.DateRange)
	applyPatch(&merged.StartDate, patch.StartDate)
	applyPatch(&merged.EndDate, patch.EndDate)

	if patch.DateRange != nil && *patch.DateRange != constants.DateRangeCustom {
		merged.StartDate = ""
		merged.EndDate = ""
	}
	return merged
}

func applyPatch(dst *string, val *string) {
	if val != nil {
		*dst = *val
	}
}
