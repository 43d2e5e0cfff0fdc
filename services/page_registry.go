package services

import (
	"context"
	"sync"
	"time"

	"hotelbooking/services/logger"
)

// PageRegistry giữ một BookingPage cho mỗi session, tạo khi cần và dọn khi lâu không dùng.
type PageRegistry struct {
	mu      sync.Mutex
	pages   map[string]*BookingPage
	deps    PageDeps
	cache   Cache
	idleTTL time.Duration
	logger  logger.Logger
}

func NewPageRegistry(deps PageDeps, cache Cache, idleTTL time.Duration) *PageRegistry {
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &PageRegistry{
		pages:   make(map[string]*BookingPage),
		deps:    deps,
		cache:   cache,
		idleTTL: idleTTL,
		logger:  log,
	}
}

// Get trả về trang của session; trang mới được khôi phục bộ lọc đã lưu.
// Get không tải dữ liệu, người gọi tự Load khi !Loaded().
func (r *PageRegistry) Get(ctx context.Context, sessionID string) *BookingPage {
	r.mu.Lock()
	page, ok := r.pages[sessionID]
	if !ok {
		page = NewBookingPage(sessionID, r.deps)
		r.pages[sessionID] = page
		activePages.Set(float64(len(r.pages)))
	}
	r.mu.Unlock()

	if ok {
		return page
	}

	if r.cache != nil {
		saved, found, err := GetLastFilters(ctx, r.cache, sessionID)
		if err != nil {
			r.logger.Error("Không thể đọc bộ lọc đã lưu của session %s: %v", sessionID, err)
		}
		if found {
			page.RestoreFilters(saved)
		}
	}
	return page
}

// Remember lưu trạng thái tìm kiếm hiện tại của trang
func (r *PageRegistry) Remember(ctx context.Context, sessionID string, page *BookingPage) {
	if r.cache == nil {
		return
	}
	if err := SaveLastFilters(ctx, r.cache, sessionID, page.LastFilters()); err != nil {
		r.logger.Error("Không thể lưu bộ lọc của session %s: %v", sessionID, err)
	}
}

// Forget xóa bộ lọc đã lưu của session
func (r *PageRegistry) Forget(ctx context.Context, sessionID string) {
	if r.cache == nil {
		return
	}
	if err := ClearLastFilters(ctx, r.cache, sessionID); err != nil {
		r.logger.Error("Không thể xóa bộ lọc của session %s: %v", sessionID, err)
	}
}

// Sweep bỏ các trang không dùng quá idleTTL, trả về số trang đã bỏ
func (r *PageRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, page := range r.pages {
		if now.Sub(page.LastUsed()) > r.idleTTL {
			delete(r.pages, id)
			removed++
		}
	}
	activePages.Set(float64(len(r.pages)))
	if removed > 0 {
		r.logger.Info("Đã dọn %d trang đặt phòng không hoạt động", removed)
	}
	return removed
}

func (r *PageRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}
