package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"hotelbooking/services/logger"
)

// PageSweeper dọn các trang đặt phòng không còn dùng
type PageSweeper interface {
	Sweep(now time.Time) int
}

// CacheInvalidator xóa cache danh sách đặt phòng
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// SearchReindexer ghi lại chỉ mục tìm kiếm từ dữ liệu gốc
type SearchReindexer interface {
	Reindex(ctx context.Context) error
}

type Deps struct {
	Pages  PageSweeper
	Cache  CacheInvalidator
	Search SearchReindexer
	Logger logger.Logger
	Clock  func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Logger == nil {
		d.Logger = logger.Nop{}
	}
	return d
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, deps Deps) error {
	deps = deps.withDefaults()

	// Dọn trang không hoạt động mỗi phút
	if _, err := c.AddFunc("@every 1m", SweepPages(deps)); err != nil {
		return err
	}

	// Cron job chạy lúc 0h mỗi ngày: làm mới danh sách cho ngày mới
	if deps.Cache != nil {
		if _, err := c.AddFunc("0 0 * * *", InvalidateBookings(deps)); err != nil {
			return err
		}
	}

	if deps.Search != nil {
		if _, err := c.AddFunc("30 0 * * *", ReindexSearch(deps)); err != nil {
			return err
		}
	}

	c.Start()
	deps.Logger.Info("Cron jobs initialized successfully")
	return nil
}

func SweepPages(deps Deps) func() {
	return func() {
		removed := deps.Pages.Sweep(deps.Clock())
		deps.Logger.Debug("Dọn trang không hoạt động: %d", removed)
	}
}

func InvalidateBookings(deps Deps) func() {
	return func() {
		deps.Logger.Info("Đang làm mới cache đặt phòng lúc: %v", deps.Clock())
		deps.Cache.Invalidate(context.Background())
	}
}

func ReindexSearch(deps Deps) func() {
	return func() {
		if err := deps.Search.Reindex(context.Background()); err != nil {
			deps.Logger.Error("Đồng bộ chỉ mục tìm kiếm thất bại: %v", err)
		}
	}
}
