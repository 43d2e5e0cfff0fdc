package models

import (
	"time"

	"github.com/lib/pq"
)

// Staff nhân viên được phép đăng nhập trang quản trị
type Staff struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string         `json:"name"`
	Email       string         `gorm:"unique" json:"email"`
	Password    string         `json:"-"`
	Permissions pq.StringArray `gorm:"type:text[]" json:"permissions"`
	Active      bool           `gorm:"default:true" json:"active"`
}

// HasPermission kiểm tra quyền của nhân viên
func (s Staff) HasPermission(permission string) bool {
	for _, p := range s.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
