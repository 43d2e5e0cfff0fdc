package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// OpenLogFile mở (hoặc tạo) file log theo ngày trong thư mục dir.
// dir rỗng thì ghi ra stdout.
func OpenLogFile(dir string, now time.Time) (io.Writer, func() error, error) {
	if dir == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", now.Format("2006-01-02")))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return io.MultiWriter(os.Stdout, logFile), logFile.Close, nil
}
