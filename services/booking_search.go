package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/goccy/go-json"

	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/services/logger"
)

// SearchIndexer giữ bản sao danh sách đặt phòng trên công cụ tìm kiếm
type SearchIndexer interface {
	IndexBooking(ctx context.Context, booking models.Booking) error
	RemoveBooking(ctx context.Context, id string) error
	Reindex(ctx context.Context, bookings []models.Booking) error
}

type ElasticConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

type ElasticIndexer struct {
	es    *elasticsearch.Client
	index string
}

func NewElasticIndexer(cfg ElasticConfig) (*ElasticIndexer, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối Elasticsearch: %w", err)
	}
	return &ElasticIndexer{es: es, index: cfg.Index}, nil
}

func (e *ElasticIndexer) IndexBooking(ctx context.Context, booking models.Booking) error {
	res, err := e.es.Index(
		e.index,
		esutil.NewJSONReader(booking),
		e.es.Index.WithDocumentID(booking.ID),
		e.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index booking %s: %w", booking.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index booking %s: %s", booking.ID, res.Status())
	}
	return nil
}

// RemoveBooking xóa document; document không tồn tại không tính là lỗi
func (e *ElasticIndexer) RemoveBooking(ctx context.Context, id string) error {
	res, err := e.es.Delete(e.index, id, e.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete booking %s: %s", id, res.Status())
	}
	return nil
}

// Reindex ghi lại toàn bộ danh sách bằng bulk API
func (e *ElasticIndexer) Reindex(ctx context.Context, bookings []models.Booking) error {
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{Client: e.es, Index: e.index})
	if err != nil {
		return err
	}
	for _, b := range bookings {
		body, err := json.Marshal(b)
		if err != nil {
			return err
		}
		if err := bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: b.ID,
			Body:       bytes.NewReader(body),
		}); err != nil {
			return err
		}
	}
	if err := bi.Close(ctx); err != nil {
		return err
	}
	if failed := bi.Stats().NumFailed; failed > 0 {
		return fmt.Errorf("reindex: %d booking lỗi", failed)
	}
	return nil
}

// IndexingBookingStore đồng bộ mỗi lần ghi thành công sang SearchIndexer.
// Lỗi đồng bộ chỉ được ghi log, không làm hỏng thao tác chính.
type IndexingBookingStore struct {
	next    BookingStore
	indexer SearchIndexer
	logger  logger.Logger
}

func NewIndexingBookingStore(next BookingStore, indexer SearchIndexer, log logger.Logger) *IndexingBookingStore {
	if log == nil {
		log = logger.Nop{}
	}
	return &IndexingBookingStore{next: next, indexer: indexer, logger: log}
}

func (s *IndexingBookingStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.next.ListBookings(ctx)
}

func (s *IndexingBookingStore) CreateBooking(ctx context.Context, payload dto.BookingPayload) (models.Booking, error) {
	booking, err := s.next.CreateBooking(ctx, payload)
	if err == nil {
		s.index(ctx, booking)
	}
	return booking, err
}

func (s *IndexingBookingStore) UpdateBooking(ctx context.Context, id string, payload dto.BookingPayload) (models.Booking, error) {
	booking, err := s.next.UpdateBooking(ctx, id, payload)
	if err == nil {
		s.index(ctx, booking)
	}
	return booking, err
}

func (s *IndexingBookingStore) DeleteBooking(ctx context.Context, id string) error {
	err := s.next.DeleteBooking(ctx, id)
	if err == nil {
		if ierr := s.indexer.RemoveBooking(ctx, id); ierr != nil {
			s.logger.Error("Không thể xóa booking %s khỏi chỉ mục tìm kiếm: %v", id, ierr)
		}
	}
	return err
}

// Reindex tải lại danh sách từ store và ghi đè chỉ mục
func (s *IndexingBookingStore) Reindex(ctx context.Context) error {
	bookings, err := s.next.ListBookings(ctx)
	if err != nil {
		return err
	}
	if err := s.indexer.Reindex(ctx, bookings); err != nil {
		return err
	}
	s.logger.Info("Đã đồng bộ %d booking sang chỉ mục tìm kiếm", len(bookings))
	return nil
}

func (s *IndexingBookingStore) index(ctx context.Context, booking models.Booking) {
	if err := s.indexer.IndexBooking(ctx, booking); err != nil {
		s.logger.Error("Không thể đồng bộ booking %s sang chỉ mục tìm kiếm: %v", booking.ID, err)
	}
}
