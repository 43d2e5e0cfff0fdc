package middleware

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotelbooking/constants"
	"hotelbooking/response"
)

const (
	idempotencyHeader  = "Idempotency-Key"
	idempotencyLockTTL = 10 * time.Second
	idempotencyTTL     = 24 * time.Hour
	processingMarker   = "PROCESSING"
)

// KeyStore phần Redis mà Idempotency cần
type KeyStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisKeyStore struct {
	rdb *redis.Client
}

func NewRedisKeyStore(rdb *redis.Client) *RedisKeyStore {
	return &RedisKeyStore{rdb: rdb}
}

func (s *RedisKeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKeyStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, value, ttl).Result()
}

func (s *RedisKeyStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisKeyStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency chống xử lý lặp các request ghi có header Idempotency-Key.
// Response thành công được lưu lại và trả lại nguyên văn cho các lần gửi sau.
func Idempotency(store KeyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		idemKey := constants.IdempotencyPrefix + SessionID(c) + ":" + key
		ctx := c.Request.Context()

		val, found, err := store.Get(ctx, idemKey)
		if err != nil {
			// Redis lỗi thì xử lý như request bình thường
			c.Next()
			return
		}
		if found {
			if val == processingMarker {
				response.Conflict(c, "Yêu cầu đang được xử lý")
				c.Abort()
				return
			}
			status, body := decodeStored(val)
			c.Header("X-Idempotency-Hit", "true")
			c.Data(status, "application/json; charset=utf-8", []byte(body))
			c.Abort()
			return
		}

		acquired, err := store.SetNX(ctx, idemKey, processingMarker, idempotencyLockTTL)
		if err != nil || !acquired {
			response.Conflict(c, "Yêu cầu đang được xử lý")
			c.Abort()
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() >= http.StatusBadRequest {
			_ = store.Delete(ctx, idemKey)
			return
		}
		_ = store.Set(ctx, idemKey, strconv.Itoa(writer.Status())+"\n"+writer.body.String(), idempotencyTTL)
	}
}

// decodeStored tách "status\nbody" đã lưu
func decodeStored(val string) (int, string) {
	head, body, ok := strings.Cut(val, "\n")
	if !ok {
		return http.StatusOK, val
	}
	status, err := strconv.Atoi(head)
	if err != nil {
		return http.StatusOK, val
	}
	return status, body
}
