package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App      `yaml:"app"`
	Log      Log      `yaml:"log"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Kafka    Kafka    `yaml:"kafka"`
	Elastic  Elastic  `yaml:"elastic"`
	JWT      JWT      `yaml:"jwt"`
	Booking  Booking  `yaml:"booking"`
}

type App struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"hotel-booking-admin"`
	Env  string `yaml:"env" env:"ENV" env-default:"dev"`
	Port string `yaml:"port" env:"PORT" env-default:"8083"`
}

type Log struct {
	Level     string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format    string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	Dir       string `yaml:"dir" env:"LOG_DIR"`
	AddSource bool   `yaml:"add_source" env:"LOG_ADD_SOURCE" env-default:"false"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"hotel_booking"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"username" env:"REDIS_USER"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"booking-events"`
}

type Elastic struct {
	Enabled   bool     `yaml:"enabled" env:"ELASTIC_ENABLED" env-default:"false"`
	Addresses []string `yaml:"addresses" env:"ELASTIC_ADDRESSES" env-default:"http://localhost:9200"`
	Username  string   `yaml:"username" env:"ELASTIC_USERNAME"`
	Password  string   `yaml:"password" env:"ELASTIC_PASSWORD"`
	Index     string   `yaml:"index" env:"ELASTIC_INDEX" env-default:"bookings"`
}

type JWT struct {
	Secret string        `yaml:"secret" env:"SECRET_KEY_ACCESS_TOKEN" env-required:"true"`
	TTL    time.Duration `yaml:"ttl" env:"ACCESS_TOKEN_TTL" env-default:"72h"`
}

type Booking struct {
	Timezone    string        `yaml:"timezone" env:"BOOKING_TIMEZONE" env-default:"Asia/Ho_Chi_Minh"`
	WeekStart   string        `yaml:"week_start" env:"BOOKING_WEEK_START" env-default:"sunday"`
	PageIdleTTL time.Duration `yaml:"page_idle_ttl" env:"BOOKING_PAGE_IDLE_TTL" env-default:"30m"`
}

// Location múi giờ dùng cho các mốc ngày của bộ lọc
func (b Booking) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

// WeekStartDay ngày đầu tuần của chế độ lọc "week"
func (b Booking) WeekStartDay() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(b.WeekStart)) {
	case "", "sunday", "sun", "0":
		return time.Sunday, nil
	case "monday", "mon", "1":
		return time.Monday, nil
	case "saturday", "sat", "6":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("invalid week start %q", b.WeekStart)
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// Load đọc config.yaml nếu có, biến môi trường luôn được ưu tiên
func Load(path string) (*Config, error) {
	LoadEnv()

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
