package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранилища снимков
const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var (
	// ErrUnknownDriver неизвестный драйвер хранилища
	ErrUnknownDriver = errors.New("unknown storage driver")
	// ErrMissingDSN для драйвера не задана строка подключения
	ErrMissingDSN = errors.New("storage dsn is required")
)

// Config параметры сервера. Значения по умолчанию берутся из окружения
// (и файла .env), флаги командной строки их переопределяют.
type Config struct {
	Addr           string
	StaticDir      string
	StorageDriver  string
	StorageDSN     string // StorageDSN путь к sqlite файлу, адрес redis или DSN postgres
	RedisPassword  string
	SessionSecret  string
	LogLevel       string
	JaegerEndpoint string

	RedisDB int

	SaveDebounce      time.Duration
	StrokeIdleTimeout time.Duration
	RoomIdleTTL       time.Duration
	SessionTTL        time.Duration
	ShutdownTimeout   time.Duration

	// Лимит попыток подключения к /ws с одного IP
	RateLimit       int
	RateLimitWindow time.Duration

	ShowVersion bool
}

// Load читает .env (если есть), окружение и флаги из args.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("gophdraw-server", flag.ContinueOnError)

	cfg := &Config{}
	fs.StringVar(&cfg.Addr, "addr", getEnv("GOPHDRAW_ADDR", ":8080"), "HTTP listen address")
	fs.StringVar(&cfg.StaticDir, "static", getEnv("GOPHDRAW_STATIC_DIR", "./web"), "Directory with the web client")
	fs.StringVar(&cfg.StorageDriver, "storage", getEnv("GOPHDRAW_STORAGE", DriverSQLite), "Snapshot storage: sqlite, redis or postgres")
	fs.StringVar(&cfg.StorageDSN, "dsn", getEnv("GOPHDRAW_DSN", "gophdraw.db"), "Storage DSN: sqlite path, redis address or postgres connection string")
	fs.StringVar(&cfg.RedisPassword, "redis-password", getEnv("GOPHDRAW_REDIS_PASSWORD", ""), "Redis password")
	fs.IntVar(&cfg.RedisDB, "redis-db", getEnvInt("GOPHDRAW_REDIS_DB", 0), "Redis database number")
	fs.DurationVar(&cfg.SaveDebounce, "save-debounce", getEnvDuration("GOPHDRAW_SAVE_DEBOUNCE", 300*time.Millisecond), "Delay before a room snapshot is persisted")
	fs.DurationVar(&cfg.StrokeIdleTimeout, "stroke-idle-timeout", getEnvDuration("GOPHDRAW_STROKE_IDLE_TIMEOUT", 30*time.Second), "Age after which an unfinished stroke is dropped")
	fs.DurationVar(&cfg.RoomIdleTTL, "room-idle-ttl", getEnvDuration("GOPHDRAW_ROOM_IDLE_TTL", 0), "Unload rooms empty for this long (0 keeps them)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", getEnv("GOPHDRAW_SESSION_SECRET", ""), "HMAC secret for resume tokens (random if empty)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", getEnvDuration("GOPHDRAW_SESSION_TTL", 24*time.Hour), "Resume token lifetime")
	fs.IntVar(&cfg.RateLimit, "rate-limit", getEnvInt("GOPHDRAW_RATE_LIMIT", 30), "WebSocket connection attempts per IP per window")
	fs.DurationVar(&cfg.RateLimitWindow, "rate-window", getEnvDuration("GOPHDRAW_RATE_WINDOW", time.Minute), "Rate limit window")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("GOPHDRAW_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.JaegerEndpoint, "jaeger", getEnv("JAEGER_ENDPOINT", ""), "Jaeger collector endpoint (tracing disabled if empty)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", getEnvDuration("GOPHDRAW_SHUTDOWN_TIMEOUT", 10*time.Second), "Graceful shutdown timeout")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.StorageDriver)
	}

	if c.StorageDSN == "" {
		return fmt.Errorf("%w for %s", ErrMissingDSN, c.StorageDriver)
	}

	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		return errors.New("rate limit and window must be positive")
	}

	return nil
}

// SlogLevel возвращает уровень логирования; неизвестное значение дает info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return defaultValue
}
