package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, sweep times, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Sweeper SweeperConfig
	Poller  PollerConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Key of the sorted set holding pending drawing schedules
	ScheduleKey string `envconfig:"REDIS_SCHEDULE_KEY" default:"raffle:drawing:schedule"`
}

type KafkaConfig struct {
	Brokers       []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	DrawingTopic  string   `envconfig:"KAFKA_DRAWING_TOPIC" default:"drawing-execute"`
	NotifyTopic   string   `envconfig:"KAFKA_NOTIFY_TOPIC" default:"winner-notify"`
	ConsumerGroup string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"raffle-draw-workers"`
	// Wait between in-place retries of a failed drawing trigger
	RetryBackoff time.Duration `envconfig:"KAFKA_RETRY_BACKOFF" default:"5s"`
}

type SweeperConfig struct {
	// Wall-clock times (HH:MM, server local time) of the two daily sweeps.
	// Activation and closing run independently so one cannot block the other.
	ActivateAt string `envconfig:"SWEEP_ACTIVATE_AT" default:"00:05"`
	CloseAt    string `envconfig:"SWEEP_CLOSE_AT" default:"00:35"`
	PageSize   int    `envconfig:"SWEEP_PAGE_SIZE" default:"100"`
}

type PollerConfig struct {
	Interval time.Duration `envconfig:"POLLER_INTERVAL" default:"1s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addr:        "localhost:16379",
			ScheduleKey: "raffle:drawing:schedule:test",
		},
		Kafka: KafkaConfig{
			Brokers:       []string{"localhost:19092"},
			DrawingTopic:  "drawing-execute",
			NotifyTopic:   "winner-notify",
			ConsumerGroup: "raffle-draw-workers-test",
			RetryBackoff:  10 * time.Millisecond,
		},
		Sweeper: SweeperConfig{
			ActivateAt: "00:05",
			CloseAt:    "00:35",
			PageSize:   10,
		},
		Poller: PollerConfig{
			Interval: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
	}
}
