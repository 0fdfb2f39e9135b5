package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cantina-feedback/logger"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go-simpler.org/env"
)

const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourcePostgres = "postgres"
)

type Config struct {
	Port      string `env:"PORT" default:"8084"`
	UsagePort string `env:"USAGE_PORT" default:"8085"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFile   string `env:"LOG_FILE"`

	DatasetSource string `env:"DATASET_SOURCE" default:"embedded"`
	DatasetDir    string `env:"DATASET_DIR"`

	DBHost     string `env:"DB_HOST" default:"localhost"`
	DBPort     string `env:"DB_PORT" default:"5432"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`

	RedisHost  string        `env:"REDIS_HOST"`
	RedisPort  string        `env:"REDIS_PORT" default:"6379"`
	SessionTTL time.Duration `env:"SESSION_TTL" default:"24h"`

	KafkaBroker  string `env:"KAFKA_BROKER"`
	KafkaTopic   string `env:"KAFKA_TOPIC" default:"dashboard-selections"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" default:"usage-svc"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

// Load reads an optional .env file and then the process environment. Each
// service runs its own Validate method on the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug().Msg("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return &cfg, nil
}

// ValidateDashboard checks the dataset source and session settings.
func (c *Config) ValidateDashboard() error {
	switch c.DatasetSource {
	case SourceEmbedded:
	case SourceDir:
		if c.DatasetDir == "" {
			return fmt.Errorf("DATASET_DIR is required when DATASET_SOURCE=%s", SourceDir)
		}
	case SourcePostgres:
		if c.DBName == "" || c.DBUser == "" {
			return fmt.Errorf("DB_NAME and DB_USER are required when DATASET_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.DatasetSource)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// ValidateUsage checks what the usage service cannot run without.
func (c *Config) ValidateUsage() error {
	if !c.RedisEnabled() || !c.KafkaEnabled() {
		return fmt.Errorf("REDIS_HOST and KAFKA_BROKER are required")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) UsageAddr() string {
	return ":" + c.UsagePort
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

func MustInitPostgres(cfg *Config) *sql.DB {
	log := logger.Get()

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Get().Fatal().Err(err).Str("addr", cfg.RedisAddr()).Msg("failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.Hash{},
	}
}
