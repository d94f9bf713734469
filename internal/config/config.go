package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Ledger   LedgerConfig
	Worker   WorkerConfig
	Log      LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RateLimit       int           `env:"SERVER_RATE_LIMIT" envDefault:"60"`
	RateWindow      time.Duration `env:"SERVER_RATE_WINDOW" envDefault:"1m"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"shells"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	TxMaxRetries    int           `env:"DB_TX_MAX_RETRIES" envDefault:"3"`
}

// URL is the postgres connection string shared by the pool and the migrator.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// An empty Addr disables the limiter.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}
type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL          time.Duration `env:"JWT_TOKEN_TTL" envDefault:"12h"`
	AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	// Shared secret the payment provider sends in X-Webhook-Secret. Empty rejects every callback.
	WebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
}
type LedgerConfig struct {
	RewardMin         int64 `env:"REWARD_MIN" envDefault:"1000"`
	RewardMax         int64 `env:"REWARD_MAX" envDefault:"1000000"`
	WelcomeBonus      int64 `env:"WELCOME_BONUS" envDefault:"500"`
	ReferralBonus     int64 `env:"REFERRAL_BONUS" envDefault:"0"`
	TapMaxPerCall     int   `env:"TAP_MAX_PER_CALL" envDefault:"500"`
	TicketMaxQuantity int   `env:"TICKET_MAX_QUANTITY" envDefault:"10"`
}
type WorkerConfig struct {
	ExpiryInterval    time.Duration `env:"WORKER_EXPIRY_INTERVAL" envDefault:"1m"`
	PendingSweepSpec  string        `env:"WORKER_PENDING_SWEEP_SPEC" envDefault:"@every 10m"`
	PendingPaymentTTL time.Duration `env:"WORKER_PENDING_PAYMENT_TTL" envDefault:"24h"`
}
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Ledger.RewardMin <= 0 || c.Ledger.RewardMax < c.Ledger.RewardMin {
		return fmt.Errorf("invalid reward range [%d, %d]", c.Ledger.RewardMin, c.Ledger.RewardMax)
	}
	if c.Ledger.WelcomeBonus < 0 || c.Ledger.ReferralBonus < 0 {
		return errors.New("bonuses must not be negative")
	}
	if c.Ledger.TapMaxPerCall <= 0 || c.Ledger.TicketMaxQuantity <= 0 {
		return errors.New("TAP_MAX_PER_CALL and TICKET_MAX_QUANTITY must be positive")
	}
	if c.Database.TxMaxRetries < 1 {
		return errors.New("DB_TX_MAX_RETRIES must be at least 1")
	}
	if c.Worker.ExpiryInterval <= 0 {
		return errors.New("WORKER_EXPIRY_INTERVAL must be positive")
	}
	return nil
}
