package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents an app config.
type Config struct {
	Telegram Telegram
	Fixer    Fixer
	Currency Currency
	Metrics  Metrics
	Logger   Logger
}

// Telegram represents a telegram bot configuration.
type Telegram struct {
	BotToken     string `env:"BOT_TOKEN"`
	UpdatesType  string `env:"TELEGRAM_UPDATES_TYPE" env-default:"polling"`
	WebhookURL   string `env:"WEBHOOK_URL"`
	SeverAddress string `env:"SERVER_ADDRESS" env-default:":8443"`

	AllowedChatIDs   []int64       `env:"TELEGRAM_ALLOWED_CHAT_IDS" env-separator:","`
	AdminChatID      int64         `env:"TELEGRAM_ADMIN_CHAT_ID"`
	ThrottleInterval time.Duration `env:"TELEGRAM_THROTTLE_INTERVAL" env-default:"1s"`
	WorkersCount     int           `env:"TELEGRAM_WORKERS_COUNT" env-default:"4"`
}

// Fixer represents a rates provider configuration.
type Fixer struct {
	APIURL    string        `env:"FIXER_API_URL" env-default:"http://data.fixer.io/api"`
	AccessKey string        `env:"FIXER_ACCESS_KEY"`
	Timeout   time.Duration `env:"FIXER_TIMEOUT" env-default:"10s"`
}

// Currency represents a currency engine configuration.
type Currency struct {
	StaleAfter time.Duration `env:"CURRENCY_STALE_AFTER" env-default:"6h"`
	// RegistryFile replaces the built-in registry when set.
	RegistryFile string `env:"CURRENCY_REGISTRY_FILE"`
}

// Metrics represents a metrics endpoint configuration.
type Metrics struct {
	Address string `env:"METRICS_ADDRESS"`
}

// Logger represents a logger configuration.
type Logger struct {
	Level      string `env:"LOG_LEVEL" env-default:"info"`
	Pretty     bool   `env:"LOG_PRETTY" env-default:"false"`
	Filename   string `env:"LOG_FILENAME"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"3"`
}

var (
	config    Config
	configErr error
	once      sync.Once
)

// Get returns the app config read from environment, values from .env file are loaded first.
func Get() (*Config, error) {
	once.Do(func() {
		configErr = load(&config, ".env")
	})
	if configErr != nil {
		return nil, configErr
	}

	return &config, nil
}

func load(cfg *Config, envFiles ...string) error {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env files: %w", err)
	}

	err = cleanenv.ReadEnv(cfg)
	if err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	return nil
}
