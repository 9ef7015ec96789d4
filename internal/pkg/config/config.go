package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	FootballAPI FootballAPIConfig `yaml:"football_api"`
	Forebet     ForebetConfig     `yaml:"forebet"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type TelegramConfig struct {
	Token          string  `yaml:"token"`
	ChannelID      int64   `yaml:"channel_id"`
	AllowedChatIDs []int64 `yaml:"allowed_chat_ids"` // empty means any chat may issue commands
	UpdateTimeout  int     `yaml:"update_timeout"`
}

type FootballAPIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	BookmakerID int           `yaml:"bookmaker_id"` // preferred bookmaker for odds requests
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
}

type ForebetConfig struct {
	Enabled bool          `yaml:"enabled"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"` // empty disables the predictions history
}

type SchedulerConfig struct {
	DailySendTime  string `yaml:"daily_send_time"` // "HH:MM" UTC
	RunImmediately bool   `yaml:"run_immediately"`
}

type AnalysisConfig struct {
	MaxFixtures int `yaml:"max_fixtures"` // batch cap per run
	Workers     int `yaml:"workers"`      // parallel per-fixture analyses
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads and parses the YAML config file, fills secrets from the
// environment when the file leaves them empty and applies defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()

	if config.FootballAPI.APIKey == "" {
		return nil, fmt.Errorf("football API key is required (football_api.api_key or FOOTBALL_API_KEY)")
	}

	return &config, nil
}

func (c *Config) applyEnv() {
	if c.FootballAPI.APIKey == "" {
		c.FootballAPI.APIKey = os.Getenv("FOOTBALL_API_KEY")
	}
	if c.Telegram.Token == "" {
		c.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if c.Postgres.DSN == "" {
		c.Postgres.DSN = os.Getenv("POSTGRES_DSN")
	}
}

func (c *Config) applyDefaults() {
	if c.FootballAPI.BaseURL == "" {
		c.FootballAPI.BaseURL = "https://v3.football.api-sports.io"
	}
	if c.FootballAPI.BookmakerID == 0 {
		c.FootballAPI.BookmakerID = 6
	}
	if c.FootballAPI.Timeout == 0 {
		c.FootballAPI.Timeout = 30 * time.Second
	}
	if c.FootballAPI.MaxRetries == 0 {
		c.FootballAPI.MaxRetries = 2
	}
	if c.Forebet.BaseURL == "" {
		c.Forebet.BaseURL = "https://www.forebet.com"
	}
	if c.Forebet.Timeout == 0 {
		c.Forebet.Timeout = 45 * time.Second
	}
	if c.Scheduler.DailySendTime == "" {
		c.Scheduler.DailySendTime = "09:00"
	}
	if c.Analysis.MaxFixtures == 0 {
		c.Analysis.MaxFixtures = 120
	}
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = 8
	}
	if c.Telegram.UpdateTimeout == 0 {
		c.Telegram.UpdateTimeout = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
