package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Instruments and timeframes are
// plain externally supplied lists; the core never hard-codes either.
type Config struct {
	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		AdminChatID string `yaml:"admin_chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Points  int    `yaml:"points"`
	} `yaml:"data_source"`
	Instruments []string `yaml:"instruments"`
	Timeframes  []string `yaml:"timeframes"`
	Schedule    struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Storage struct {
		SQLitePath        string `yaml:"sqlite_path"`
		SubscriptionsFile string `yaml:"subscriptions_file"`
	} `yaml:"storage"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); v != "" {
		cfg.Telegram.AdminChatID = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("DATASOURCE_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.Points = n
		}
	}
	if v := os.Getenv("INSTRUMENTS"); v != "" {
		cfg.Instruments = splitList(v)
	}
	if v := os.Getenv("TIMEFRAMES"); v != "" {
		cfg.Timeframes = splitList(v)
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Instruments) == 0 {
		cfg.Instruments = []string{"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT", "XRPUSDT"}
	}
	if len(cfg.Timeframes) == 0 {
		cfg.Timeframes = []string{"5m", "15m", "30m", "4h", "1d", "3d", "1w", "1M"}
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 0 * * * *"
	}
	if cfg.DataSource.Points == 0 {
		cfg.DataSource.Points = 200
	}
	if cfg.Storage.SubscriptionsFile == "" {
		cfg.Storage.SubscriptionsFile = "data/subscriptions.json"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/trendsentry.db"
	}

	return cfg, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if len(c.Instruments) == 0 {
		return fmt.Errorf("at least one instrument is required")
	}
	if len(c.Timeframes) == 0 {
		return fmt.Errorf("at least one timeframe is required")
	}
	return nil
}
