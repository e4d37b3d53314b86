// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	//Target site
	BaseURL       string `yaml:"base_url" env:"UNCAREERS_BASE_URL"`
	FallbackPages int    `yaml:"fallback_pages"`
	//numbered links per pager block, the ellipsis control sits after each block
	PaginationWindow int `yaml:"pagination_window"`

	//Browser
	Browser       string        `yaml:"browser"`
	Headless      *bool         `yaml:"headless" env:"HEADLESS"`
	ImplicitWait  time.Duration `yaml:"implicit_wait"`
	NewTabTimeout time.Duration `yaml:"new_tab_timeout"`
	//bounds page loads, kept apart from the element lookup wait
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	//negative disables pacing
	RowsPerSecond float64       `yaml:"rows_per_second"`
	RunTimeout    time.Duration `yaml:"run_timeout"`

	//Paths
	WorkDir        string `yaml:"work_dir"`
	OutputPath     string `yaml:"output_path"`
	ScreenshotsDir string `yaml:"screenshots_dir"`

	//Optional summary delivery
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads the YAML file at path (a missing file is not an error), applies
// env overrides and defaults, then validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		log.Printf("Warning: Could not read %s, using defaults", path)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	//Override with env vars
	if v := os.Getenv("UNCAREERS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv("HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HEADLESS: %w", err)
		}
		cfg.Headless = &b
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.BaseURL == "" {
		c.BaseURL = "https://careers.un.org/lbw/home.aspx?lang=en-US"
	}
	if c.FallbackPages == 0 {
		c.FallbackPages = 40
	}
	if c.PaginationWindow == 0 {
		c.PaginationWindow = 10
	}
	if c.Browser == "" {
		c.Browser = "firefox"
	}
	if c.Headless == nil {
		headless := true
		c.Headless = &headless
	}
	if c.ImplicitWait == 0 {
		c.ImplicitWait = 10 * time.Second
	}
	if c.NewTabTimeout == 0 {
		c.NewTabTimeout = 3 * time.Second
	}
	if c.NavigationTimeout == 0 {
		c.NavigationTimeout = 30 * time.Second
	}
	if c.RowsPerSecond == 0 {
		c.RowsPerSecond = 2
	}
	if c.RunTimeout == 0 {
		c.RunTimeout = 2 * time.Hour
	}
	if c.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		c.WorkDir = wd
	}
	if c.OutputPath == "" {
		c.OutputPath = "scraped_files/UNCareers.csv"
	}
	if c.ScreenshotsDir == "" {
		c.ScreenshotsDir = "logs/screenshots"
	}
	return nil
}

func (c *Config) validate() error {
	if c.FallbackPages < 1 {
		return fmt.Errorf("fallback_pages must be positive, got %d", c.FallbackPages)
	}
	if c.PaginationWindow < 1 {
		return fmt.Errorf("pagination_window must be positive, got %d", c.PaginationWindow)
	}
	if c.NavigationTimeout < 0 {
		return fmt.Errorf("navigation_timeout must not be negative, got %s", c.NavigationTimeout)
	}
	switch c.Browser {
	case "firefox", "chromium", "webkit":
	default:
		return fmt.Errorf("unsupported browser %q", c.Browser)
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}

// IsHeadless reports the effective headless setting.
func (c *Config) IsHeadless() bool {
	return c.Headless == nil || *c.Headless
}

// OutputFile resolves OutputPath against WorkDir.
func (c *Config) OutputFile() string {
	if filepath.IsAbs(c.OutputPath) {
		return c.OutputPath
	}
	return filepath.Join(c.WorkDir, c.OutputPath)
}
