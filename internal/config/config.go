package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	defaultIdleTimeout     = 12 * time.Hour
	defaultSweepCron       = "*/10 * * * *"
	defaultCookieName      = "desk_session"
	defaultSimulatorPort   = 8081
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver" validate:"required,oneof=sqlite"`
	Filename string `yaml:"filename" validate:"required"`
}

type SimulatorConfig struct {
	Port     int            `yaml:"port" validate:"min=1,max=65535"`
	Database DatabaseConfig `yaml:"database"`
	SeedFile string         `yaml:"seed_file"`
}

type Config struct {
	App struct {
		Name            string        `yaml:"name" validate:"required"`
		Environment     string        `yaml:"environment" validate:"required,oneof=development staging production"`
		Port            int           `yaml:"port" validate:"required,min=1,max=65535"`
		BaseURL         string        `yaml:"base_url" validate:"omitempty,url"`
		StaticDir       string        `yaml:"static_dir"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
	} `yaml:"app"`

	// CheckinService is the remote breakfast entitlement service.
	CheckinService struct {
		BaseURL string `yaml:"base_url" validate:"required,url"`
		// Zero means no client timeout.
		Timeout time.Duration `yaml:"timeout" validate:"min=0"`
	} `yaml:"checkin_service"`

	Sessions struct {
		CookieName  string        `yaml:"cookie_name" validate:"required"`
		IdleTimeout time.Duration `yaml:"idle_timeout" validate:"required,gt=0"`
		SweepCron   string        `yaml:"sweep_cron" validate:"required"`
	} `yaml:"sessions"`

	// Theme overrides the desk screen look; empty fields keep the defaults.
	Theme struct {
		HotelName       string `yaml:"hotel_name"`
		BarColor        string `yaml:"bar_color" validate:"omitempty,hexcolor"`
		HeadingColor    string `yaml:"heading_color" validate:"omitempty,hexcolor"`
		BackgroundColor string `yaml:"background_color" validate:"omitempty,hexcolor"`
	} `yaml:"theme"`

	Simulator SimulatorConfig `yaml:"simulator"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and environment
// overrides, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.ShutdownTimeout == 0 {
		c.App.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Sessions.CookieName == "" {
		c.Sessions.CookieName = defaultCookieName
	}
	if c.Sessions.IdleTimeout == 0 {
		c.Sessions.IdleTimeout = defaultIdleTimeout
	}
	if c.Sessions.SweepCron == "" {
		c.Sessions.SweepCron = defaultSweepCron
	}
	if c.Simulator.Port == 0 {
		c.Simulator.Port = defaultSimulatorPort
	}
	if c.Simulator.Database.Driver == "" {
		c.Simulator.Database.Driver = "sqlite"
	}
	if c.Simulator.Database.Filename == "" {
		c.Simulator.Database.Filename = filepath.Join("data", "roomsim.db")
	}
}

// applyEnv lets deployments point at a different service or port without
// editing the YAML file.
func (c *Config) applyEnv() error {
	if value := strings.TrimSpace(os.Getenv("CHECKIN_SERVICE_URL")); value != "" {
		c.CheckinService.BaseURL = value
	}
	if value := strings.TrimSpace(os.Getenv("ENVIRONMENT")); value != "" {
		c.App.Environment = value
	}
	if value := strings.TrimSpace(os.Getenv("PORT")); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", value, err)
		}
		c.App.Port = port
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("%s failed %q validation", first.Namespace(), first.Tag())
		}
		return err
	}

	if _, err := cron.ParseStandard(c.Sessions.SweepCron); err != nil {
		return fmt.Errorf("sessions.sweep_cron: %w", err)
	}

	return nil
}

// Addr is the listen address for the desk server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.App.Port)
}
