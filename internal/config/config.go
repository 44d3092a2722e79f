package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulerConfig настройки окна доступности и подбора слотов
type SchedulerConfig struct {
	HorizonBusinessDays int      `toml:"horizon_business_days"`
	DailySlotTimes      []string `toml:"daily_slot_times"`
	MaxAlternatives     int      `toml:"max_alternatives"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-assistant-service",
		},
		Scheduler: SchedulerConfig{
			HorizonBusinessDays: domain.DefaultHorizonBusinessDays,
			DailySlotTimes:      slotTimeStrings(domain.DefaultDailySlotTimes),
			MaxAlternatives:     domain.DefaultMaxAlternatives,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}
	if c.Scheduler.HorizonBusinessDays <= 0 {
		return fmt.Errorf("invalid scheduler.horizon_business_days: %d", c.Scheduler.HorizonBusinessDays)
	}
	if c.Scheduler.MaxAlternatives <= 0 {
		return fmt.Errorf("invalid scheduler.max_alternatives: %d", c.Scheduler.MaxAlternatives)
	}
	if len(c.Scheduler.DailySlotTimes) == 0 {
		return fmt.Errorf("scheduler.daily_slot_times must not be empty")
	}
	for _, t := range c.Scheduler.DailySlotTimes {
		if err := types.TimeString(t).Validate(); err != nil {
			return fmt.Errorf("invalid scheduler.daily_slot_times entry %q: %w", t, err)
		}
	}
	return nil
}

// DailySlotTimeStrings возвращает времена слотов как types.TimeString
func (c *SchedulerConfig) DailySlotTimeStrings() []types.TimeString {
	times := make([]types.TimeString, len(c.DailySlotTimes))
	for i, t := range c.DailySlotTimes {
		times[i] = types.TimeString(t)
	}
	return times
}

func slotTimeStrings(times []types.TimeString) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}
