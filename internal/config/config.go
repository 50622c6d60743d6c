package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/importer"
)

// Config is everything a planning run needs besides the client data itself.
// Values come from a yaml file overridden by CADENCE_* environment variables.
type Config struct {
	DBPath      string `mapstructure:"db_path"`
	CalendarURL string `mapstructure:"calendar_url"`
	LogLevel    string `mapstructure:"log_level"`

	GranularityMin int `mapstructure:"granularity_min"`
	HorizonDays    int `mapstructure:"horizon_days"`

	DefaultDurationMin    int `mapstructure:"default_duration_min"`
	DefaultPriority       int `mapstructure:"default_priority"`
	DefaultWeeklySessions int `mapstructure:"default_weekly_sessions"`

	// WorkingHours maps weekday names to window phrases, e.g.
	// monday: ["8:00 to 12:00", "13:00 to 17:00"] or ["morning"].
	WorkingHours map[string][]string `mapstructure:"working_hours"`
}

// Load reads configuration from the given file path, or from cadence.yaml in
// the working directory and ~/.config/cadence when path is empty. A missing
// file is not an error; defaults plus environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cadence")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cadence")
	}

	v.SetEnvPrefix("CADENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("log_level", "info")
	v.SetDefault("granularity_min", 30)
	v.SetDefault("horizon_days", 28)
	v.SetDefault("default_duration_min", 60)
	v.SetDefault("default_priority", 1)
	v.SetDefault("default_weekly_sessions", 1)
	v.SetDefault("working_hours", defaultWorkingHours())

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the engine-facing values. Returns a domain.ConfigError so
// callers can treat a bad file the same as any other fatal configuration
// problem.
func (c *Config) Validate() error {
	if c.GranularityMin <= 0 {
		return domain.NewConfigError("granularity_min", "must be positive, got %d", c.GranularityMin)
	}
	if c.HorizonDays <= 0 {
		return domain.NewConfigError("horizon_days", "must be positive, got %d", c.HorizonDays)
	}
	if c.DefaultDurationMin <= 0 {
		return domain.NewConfigError("default_duration_min", "must be positive, got %d", c.DefaultDurationMin)
	}
	if c.DefaultWeeklySessions <= 0 {
		return domain.NewConfigError("default_weekly_sessions", "must be positive, got %d", c.DefaultWeeklySessions)
	}
	if _, err := c.WorkingHoursModel(); err != nil {
		return err
	}
	return nil
}

// WorkingHoursModel parses the configured windows into the domain model and
// validates them.
func (c *Config) WorkingHoursModel() (domain.WorkingHours, error) {
	wh := make(domain.WorkingHours, len(c.WorkingHours))
	for dayName, phrases := range c.WorkingHours {
		day, err := domain.ParseWeekday(dayName)
		if err != nil {
			return nil, domain.NewConfigError("working_hours", "%v", err)
		}
		var windows []domain.TimeWindow
		for _, phrase := range phrases {
			parsed, err := importer.ParseTimeWindows(phrase)
			if err != nil {
				return nil, domain.NewConfigError("working_hours."+dayName, "%v", err)
			}
			windows = append(windows, parsed...)
		}
		if len(windows) > 0 {
			wh[day] = windows
		}
	}
	if err := wh.Validate(); err != nil {
		return nil, err
	}
	return wh, nil
}

// Horizon derives the planning window: it starts at the next midnight on or
// after now and spans HorizonDays days.
func (c *Config) Horizon(now time.Time) domain.Horizon {
	start := now.Truncate(24 * time.Hour)
	if start.Before(now) {
		start = start.AddDate(0, 0, 1)
	}
	return domain.Horizon{Start: start, End: start.AddDate(0, 0, c.HorizonDays)}
}

// Defaults exposes the cascading fallbacks the importer applies to blank
// CSV fields.
func (c *Config) Defaults() importer.Defaults {
	return importer.Defaults{
		DurationMin: &c.DefaultDurationMin,
		Priority:    &c.DefaultPriority,
		Count:       &c.DefaultWeeklySessions,
	}
}

func defaultWorkingHours() map[string][]string {
	hours := []string{"8:00 to 18:00"}
	return map[string][]string{
		"monday": hours, "tuesday": hours, "wednesday": hours,
		"thursday": hours, "friday": hours,
	}
}

func defaultDBPath() string {
	return "cadence.db"
}
