// Package config reads runtime settings from ROLLOUT_* environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/scheduler"
)

type Config struct {
	DBPath string
	// CurriculumFile is a YAML curriculum definition. Empty selects the
	// embedded default qualification.
	CurriculumFile      string
	WorkplaceBufferDays int
	// Holidays are excluded from working-day arithmetic in addition to weekends.
	Holidays         []time.Time
	ReconcileWorkers int
	Thresholds       scheduler.Thresholds
	LogLevel         slog.Level
	// LogUseCases emits one structured line per service call to stderr.
	LogUseCases bool
	// MetricsAddr, when set, serves Prometheus metrics at /metrics.
	MetricsAddr string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		DBPath:              defaultDBPath(),
		WorkplaceBufferDays: scheduler.DefaultWorkplaceBufferDays,
		ReconcileWorkers:    4,
		Thresholds:          scheduler.DefaultThresholds(),
		LogLevel:            slog.LevelInfo,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rollout.db"
	}
	return filepath.Join(home, ".rollout", "rollout.db")
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("ROLLOUT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ROLLOUT_CURRICULUM"); v != "" {
		cfg.CurriculumFile = v
	}
	if v := os.Getenv("ROLLOUT_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("ROLLOUT_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ROLLOUT_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("ROLLOUT_HOLIDAYS"); v != "" {
		cfg.Holidays = parseDates(v)
	}

	applyIntEnv(&cfg.WorkplaceBufferDays, "ROLLOUT_WORKPLACE_BUFFER_DAYS")
	applyIntEnv(&cfg.ReconcileWorkers, "ROLLOUT_RECONCILE_WORKERS")
	applyIntEnv(&cfg.Thresholds.NoActivityDays, "ROLLOUT_NO_ACTIVITY_DAYS")
	applyIntEnv(&cfg.Thresholds.StalledMediumDays, "ROLLOUT_STALLED_MEDIUM_DAYS")
	applyIntEnv(&cfg.Thresholds.StalledHighDays, "ROLLOUT_STALLED_HIGH_DAYS")
	applyIntEnv(&cfg.Thresholds.OnboardingMonths, "ROLLOUT_ONBOARDING_MONTHS")
	applyFloatEnv(&cfg.Thresholds.AtRiskMediumGap, "ROLLOUT_AT_RISK_MEDIUM_GAP")
	applyFloatEnv(&cfg.Thresholds.AtRiskHighGap, "ROLLOUT_AT_RISK_HIGH_GAP")
	applyFloatEnv(&cfg.Thresholds.BehindGap, "ROLLOUT_BEHIND_GAP")

	return cfg
}

// Calendar builds the working-day calendar from the configured holidays.
func (c Config) Calendar() calendar.Calendar {
	if len(c.Holidays) == 0 {
		return calendar.Default
	}
	return calendar.Calendar{Holiday: calendar.HolidaySet(c.Holidays...)}
}

func applyIntEnv(dst *int, name string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}

func applyFloatEnv(dst *float64, name string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return
	}
	*dst = f
}

// parseDates reads a comma-separated list of YYYY-MM-DD dates, skipping
// entries that do not parse.
func parseDates(s string) []time.Time {
	var out []time.Time
	for _, part := range strings.Split(s, ",") {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
