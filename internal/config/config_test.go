package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.WorkplaceBufferDays)
	assert.Equal(t, 4, cfg.ReconcileWorkers)
	assert.Equal(t, 20.0, cfg.Thresholds.AtRiskHighGap)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Empty(t, cfg.CurriculumFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ROLLOUT_DB", "/tmp/r.db")
	t.Setenv("ROLLOUT_CURRICULUM", "/etc/rollout/nvc.yaml")
	t.Setenv("ROLLOUT_WORKPLACE_BUFFER_DAYS", "10")
	t.Setenv("ROLLOUT_RECONCILE_WORKERS", "8")
	t.Setenv("ROLLOUT_AT_RISK_HIGH_GAP", "25.5")
	t.Setenv("ROLLOUT_ONBOARDING_MONTHS", "3")
	t.Setenv("ROLLOUT_LOG_LEVEL", "debug")
	t.Setenv("ROLLOUT_LOG_USE_CASES", "true")
	t.Setenv("ROLLOUT_METRICS_ADDR", ":9102")

	cfg := Load()

	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, "/etc/rollout/nvc.yaml", cfg.CurriculumFile)
	assert.Equal(t, 10, cfg.WorkplaceBufferDays)
	assert.Equal(t, 8, cfg.ReconcileWorkers)
	assert.Equal(t, 25.5, cfg.Thresholds.AtRiskHighGap)
	assert.Equal(t, 3, cfg.Thresholds.OnboardingMonths)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("ROLLOUT_RECONCILE_WORKERS", "lots")
	t.Setenv("ROLLOUT_WORKPLACE_BUFFER_DAYS", "-2")
	t.Setenv("ROLLOUT_BEHIND_GAP", "nan-ish")
	t.Setenv("ROLLOUT_LOG_LEVEL", "chatty")

	cfg := Load()

	assert.Equal(t, 4, cfg.ReconcileWorkers)
	assert.Equal(t, 5, cfg.WorkplaceBufferDays)
	assert.Equal(t, 5.0, cfg.Thresholds.BehindGap)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_HolidaysFeedCalendar(t *testing.T) {
	t.Setenv("ROLLOUT_HOLIDAYS", "2025-03-21, 2025-04-18,bogus")

	cfg := Load()
	assert.Len(t, cfg.Holidays, 2)

	cal := cfg.Calendar()
	assert.False(t, cal.IsWorkingDay(time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)), "Human Rights Day")
	assert.True(t, cal.IsWorkingDay(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)))
}
