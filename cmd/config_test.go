package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"coffeeshop/cmd"
	"coffeeshop/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	c, err := cmd.ConfigFromEnv(env(nil))

	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultConfig(), c)
	assert.Equal(t, 10, c.InitialStock)
	assert.Equal(t, time.Second, c.BrewMin)
	assert.Equal(t, 3*time.Second, c.BrewMax)
	assert.Nil(t, c.Deadline)
	assert.Equal(t, "@every 30s", c.RushSchedule)
	assert.False(t, c.RunOnce)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	c, err := cmd.ConfigFromEnv(env(map[string]string{
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "json",
		"INITIAL_STOCK":   "3",
		"BREW_MIN":        "10ms",
		"BREW_MAX":        "20ms",
		"DEADLINE":        "2s",
		"CONCURRENCY":     "4",
		"BATCH_SIZE":      "15",
		"RUSH_SCHEDULE":   "*/5 * * * * *",
		"RUSH_KIND":       "pastry",
		"REPORT_SCHEDULE": "",
		"RUN_ONCE":        "true",
	}))

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 3, c.InitialStock)
	assert.Equal(t, 10*time.Millisecond, c.BrewMin)
	require.NotNil(t, c.Deadline)
	assert.Equal(t, 2*time.Second, *c.Deadline)
	assert.Equal(t, 4, c.Concurrency)
	assert.Equal(t, 15, c.BatchSize)
	assert.Equal(t, menu.Pastry, c.RushKind)
	assert.Equal(t, "@every 10s", c.ReportSchedule)
	assert.True(t, c.RunOnce)
}

func TestConfigFromEnv_RushKind(t *testing.T) {
	for value, want := range map[string]menu.Kind{
		"all":      menu.UnknownKind,
		"Coffee":   menu.Coffee,
		"pastry":   menu.Pastry,
		"smoothie": menu.Smoothie,
	} {
		c, err := cmd.ConfigFromEnv(env(map[string]string{"RUSH_KIND": value}))

		require.NoError(t, err)
		assert.Equal(t, want, c.RushKind, value)
	}
}

func TestConfigFromEnv_ZeroDeadline(t *testing.T) {
	c, err := cmd.ConfigFromEnv(env(map[string]string{"DEADLINE": "0s"}))

	require.NoError(t, err)
	require.NotNil(t, c.Deadline)
	assert.Equal(t, time.Duration(0), *c.Deadline)
}

func TestConfigFromEnv_ReportsEveryProblem(t *testing.T) {
	_, err := cmd.ConfigFromEnv(env(map[string]string{
		"LOG_LEVEL":     "loud",
		"INITIAL_STOCK": "-1",
		"BREW_MIN":      "5s",
		"BREW_MAX":      "1s",
		"DEADLINE":      "-1s",
		"BATCH_SIZE":    "many",
		"RUSH_KIND":     "tea",
		"RUN_ONCE":      "maybe",
	}))

	require.Error(t, err)
	for _, want := range []string{
		"LOG_LEVEL",
		"INITIAL_STOCK must not be negative",
		"BREW_MAX 1s must not be less than BREW_MIN 5s",
		"DEADLINE must not be negative",
		"BATCH_SIZE=\"many\"",
		"RUSH_KIND",
		"RUN_ONCE",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestConfig_Validate(t *testing.T) {
	c := cmd.DefaultConfig()
	c.LogFormat = "xml"
	c.Concurrency = -1
	c.RushSchedule = " "

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
	assert.Contains(t, err.Error(), "CONCURRENCY")
	assert.Contains(t, err.Error(), "RUSH_SCHEDULE")

	c.RunOnce = true
	c.LogFormat = "text"
	c.Concurrency = 0
	require.NoError(t, c.Validate())
}
