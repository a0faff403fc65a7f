package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() Config {
	return Config{
		HTTPAddr:      ":8082",
		DataDir:       "./data",
		KafkaBrokers:  []string{"kafka:9092"},
		CycleDuration: time.Second,
		MaxConcurrent: 40,
		GrowthMode:    "bernoulli",
		StockMin:      50,
		StockMax:      150,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, valid().Validate())
}

func TestValidateFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cycle duration", func(c *Config) { c.CycleDuration = 0 }},
		{"negative initial users", func(c *Config) { c.InitialUsers = -1 }},
		{"negative initial stock", func(c *Config) { c.InitialStock = -5 }},
		{"zero max concurrent", func(c *Config) { c.MaxConcurrent = 0 }},
		{"unknown growth mode", func(c *Config) { c.GrowthMode = "exponential" }},
		{"negative users per cycle", func(c *Config) { c.UsersPerCycle = -1 }},
		{"inverted stock range", func(c *Config) { c.StockMin = 10; c.StockMax = 5 }},
		{"negative step delay", func(c *Config) { c.StepDelayMax = -time.Second }},
		{"negative fault period", func(c *Config) { c.FaultEvery = -1 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SIM_CYCLE_DURATION", "250ms")
	t.Setenv("SIM_MAX_CONCURRENT_USERS", "7")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092")
	t.Setenv("SIM_GROWTH_MODE", "fixed")

	c := Load()
	assert.Equal(t, 250*time.Millisecond, c.CycleDuration)
	assert.Equal(t, 7, c.MaxConcurrent)
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, c.KafkaBrokers)
	assert.Equal(t, "fixed", c.GrowthMode)
	require.NoError(t, c.Validate())
}

func TestLoadRejectsUnparseableValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		val   string
		wants string
	}{
		{"bad duration", "SIM_CYCLE_DURATION", "soon", "SIM_CYCLE_DURATION"},
		{"bad integer", "SIM_MAX_CONCURRENT_USERS", "not-a-number", "SIM_MAX_CONCURRENT_USERS"},
		{"bad stock count", "SIM_INITIAL_STOCK", "lots", "SIM_INITIAL_STOCK"},
		{"bad step delay", "SIM_STEP_DELAY_MAX", "fast", "SIM_STEP_DELAY_MAX"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)

			err := Load().Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wants)
		})
	}
}

func TestLoadRejectsAllUnparseableValuesAtOnce(t *testing.T) {
	t.Setenv("SIM_CYCLE_DURATION", "abc")
	t.Setenv("SIM_MAX_CONCURRENT_USERS", "not-a-number")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIM_CYCLE_DURATION")
	assert.Contains(t, err.Error(), "SIM_MAX_CONCURRENT_USERS")
}
