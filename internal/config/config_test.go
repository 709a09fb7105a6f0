package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://login.salesforce.com", cfg.Salesforce.LoginURL)
	assert.Equal(t, "Lead", cfg.Salesforce.Object)
	assert.Equal(t, 5.0, cfg.Salesforce.RateRPS)
	assert.Equal(t, "Call Attempts", cfg.Fields.AttemptCounter)
	assert.Equal(t, "Appointment Booked", cfg.Fields.BookingFlag)
	assert.Equal(t, "Seller Memory", cfg.Fields.MemoryLog)
	assert.Equal(t, 3, cfg.Pipeline.CoverageTarget)
	assert.Equal(t, 10, cfg.Pipeline.MinTextLen)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CALLSYNC_SALESFORCE_OBJECT", "Contact")
	t.Setenv("CALLSYNC_FIELDS_MEMORY_LOG", "Owner Memory")
	t.Setenv("CALLSYNC_PIPELINE_COVERAGE_TARGET", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Contact", cfg.Salesforce.Object)
	assert.Equal(t, "Owner Memory", cfg.Fields.MemoryLog)
	assert.Equal(t, 5, cfg.Pipeline.CoverageTarget)
}

func TestValidate_RequiresCredentials(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client_id")

	cfg.Salesforce.ClientID = "id"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")

	cfg.Salesforce.Username = "svc@example.com"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key_path")

	cfg.Salesforce.KeyPath = "/etc/sf/key.pem"
	assert.NoError(t, cfg.Validate())
}
