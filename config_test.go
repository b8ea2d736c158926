package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestConfigModelSerialization(t *testing.T) {
	cfg := ConfigModel{
		DnsConfig: DnsConfigModel{
			Server:         "8.8.8.8",
			Port:           53,
			TimeoutMs:      1000,
			MaxAttempts:    3,
			PollIntervalMs: 50,
		},
		NtpConfig: NtpConfigModel{
			Server:    "192.0.2.123",
			UTCOffset: 5.5,
		},
		LogLevel: "info",
	}

	// Serialize the struct to YAML
	data, err := yaml.Marshal(cfg)
	assert.NoError(t, err)

	// Deserialize the YAML to a new struct
	var cfg2 ConfigModel
	err = yaml.Unmarshal(data, &cfg2)
	assert.NoError(t, err)

	// Check that the deserialized struct is equal to the original
	assert.Equal(t, cfg, cfg2)
}

func TestReadConfigFromFile(t *testing.T) {
	// Create a temporary file with sample configuration data
	tmpFile, err := os.CreateTemp("", "example")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // clean up

	sampleConfig := []byte(`
dns:
  server: "9.9.9.9"
  port: 53
  timeout_ms: 1500
  max_attempts: 5
  poll_interval_ms: 25
ntp:
  server: "192.0.2.123"
  utc_offset: -8
log_level: "debug"
`)

	if _, err := tmpFile.Write(sampleConfig); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}

	// Call ReadConfigFromFile with the temporary file path
	config := ReadConfigFromFile(tmpFile.Name())

	// Check if the returned ConfigModel is correct
	if config.DnsConfig.Server != "9.9.9.9" {
		t.Errorf("Expected DnsConfig.Server to be '9.9.9.9', but got '%s'", config.DnsConfig.Server)
	}
	if config.DnsConfig.Port != 53 {
		t.Errorf("Expected DnsConfig.Port to be 53, but got %d", config.DnsConfig.Port)
	}
	if config.DnsConfig.TimeoutMs != 1500 {
		t.Errorf("Expected DnsConfig.TimeoutMs to be 1500, but got %d", config.DnsConfig.TimeoutMs)
	}
	if config.DnsConfig.MaxAttempts != 5 {
		t.Errorf("Expected DnsConfig.MaxAttempts to be 5, but got %d", config.DnsConfig.MaxAttempts)
	}
	if config.DnsConfig.PollIntervalMs != 25 {
		t.Errorf("Expected DnsConfig.PollIntervalMs to be 25, but got %d", config.DnsConfig.PollIntervalMs)
	}
	if config.NtpConfig.Server != "192.0.2.123" {
		t.Errorf("Expected NtpConfig.Server to be '192.0.2.123', but got '%s'", config.NtpConfig.Server)
	}
	if config.NtpConfig.UTCOffset != -8 {
		t.Errorf("Expected NtpConfig.UTCOffset to be -8, but got %f", config.NtpConfig.UTCOffset)
	}
	if config.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be 'debug', but got '%s'", config.LogLevel)
	}
}
