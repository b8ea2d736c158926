package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ExecConfig = ConfigModel{
	DnsConfig: DnsConfigModel{
		Server:         "",
		Port:           DnsPort,
		TimeoutMs:      1000,
		MaxAttempts:    DefaultMaxAttempts,
		PollIntervalMs: 50,
	},
	NtpConfig: NtpConfigModel{
		Server:    "",
		UTCOffset: 0,
	},
	LogLevel: "info",
}

type DnsConfigModel struct {
	Server         string `yaml:"server"`
	Port           int    `yaml:"port"`
	TimeoutMs      int    `yaml:"timeout_ms"`
	MaxAttempts    int    `yaml:"max_attempts"`
	PollIntervalMs int    `yaml:"poll_interval_ms"`
}

type NtpConfigModel struct {
	Server    string  `yaml:"server"`
	UTCOffset float64 `yaml:"utc_offset"`
}

type ConfigModel struct {
	DnsConfig DnsConfigModel `yaml:"dns"`
	NtpConfig NtpConfigModel `yaml:"ntp"`
	LogLevel  string         `yaml:"log_level"`
}

func ReadConfigFromFile(path string) (config ConfigModel) {
	file, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Read file error:", err)
		panic(err)
	}
	err = yaml.Unmarshal(file, &config)
	if err != nil {
		fmt.Println("Unmarshal config file error:", err)
		panic(err)
	}
	ExecConfig = config
	return
}
