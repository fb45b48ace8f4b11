package model

import "time"

// Config holds the complete AgriShield configuration
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// DataConfig locates the compliance dataset
type DataConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // Path to banned_pesticides.json
}

// LogConfig controls structured logging
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
}

// BatchConfig controls concurrent batch scanning
type BatchConfig struct {
	Workers       int           `yaml:"workers" mapstructure:"workers"`                   // Concurrent scan workers
	RatePerSecond float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`   // 0 disables throttling
	Burst         int           `yaml:"burst" mapstructure:"burst"`                       // Limiter burst size
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`                   // Total batch timeout
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	JSON    bool `yaml:"json" mapstructure:"json"` // Emit JSON instead of plain text
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path: "data/banned_pesticides.json",
		},
		Log: LogConfig{
			Level: "info",
		},
		Batch: BatchConfig{
			Workers:       4,
			RatePerSecond: 0,
			Burst:         5,
			Timeout:       10 * time.Minute,
		},
		Output: OutputConfig{
			Verbose: false,
			JSON:    false,
		},
	}
}
