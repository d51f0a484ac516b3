package types

import "errors"

// Default configuration values.
const (
	DefaultLowStockThreshold = 10
	DefaultLogLevel          = "info"
)

// Config holds store parameters for sqlite.Open.
type Config struct {
	DataDir           string `json:"data_dir" yaml:"data_dir"`
	LowStockThreshold int    `json:"low_stock_threshold" yaml:"low_stock_threshold"`
	LogLevel          string `json:"log_level" yaml:"log_level"`
}

// Config validation errors.
var (
	ErrDataDirEmpty      = errors.New("data dir must not be empty")
	ErrThresholdNegative = errors.New("low stock threshold must not be negative")
	ErrLogLevelUnknown   = errors.New("unknown log level")
)

// knownLogLevels lists the zerolog level names Validate accepts.
// An empty level means DefaultLogLevel.
var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.LowStockThreshold < 0 {
		return ErrThresholdNegative
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
