package vktriangle

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig selects the level, format and destinations of the process log.
type LogConfig struct {
	Level    string   `mapstructure:"level"`
	Encoding string   `mapstructure:"encoding"` // console or json
	Outputs  []string `mapstructure:"outputs"`  // stderr, stdout or file paths
}

// NewLogger builds the process logger. File outputs are appended to.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	outputs := cfg.Outputs
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Development = false
	zc.Encoding = encoding
	zc.OutputPaths = outputs
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	if encoding == "json" {
		zc.EncoderConfig = zap.NewProductionEncoderConfig()
	}

	log, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return log, nil
}
