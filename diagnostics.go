package vktriangle

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Severity is a bit set of debug message severities.
type Severity uint32

const (
	SeverityVerbose Severity = 1 << iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) Has(bit Severity) bool {
	return s&bit == bit
}

func (s Severity) String() string {
	return flagString(uint32(s), []string{"verbose", "info", "warning", "error"})
}

// MessageType is a bit set of debug message categories.
type MessageType uint32

const (
	MessageGeneral MessageType = 1 << iota
	MessageValidation
	MessagePerformance
)

func (t MessageType) Has(bit MessageType) bool {
	return t&bit == bit
}

func (t MessageType) String() string {
	return flagString(uint32(t), []string{"general", "validation", "performance"})
}

func flagString(v uint32, names []string) string {
	var parts []string
	for i, name := range names {
		if v&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// DebugCallbackFunc receives driver messages. Returning true asks the driver
// to abort the call that triggered the message.
type DebugCallbackFunc func(severity Severity, msgType MessageType, message string) bool

// MessengerConfig selects which messages a debug messenger delivers.
type MessengerConfig struct {
	Severities Severity
	Types      MessageType
	Callback   DebugCallbackFunc
}

// Diagnostics is the sink for driver debug messages. The driver may call
// DebugCallback from any of its threads.
type Diagnostics struct {
	log *zap.Logger

	verbose  atomic.Uint64
	info     atomic.Uint64
	warnings atomic.Uint64
	errors   atomic.Uint64
}

func NewDiagnostics(log *zap.Logger) *Diagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	return &Diagnostics{log: log.Named("validation")}
}

// DebugCallback logs message and never asks the driver to abort.
func (d *Diagnostics) DebugCallback(severity Severity, msgType MessageType, message string) (abort bool) {
	defer func() {
		if v := recover(); v != nil {
			abort = false
		}
	}()

	level := zapcore.DebugLevel
	switch {
	case severity.Has(SeverityError):
		level = zapcore.ErrorLevel
		d.errors.Add(1)
	case severity.Has(SeverityWarning):
		level = zapcore.WarnLevel
		d.warnings.Add(1)
	case severity.Has(SeverityInfo):
		level = zapcore.InfoLevel
		d.info.Add(1)
	default:
		d.verbose.Add(1)
	}

	if ce := d.log.Check(level, "validation layer: "+message); ce != nil {
		ce.Write(
			zap.Stringer("severity", severity),
			zap.Stringer("type", msgType),
		)
	}
	return false
}

// DiagnosticCounts is a snapshot of how many messages arrived per severity.
type DiagnosticCounts struct {
	Verbose  uint64
	Info     uint64
	Warnings uint64
	Errors   uint64
}

func (d *Diagnostics) Counts() DiagnosticCounts {
	return DiagnosticCounts{
		Verbose:  d.verbose.Load(),
		Info:     d.info.Load(),
		Warnings: d.warnings.Load(),
		Errors:   d.errors.Load(),
	}
}
