// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op until Initialize is called so
// packages can log safely from tests and library use.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options controls logger construction.
type Options struct {
	// JSON selects machine-readable output instead of the console encoder.
	JSON bool

	// Verbose lowers the level to debug.
	Verbose bool

	// Quiet raises the level to warn.
	Quiet bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// Initialize replaces the global logger.
func Initialize(opts Options) error {
	level := zapcore.InfoLevel
	switch {
	case opts.Verbose:
		level = zapcore.DebugLevel
	case opts.Quiet:
		level = zapcore.WarnLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	Logger = zap.New(core).Sugar()
	return nil
}

// ComponentLogger returns a named child of the global logger.
//
//	type Runner struct {
//	    logger *zap.SugaredLogger
//	}
//
//	r := &Runner{logger: logger.ComponentLogger("batch")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// OrComponent returns l if non-nil, otherwise ComponentLogger(name).
func OrComponent(l *zap.SugaredLogger, name string) *zap.SugaredLogger {
	if l != nil {
		return l
	}
	return ComponentLogger(name)
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Logger.Sync()
}
