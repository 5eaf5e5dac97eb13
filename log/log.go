// Package log is a thin zap facade. It defaults to an INFO console logger
// and can be re-initialized with console, file (rotated), or multi sinks.
package log

import "go.uber.org/zap"

// Option configures the logger.
type Option struct {
	// Log mode: SIMPLE, FULL.
	// Default: "FULL".
	Mode string `yaml:"mode"`
	// Log level: DEBUG, INFO, WARN, ERROR.
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log sink: CONSOLE, FILE, MULTI.
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
	// Log filename, only used by FILE and MULTI sinks.
	Filename string `yaml:"filename"`
}

// Log returns the underlying sugared logger.
func Log() *zap.SugaredLogger {
	return sugar
}

// Init sets the log options.
func Init(opt *Option) error {
	sinkType, err := GetSinkType(opt.Sink)
	if err != nil {
		return err
	}
	switch sinkType {
	case SinkFile:
		return InitFileLog(opt.Mode, opt.Level, opt.Filename)
	case SinkMulti:
		return InitMultiLog(opt.Mode, opt.Level, opt.Filename)
	default:
		return InitConsoleLog(opt.Mode, opt.Level)
	}
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }

// Infof uses fmt.Sprintf to log a templated message.
func Infof(format string, args ...any) { sugar.Infof(format, args...) }

// Warnf uses fmt.Sprintf to log a templated message.
func Warnf(format string, args ...any) { sugar.Warnf(format, args...) }

// Errorf uses fmt.Sprintf to log a templated message.
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }

// Panicf uses fmt.Sprintf to log a templated message, then panics.
func Panicf(format string, args ...any) { sugar.Panicf(format, args...) }
