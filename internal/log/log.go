// Package log wraps a zap sugared logger with a small field-chaining API.
// Call Configure once at startup to pick the production or development
// encoder; until then a production logger is used.
package log

import (
	"go.uber.org/zap"
)

// Fields to be added to a logger
type Fields map[string]interface{}

// Logger contains logger and fields
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

var zapSugaredLogger *zap.SugaredLogger

func init() {
	zapLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
	zapSugaredLogger = zapLogger.Sugar()
}

// Configure swaps the global logger. env "dev" selects zap's development
// config (console encoder, debug level).
func Configure(env string) error {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if env == "dev" {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return err
	}
	zapSugaredLogger = zapLogger.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = zapSugaredLogger.Sync()
}

// Log returns an empty field logger
func Log() Logger {
	return Logger{
		logger: zapSugaredLogger,
		fields: []interface{}{},
	}
}

// WithField add a key/value pair to its fields
func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, len(l.fields), len(l.fields)+2)
	copy(fields, l.fields)
	l.fields = append(fields, key, value)
	return l
}

// WithFields add multiple key/value pairs to its fields
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

// WithError is shorthand for WithField("err", err)
func (l Logger) WithError(err error) Logger {
	return l.WithField("err", err)
}

// Debug log
func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

// Info log
func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

// Warn log
func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

// Error log
func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

// Fatal logs and exits the process
func (l Logger) Fatal(args ...interface{}) {
	l.logger.With(l.fields...).Fatal(args...)
}
