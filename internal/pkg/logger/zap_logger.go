package logger

import (
	"fmt"
	"os"

	"github.com/reelboard/reelboard/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with the application's output configuration.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// InitZapLoggerFromConfig creates a ZapLogger from application config and
// installs it as the global logger.
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Logger.Format {
	case "console":
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	zapLog := zap.New(core, opts...).With(
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	logger := &ZapLogger{
		Logger: zapLog,
		sugar:  zapLog.Sugar(),
	}

	SetGlobalLogger(logger)
	return logger, nil
}

// Sugar returns the sugared logger for printf-style call sites.
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes buffered log entries.
func (l *ZapLogger) Close() {
	// Sync can fail on stdout; nothing useful to do about it
	_ = l.Logger.Sync()
}

// Infof logs a formatted info message.
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Errorf logs a formatted error message.
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a formatted fatal message and exits.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

func (l *ZapLogger) String() string {
	return fmt.Sprintf("ZapLogger(level=%s)", l.Level())
}
