package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig controls how the zap-backed logger is built.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug builds a development logger
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process logger from config. Invalid levels fall back to
// info rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if lv, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = lv
	}

	var zc zap.Config
	if cfg.Mode == "debug" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}
	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, args ...any) { l.sugar.Debug(args...) }

func (l *zapLogger) Debugf(_ context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Info(_ context.Context, args ...any) { l.sugar.Info(args...) }

func (l *zapLogger) Infof(_ context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warn(_ context.Context, args ...any) { l.sugar.Warn(args...) }

func (l *zapLogger) Warnf(_ context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Error(_ context.Context, args ...any) { l.sugar.Error(args...) }

func (l *zapLogger) Errorf(_ context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

func (l *zapLogger) DPanic(_ context.Context, args ...any) { l.sugar.DPanic(args...) }

func (l *zapLogger) DPanicf(_ context.Context, format string, args ...any) {
	l.sugar.DPanicf(format, args...)
}

func (l *zapLogger) Panic(_ context.Context, args ...any) { l.sugar.Panic(args...) }

func (l *zapLogger) Panicf(_ context.Context, format string, args ...any) {
	l.sugar.Panicf(format, args...)
}

func (l *zapLogger) Fatal(_ context.Context, args ...any) { l.sugar.Fatal(args...) }

func (l *zapLogger) Fatalf(_ context.Context, format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
