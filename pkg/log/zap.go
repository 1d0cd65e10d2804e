package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process logger from config. Falls back to info level and
// console encoding when values are missing or unknown.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var zc zap.Config
	if strings.ToLower(cfg.Mode) == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any)  { z.sugar.Debug(arg...) }
func (z *zapLogger) Info(ctx context.Context, arg ...any)   { z.sugar.Info(arg...) }
func (z *zapLogger) Warn(ctx context.Context, arg ...any)   { z.sugar.Warn(arg...) }
func (z *zapLogger) Error(ctx context.Context, arg ...any)  { z.sugar.Error(arg...) }
func (z *zapLogger) Fatal(ctx context.Context, arg ...any)  { z.sugar.Fatal(arg...) }
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.sugar.DPanic(arg...) }
func (z *zapLogger) Panic(ctx context.Context, arg ...any)  { z.sugar.Panic(arg...) }

func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.sugar.Debugf(template, arg...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.sugar.Infof(template, arg...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.sugar.Warnf(template, arg...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.sugar.Errorf(template, arg...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.sugar.Fatalf(template, arg...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.sugar.DPanicf(template, arg...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.sugar.Panicf(template, arg...)
}
