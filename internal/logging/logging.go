// Package logging builds the zap logger and routes user notices into it.
package logging

import (
	"fmt"

	"github.com/rentwear/storefront/internal/port"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console logger when format is "console".
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("zapcore.ParseLevel: %w", err)
	}

	var cfg zap.Config
	switch format {
	case "json", "":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("log format[%s] is not valid", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("cfg.Build: %w", err)
	}
	return logger, nil
}

// Notifier writes notices as info entries.
type Notifier struct {
	logger *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Notify(notice port.Notice) {
	fields := make([]zap.Field, 0, len(notice.Fields)+1)
	fields = append(fields, zap.String("kind", notice.Kind))
	for k, v := range notice.Fields {
		fields = append(fields, zap.String(k, v))
	}
	n.logger.Info(notice.Message, fields...)
}
