package cliconfig

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/stockroom/pkg/log"
)

// NewLogger builds the side-channel logger described by cfg, writing to w.
// Console output is human readable; json emits one object per line.
func NewLogger(cfg Config, w io.Writer) (*log.ZerologAdapter, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log-level: %w", err)
	}
	switch cfg.LogFormat {
	case "", "console":
		return log.NewZerologAdapter(w, level), nil
	case "json":
		zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
		return log.NewZerologAdapterWithLogger(zl), nil
	default:
		return nil, fmt.Errorf("unknown log-format %q", cfg.LogFormat)
	}
}
