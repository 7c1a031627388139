package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter writes timestamped JSON lines to w, dropping everything
// below level. An empty level means info.
func NewZerologAdapter(w io.Writer, level string) (*ZerologAdapter, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("invalid log level %q; %w", level, err)
		}
	}
	return &ZerologAdapter{
		logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}, nil
}

func (z *ZerologAdapter) Trace(msg string) {
	z.logger.Trace().Msg(msg)
}

func (z *ZerologAdapter) Debug(msg string) {
	z.logger.Debug().Msg(msg)
}

func (z *ZerologAdapter) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *ZerologAdapter) Error(msg string) {
	z.logger.Error().Msg(msg)
}

func (z *ZerologAdapter) Fatal(msg string) {
	z.logger.Fatal().Msg(msg)
}

func (z *ZerologAdapter) With(key string, value string) Logger {
	return &ZerologAdapter{
		logger: z.logger.With().Str(key, value).Logger(),
	}
}
