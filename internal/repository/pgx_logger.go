package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger forwards pgx trace records to zerolog under component=pgx.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

// Log implements tracelog.Logger. SQL text and args are promoted to typed
// fields; the rest of data is attached as-is.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	event := l.eventFor(level)
	if event == nil {
		return
	}

	for key, val := range data {
		switch key {
		case "sql":
			if s, ok := val.(string); ok {
				event = event.Str("sql", s)
				continue
			}
			event = event.Interface("sql", val)
		case "args":
			event = event.Interface("args", val)
		case "time":
			event = event.Interface("took", val)
		default:
			event = event.Interface(key, val)
		}
	}
	event.Msg(msg)
}

func (l *pgxLogger) eventFor(level tracelog.LogLevel) *zerolog.Event {
	switch level {
	case tracelog.LogLevelNone:
		return nil
	case tracelog.LogLevelTrace:
		return l.logger.Trace()
	case tracelog.LogLevelDebug:
		return l.logger.Debug()
	case tracelog.LogLevelInfo:
		return l.logger.Info()
	case tracelog.LogLevelWarn:
		return l.logger.Warn()
	case tracelog.LogLevelError:
		return l.logger.Error()
	default:
		return l.logger.Info().Str("pgx_log_level", level.String())
	}
}
