package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestPgxLogger_PromotesSQLFields(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	l.Log(context.Background(), tracelog.LogLevelDebug, "Query", map[string]any{
		"sql":  "SELECT 1",
		"args": []any{1},
		"pid":  uint32(42),
	})

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if rec["component"] != "pgx" || rec["sql"] != "SELECT 1" || rec["message"] != "Query" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["level"] != "debug" {
		t.Fatalf("expected debug level, got %v", rec["level"])
	}
}

func TestPgxLogger_NoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf))
	l.Log(context.Background(), tracelog.LogLevelNone, "ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTraceLevelFor(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
	}
	for in, want := range cases {
		if got := traceLevelFor(in); got != want {
			t.Errorf("traceLevelFor(%s) = %v; want %v", in, got, want)
		}
	}
}
