package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.InfoLevel)

	log.Info().Int(FieldYears, 3).Msg("report built")

	out := buf.String()
	if !strings.Contains(out, "report built") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"years":3`) {
		t.Errorf("output missing years field: %s", out)
	}
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %s", buf.String())
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		quiet, verbose bool
		want           zerolog.Level
	}{
		{false, false, zerolog.InfoLevel},
		{false, true, zerolog.DebugLevel},
		{true, false, zerolog.WarnLevel},
		{true, true, zerolog.WarnLevel},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.quiet, tt.verbose); got != tt.want {
			t.Errorf("LevelFor(%v, %v) = %v, want %v", tt.quiet, tt.verbose, got, tt.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, zerolog.InfoLevel))

	l := FromContext(ctx)
	l.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected message via context logger, got: %s", buf.String())
	}
}

func TestFromContext_Missing(t *testing.T) {
	l := FromContext(context.Background())
	if l.GetLevel() != zerolog.Disabled {
		t.Errorf("missing logger level = %v, want disabled", l.GetLevel())
	}
}

func TestComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	l := Component(NewWithWriter(buf, zerolog.InfoLevel), "server")
	l.Info().Msg("up")

	if !strings.Contains(buf.String(), `"component":"server"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}
