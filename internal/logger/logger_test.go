package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture points l at a fresh buffer and returns it.
func capture(l *Logger) *bytes.Buffer {
	buf := &bytes.Buffer{}
	l.Logger = l.Output(buf)
	return buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	l := NewLogger("ledger-server")
	buf := capture(l)

	l.Info().Str("doc", "ledger").Msg("stored")

	entry := lastEntry(t, buf)
	assert.Equal(t, "ledger-server", entry["role"])
	assert.Equal(t, "stored", entry["message"])
	assert.Equal(t, "ledger", entry["doc"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewConsoleLogger(t *testing.T) {
	l := NewConsoleLogger("ledgerctl")
	require.NotNil(t, l)

	buf := capture(l)
	l.Warn().Msg("careful")
	assert.Equal(t, "ledgerctl", lastEntry(t, buf)["role"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error().Msg("nobody hears this")

	buf := capture(l)
	l.Error().Msg("still nothing")
	assert.Zero(t, buf.Len())
}

func TestWithLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		wantErr  bool
		infoKept bool
	}{
		{name: "empty keeps current", level: "", infoKept: true},
		{name: "debug", level: "debug", infoKept: true},
		{name: "warn drops info", level: "warn", infoKept: false},
		{name: "unknown", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewLogger("levels")
			buf := capture(base)

			l, err := base.WithLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)

			l.Info().Msg("info line")
			assert.Equal(t, tt.infoKept, buf.Len() > 0)

			buf.Reset()
			l.Error().Msg("error line")
			assert.Contains(t, buf.String(), "error line")
		})
	}
}

func TestGetChildLogger(t *testing.T) {
	parent := NewLogger("parent-role")
	buf := capture(parent)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("scope", "child").Logger()

	child.Info().Msg("from child")
	entry := lastEntry(t, buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "child", entry["scope"])

	parent.Info().Msg("from parent")
	assert.NotContains(t, lastEntry(t, buf), "scope")
}

func TestFromContext(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		zl := zerolog.New(buf).With().Str("trace_id", "abc").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("hi")

		assert.Equal(t, "abc", lastEntry(t, buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).With().Str("trace_id", "req-1").Logger()
	r := httptest.NewRequest(http.MethodGet, "/data", nil)
	r = r.WithContext(zl.WithContext(r.Context()))

	FromRequest(r).Info().Msg("handled")

	assert.Equal(t, "req-1", lastEntry(t, buf)["trace_id"])
}
