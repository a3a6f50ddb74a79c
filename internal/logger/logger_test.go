package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e), sc.Text())
		entries = append(entries, e)
	}
	return entries
}

func TestNewLogger_ServerEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "client-keeper-server")

	l.Info().Str("addr", ":3000").Msg("http server started")

	entries := decodeEntries(t, buf.Bytes())
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "client-keeper-server", e["role"])
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, ":3000", e["addr"])
	assert.Contains(t, e, "time")
	// caller пишется полным именем функции
	assert.Contains(t, e["func"], "TestNewLogger_ServerEntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToLogsFile(t *testing.T) {
	dir := t.TempDir()

	l := newLoggerInDir(dir, "client-keeper-client")
	l.Warn().Msg("local session was not removed")
	l.Debug().Str("op", "list clients").Msg("request failed")

	data, err := os.ReadFile(filepath.Join(dir, clientLogFile))
	require.NoError(t, err)

	entries := decodeEntries(t, data)
	require.Len(t, entries, 2)
	assert.Equal(t, "client-keeper-client", entries[0]["role"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "list clients", entries[1]["op"])

	// повторное открытие дописывает, а не затирает
	newLoggerInDir(dir, "client-keeper-client").Info().Msg("restarted")
	data, err = os.ReadFile(filepath.Join(dir, clientLogFile))
	require.NoError(t, err)
	assert.Len(t, decodeEntries(t, data), 3)
}

func TestNewClientLogger_Fallbacks(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")

	assert.NotNil(t, newLoggerInDir(missing, "client-keeper-client"))
	assert.NotNil(t, newLoggerInDir("", "client-keeper-client"))
	assert.NotNil(t, NewClientLogger("client-keeper-client"))
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_TraceFieldStaysInChild(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client-keeper-server")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc-123")
	})

	child.Info().Msg("from request")
	parent.Info().Msg("from server")

	entries := decodeEntries(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0]["trace_id"])
	assert.Equal(t, "client-keeper-server", entries[0]["role"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestFromRequest_CarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(&buf, "client-keeper-server")

	reqLogger := base.GetChildLogger()
	reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "trace-42")
	})

	r := httptest.NewRequest("GET", "/clients", nil)
	r = r.WithContext(reqLogger.WithContext(r.Context()))

	FromRequest(r).Info().Msg("list clients")
	FromContext(r.Context()).Warn().Msg("slow storage")

	entries := decodeEntries(t, buf.Bytes())
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "trace-42", e["trace_id"])
		assert.Equal(t, "client-keeper-server", e["role"])
	}
}

func TestFromContext_WithoutLogger(t *testing.T) {
	// без прикреплённого логгера возвращается непустой логгер по умолчанию
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Debug().Msg("nobody listens") })

	r := httptest.NewRequest("GET", "/", nil)
	assert.NotNil(t, FromRequest(r))
}
