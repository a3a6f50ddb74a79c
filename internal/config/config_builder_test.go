package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// testBuilder returns a builder that parses args with a private flag set.
func testBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flags = flag.NewFlagSet("test", flag.ContinueOnError)
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config keeps its
// non-zero fields and a later one only fills the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "flags", HashKey: "flags-key"}},
		&StructuredConfig{App: App{TokenIssuer: "json", TokenSignKey: "json-sign"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.TokenIssuer)
	assert.Equal(t, "flags-key", cfg.App.HashKey)
	assert.Equal(t, "json-sign", cfg.App.TokenSignKey)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_Precedence_EnvOverFlagsOverJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "http://json:3000"
	payload.Adapter.RequestTimeout = Duration(5 * time.Second)
	payload.Workers.RefreshInterval = Duration(2 * time.Minute)
	payload.Storage.ClientDB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("API_URL", "http://env:3000")

	cfg, err := testBuilder("-c", path, "-local-db", "flags.db", "-request-timeout", "7s").
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://env:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flags.db", cfg.Storage.ClientDB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestBuilder_FlagErrorIsReported(t *testing.T) {
	_, err := testBuilder("-unknown").withEnv().withFlags().withJSON().build()
	require.Error(t, err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TOKEN_ISSUER", "env-issuer")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:3000")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "localhost:6379", b.configs[0].Storage.Redis.Address)
	assert.Equal(t, "0.0.0.0:3000", b.configs[0].Server.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the env path wins over the flag path.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.TokenIssuer = "first"
	second := StructuredJSONConfig{}
	second.App.TokenIssuer = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.TokenIssuer)
}
