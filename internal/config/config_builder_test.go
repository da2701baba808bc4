package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-square/square"
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

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Square.AccessToken = "EAAA-token"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them alone.
func TestBuild_LaterSourceWins(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		with(&StructuredConfig{Square: Square{AccessToken: "env", Environment: "production"}}).
		with(&StructuredConfig{Square: Square{AccessToken: "flag"}, Server: Server{AllowedOrigins: []string{"http://a.test"}}}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.Square.AccessToken)
	assert.Equal(t, "production", cfg.Square.Environment)
	assert.Equal(t, 30*time.Second, cfg.Square.Timeout, "default kept")
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress, "default kept")
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.AllowedOrigins)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SQUARE_ACCESS_TOKEN": "env-token",
		"SQUARE_LOCATION_ID":  "env-location",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-token", b.configs[0].Square.AccessToken)
	assert.Equal(t, "env-location", b.configs[0].Square.LocationID)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a parse failure is kept on
// the builder and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "later"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that a .env file feeds withEnv without
// overriding variables that are already set.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SQUARE_LOCATION_ID", "from-process")
	t.Cleanup(func() { _ = os.Unsetenv("SQUARE_ACCESS_TOKEN") })

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("SQUARE_ACCESS_TOKEN=from-dotenv\nSQUARE_LOCATION_ID=from-dotenv\n"), 0o600))

	cfg, err := newConfigBuilder().withDotEnv(p).withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Square.AccessToken)
	assert.Equal(t, "from-process", cfg.Square.LocationID)
}

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env is not
// an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies the flag config lands on the
// builder.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	withArgs(t, "-square-token", "flag-token")

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].Square.AccessToken)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Square.AccessToken = "json-token"
	payload.Log.Level = "warn"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-token", b.configs[1].Square.AccessToken)
	assert.Equal(t, "warn", b.configs[1].Log.Level)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Square.AccessToken = "first"
	last := StructuredJSONConfig{}
	last.Square.AccessToken = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Square.AccessToken)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"missing token", func(c *StructuredConfig) { c.Square.AccessToken = " " }, ErrMissingAccessToken},
		{"unknown environment", func(c *StructuredConfig) { c.Square.Environment = "staging" }, ErrInvalidSquareConfigs},
		{"negative timeout", func(c *StructuredConfig) { c.Square.Timeout = -time.Second }, ErrInvalidSquareConfigs},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"bad address", func(c *StructuredConfig) { c.Server.HTTPAddress = "nowhere" }, ErrInvalidServerConfigs},
		{"zero request timeout", func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, ErrInvalidServerConfigs},
		{"negative sweep interval", func(c *StructuredConfig) { c.Workers.PendingSweepInterval = -time.Second }, ErrInvalidWorkersConfigs},
		{"sweeper without max age", func(c *StructuredConfig) {
			c.Workers = Workers{PendingSweepInterval: time.Minute}
		}, ErrInvalidWorkersConfigs},
		{"sweeper enabled", func(c *StructuredConfig) {
			c.Workers = Workers{PendingSweepInterval: time.Minute, PendingMaxAge: time.Hour}
		}, nil},
		{"bad log level", func(c *StructuredConfig) { c.Log.Level = "loud" }, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestValidate_JoinsErrors verifies that every violation is reported.
func TestValidate_JoinsErrors(t *testing.T) {
	err := (&StructuredConfig{}).validate()

	assert.ErrorIs(t, err, ErrMissingAccessToken)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── client config ─────────────────────────────────────────────────────────────

func TestGetClientConfig_OverridesWin(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SQUARE_ACCESS_TOKEN": "env-token",
		"SQUARE_ENVIRONMENT":  "production",
	})

	cfg, err := GetClientConfig(Square{AccessToken: "flag-token"})

	require.NoError(t, err)
	assert.Equal(t, "flag-token", cfg.AccessToken)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestGetClientConfig_MissingToken(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig(Square{})
	assert.ErrorIs(t, err, ErrMissingAccessToken)
}

func TestSquare_ClientOptions(t *testing.T) {
	opts, err := Square{
		Environment: "production",
		BaseURL:     "http://localhost:9999/v2",
		Timeout:     time.Second,
		MaxRetries:  -1,
	}.ClientOptions()
	require.NoError(t, err)

	c := square.NewClient("token", opts...)
	assert.Equal(t, square.Production, c.Environment())
	assert.Equal(t, "http://localhost:9999/v2", c.BaseURL())

	_, err = Square{Environment: "moon"}.ClientOptions()
	assert.ErrorIs(t, err, square.ErrValidation)
}
