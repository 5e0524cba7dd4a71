package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	cases := map[string]bool{
		"true":   true,
		"TRUE":   true,
		" true ": false,
		"true\n": false,
		"\ttrue": false,
		"True":   true,
		"false":  false,
		"":       false,
		"1":      false,
		"yes":    false,
		"tru":    false,
		"true!":  false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseFlag(in), "input %q", in)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("IMAGE_LOCAL", "")
	t.Setenv("IMAGE_BEST_EFFORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.Image.Local)
	assert.False(t, cfg.Image.BestEffort)
	assert.Equal(t, defaultUploadDir, cfg.Image.UploadDir)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.app, ,https://b.app ")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.app", "https://b.app"}, cfg.CORSAllowedOrigins)
}

func TestLoad_PaddedImageFlagIsFalse(t *testing.T) {
	t.Setenv("IMAGE_LOCAL", " true")
	t.Setenv("IMAGE_BEST_EFFORT", "TRUE")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Image.Local)
	assert.True(t, cfg.Image.BestEffort)
}

func TestLoad_MalformedImageFlagIsFalse(t *testing.T) {
	t.Setenv("IMAGE_LOCAL", "definitely")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Image.Local)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.True(t, cfg.IsProduction())
}
