package env

import (
	"image/color"
	"linecheck/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "../../../config.yaml"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGeneratorConfigFromRepoFile(t *testing.T) {
	cfg, err := NewGeneratorConfigFromYAML(configPath)
	require.NoError(t, err)

	lo, hi := cfg.SlopeRange()
	assert.Equal(t, []float64{-5, 5}, []float64{lo, hi})
	lo, hi = cfg.InterceptRange()
	assert.Equal(t, []float64{-10, 10}, []float64{lo, hi})
	lo, hi = cfg.OffsetRange()
	assert.Equal(t, []float64{1, 5}, []float64{lo, hi})
	assert.Equal(t, 0.65, cfg.OnLineProbability())
	assert.Equal(t, config.ClampStrict, cfg.ClampMode())
	assert.Equal(t, 64, cfg.MaxAttempts())
}

func TestGeneratorConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
generator:
  slope: {min: -1, max: 1}
  intercept: {min: -1, max: 1}
  coord: {min: -1, max: 1}
  offset: {min: 1, max: 2}
  on_line_probability: 0.5
`)

	cfg, err := NewGeneratorConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, config.ClampStrict, cfg.ClampMode())
	assert.Equal(t, 1, cfg.MaxAttempts())
}

func TestGeneratorConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty range",
			body: `
generator:
  slope: {min: 1, max: 1}
  intercept: {min: -1, max: 1}
  coord: {min: -1, max: 1}
  offset: {min: 1, max: 2}
`,
		},
		{
			name: "probability above one",
			body: `
generator:
  slope: {min: -1, max: 1}
  intercept: {min: -1, max: 1}
  coord: {min: -1, max: 1}
  offset: {min: 1, max: 2}
  on_line_probability: 1.5
`,
		},
		{
			name: "unknown clamp mode",
			body: `
generator:
  slope: {min: -1, max: 1}
  intercept: {min: -1, max: 1}
  coord: {min: -1, max: 1}
  offset: {min: 1, max: 2}
  clamp_mode: wrap
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeneratorConfigFromYAML(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestGraphConfigFromRepoFile(t *testing.T) {
	cfg, err := NewGraphConfigFromYAML(configPath)
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Size())
	assert.Equal(t, 32.0, cfg.Padding())
	lo, hi := cfg.Window()
	assert.Equal(t, []float64{-10, 10}, []float64{lo, hi})
	assert.Equal(t, 5, cfg.GridStep())
	assert.Equal(t, color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}, cfg.AxisColor())
	assert.Equal(t, color.RGBA{R: 0x00, G: 0x7b, B: 0xff, A: 0xff}, cfg.LineColor())
	assert.Equal(t, 2.5, cfg.LineWidth())
}

func TestGraphConfigRejectsPadding(t *testing.T) {
	path := writeConfig(t, `
graph:
  size: 60
  padding: 30
  window: {min: -10, max: 10}
  grid_step: 5
`)

	_, err := NewGraphConfigFromYAML(path)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#e74c3c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}, c)

	c, err = parseHexColor("#333")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, c)

	_, err = parseHexColor("#12345")
	assert.Error(t, err)
	_, err = parseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestSessionConfig(t *testing.T) {
	t.Setenv(sessionTTLEnvName, "90m")

	cfg, err := NewSessionConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.TTL())
	assert.Equal(t, 10000, cfg.MaxSessions())

	t.Setenv(sessionTTLEnvName, "soon")
	_, err = NewSessionConfig(configPath)
	assert.Error(t, err)
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")
	t.Setenv(httpCORSOriginsEnvName, "")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())

	assert.Empty(t, cfg.CORSOrigins())

	t.Setenv(httpPortEnvName, "")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestHTTPConfigCORSOrigins(t *testing.T) {
	t.Setenv(httpPortEnvName, "8080")
	t.Setenv(httpCORSOriginsEnvName, " https://a.example , ,https://b.example")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	t.Setenv(httpCORSOriginsEnvName, "*")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}
