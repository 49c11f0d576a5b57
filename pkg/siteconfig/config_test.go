package siteconfig_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/pkg/carousel"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := siteconfig.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "529992010898", cfg.WhatsApp.Number)
	assert.Equal(t, "es-MX", cfg.Lang())
	assert.Equal(t, carousel.PresentationContinuous, cfg.Presentation())
	assert.Equal(t, 5*time.Second, cfg.Carousel.Interval)
	assert.Equal(t, 100*time.Millisecond, cfg.Carousel.SettleDelay)
	assert.Equal(t, siteconfig.Limit{MaxAttempts: 3, Window: 30 * time.Second}, cfg.Limits.Form)
	assert.Equal(t, siteconfig.Limit{MaxAttempts: 5, Window: time.Minute}, cfg.Limits.Click)
	assert.Equal(t, 80.0, cfg.Scroll.Offset)
	assert.Equal(t, 50.0, cfg.Header.ScrollThreshold)
	assert.Equal(t, "0px 0px -50px 0px", cfg.Reveal.RootMargin)
	assert.Equal(t, `a[href^="#"]`, cfg.Roles.Anchors)
	assert.Equal(t, "Demasiados intentos. Por favor espera un momento.", cfg.Messages.TooManyAttempts)
}

func TestParse_Overlay(t *testing.T) {
	t.Parallel()

	cfg, err := siteconfig.Parse([]byte(`
carousel:
  mode: paged
  interval: 7s
whatsapp:
  number: "+52 999 000 1111"
`))
	require.NoError(t, err)

	assert.Equal(t, carousel.PresentationPaged, cfg.Presentation())
	assert.Equal(t, 7*time.Second, cfg.Carousel.Interval)
	assert.Equal(t, 50.0, cfg.Carousel.SwipeThreshold, "unnamed fields keep their defaults")
	assert.Equal(t, "+52 999 000 1111", cfg.WhatsApp.Number)
	assert.NotEmpty(t, cfg.WhatsApp.Greeting)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := siteconfig.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, siteconfig.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		target   error
		contains string
	}{
		{name: "unknown key", doc: "colour: blue\n", target: siteconfig.ErrDecode, contains: "colour"},
		{name: "malformed yaml", doc: "carousel: [\n", target: siteconfig.ErrDecode},
		{name: "bad duration", doc: "carousel:\n  interval: soon\n", target: siteconfig.ErrDecode},
		{name: "bad locale", doc: "locale: not_a-locale-!!\n", target: siteconfig.ErrInvalidConfig, contains: "locale"},
		{name: "bad number", doc: "whatsapp:\n  number: \"123\"\n", target: siteconfig.ErrInvalidConfig, contains: "whatsapp.number"},
		{name: "bad mode", doc: "carousel:\n  mode: coverflow\n", target: siteconfig.ErrInvalidConfig, contains: "carousel.mode"},
		{name: "zero limit", doc: "limits:\n  form:\n    max_attempts: 0\n", target: siteconfig.ErrInvalidConfig, contains: "limits.form"},
		{name: "empty role", doc: "roles:\n  track: \"\"\n", target: siteconfig.ErrInvalidConfig, contains: "roles.track"},
		{name: "empty message", doc: "messages:\n  framed: \"\"\n", target: siteconfig.ErrInvalidConfig, contains: "messages.framed"},
		{name: "threshold out of range", doc: "reveal:\n  threshold: 2\n", target: siteconfig.ErrInvalidConfig, contains: "reveal.threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := siteconfig.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := siteconfig.Default()
	cfg.Roles.Nav = ""
	cfg.Roles.Modal = ""
	cfg.Limits.Click.Window = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, siteconfig.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "roles.nav")
	assert.Contains(t, err.Error(), "roles.modal")
	assert.Contains(t, err.Error(), "limits.click")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scroll:\n  offset: 96\n"), 0o600))

	cfg, err := siteconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 96.0, cfg.Scroll.Offset)

	_, err = siteconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, siteconfig.ErrDecode)
}

func TestTag_Fallback(t *testing.T) {
	t.Parallel()

	cfg := siteconfig.Default()
	cfg.Locale = "!!"
	assert.Equal(t, "es", cfg.Lang())
}
