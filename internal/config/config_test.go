// File: internal/config/config_test.go
package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "qpft", cfg.Logger.ServiceName)
	assert.Equal(t, 550e-9, cfg.Analyzer.VisibilityWavelength)
	assert.Equal(t, 0.15, cfg.Analyzer.CoherenceLength)
	assert.Equal(t, 1.2, cfg.Analyzer.BarrierHeight)
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, cfg.Analyzer.ConfidenceWeights)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "", cfg.Report.Output)
}

func TestParametersConversion(t *testing.T) {
	cfg := NewDefaultConfig()
	params := cfg.Analyzer.Parameters()

	assert.Equal(t, cfg.Analyzer.Mass, params.Mass)
	assert.Equal(t, cfg.Analyzer.AmbientRFRange, params.AmbientRFRange)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("valid defaults", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad report format", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Report.Format = "xml"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "report.format")
	})

	t.Run("non-positive wavelength", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Analyzer.VisibilityWavelength = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "visibility_wavelength")
	})

	t.Run("checked parameter outside its interval", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Analyzer.CoherenceLength = 3.0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coherence_length")
	})
}

// -- File Loading Tests --

func TestNewConfigFromViper(t *testing.T) {
	yamlConfig := []byte(`
logger:
  level: debug
  format: json
analyzer:
  coherence_length: 0.25
  barrier_height: 2.5
report:
  format: json
`)

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 0.25, cfg.Analyzer.CoherenceLength)
	assert.Equal(t, 2.5, cfg.Analyzer.BarrierHeight)
	// Untouched keys keep their defaults.
	assert.Equal(t, 550e-9, cfg.Analyzer.VisibilityWavelength)
	assert.Equal(t, "json", cfg.Report.Format)
}

func TestNewConfigFromViperRejectsInvalid(t *testing.T) {
	yamlConfig := []byte(`
analyzer:
  mass: 42.0
`)

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

	_, err := NewConfigFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mass")
}
