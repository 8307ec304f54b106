// File: internal/config/config.go

// Package config holds the application configuration, loaded through viper
// from a config file, QPFT_ environment variables, and built-in defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/AtlazReso87/QPFT/internal/analyzer"
)

// Config is the root of the application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer" yaml:"analyzer"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig maps log levels to terminal colors for the console encoder.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" yaml:"fatal"`
}

// AnalyzerConfig supplies the initial values of the analyzer's parameter
// record. The invisibility wavelength, RF range and confidence weights are
// carried but not consumed by any analysis operation.
type AnalyzerConfig struct {
	VisibilityWavelength   float64   `mapstructure:"visibility_wavelength" yaml:"visibility_wavelength"`
	InvisibilityWavelength float64   `mapstructure:"invisibility_wavelength" yaml:"invisibility_wavelength"`
	AmbientRFRange         []float64 `mapstructure:"ambient_rf_range" yaml:"ambient_rf_range"`
	Mass                   float64   `mapstructure:"mass" yaml:"mass"`
	BarrierHeight          float64   `mapstructure:"barrier_height" yaml:"barrier_height"`
	CoherenceLength        float64   `mapstructure:"coherence_length" yaml:"coherence_length"`
	ConfidenceWeights      []float64 `mapstructure:"confidence_weights" yaml:"confidence_weights"`
}

// Parameters converts the config section into the analyzer's typed record.
func (a AnalyzerConfig) Parameters() analyzer.Parameters {
	return analyzer.Parameters{
		VisibilityWavelength:   a.VisibilityWavelength,
		InvisibilityWavelength: a.InvisibilityWavelength,
		AmbientRFRange:         a.AmbientRFRange,
		Mass:                   a.Mass,
		BarrierHeight:          a.BarrierHeight,
		CoherenceLength:        a.CoherenceLength,
		ConfidenceWeights:      a.ConfidenceWeights,
	}
}

// ReportConfig selects the default report destination and encoding.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
	Output string `mapstructure:"output" yaml:"output"` // file path, "" = stdout
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "qpft")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Analyzer parameters --
	defaults := analyzer.DefaultParameters()
	v.SetDefault("analyzer.visibility_wavelength", defaults.VisibilityWavelength)
	v.SetDefault("analyzer.invisibility_wavelength", defaults.InvisibilityWavelength)
	v.SetDefault("analyzer.ambient_rf_range", defaults.AmbientRFRange)
	v.SetDefault("analyzer.mass", defaults.Mass)
	v.SetDefault("analyzer.barrier_height", defaults.BarrierHeight)
	v.SetDefault("analyzer.coherence_length", defaults.CoherenceLength)
	v.SetDefault("analyzer.confidence_weights", defaults.ConfidenceWeights)

	// -- Report --
	v.SetDefault("report.format", "text")
	v.SetDefault("report.output", "")
}

// NewConfigFromViper creates a configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case "text", "json":
	default:
		return fmt.Errorf("report.format must be \"text\" or \"json\", got %q", c.Report.Format)
	}

	if c.Analyzer.VisibilityWavelength <= 0 {
		return fmt.Errorf("analyzer.visibility_wavelength must be positive")
	}

	// The three range-checked parameters must start inside their declared
	// intervals; runtime updates go through the analyzer's own validation.
	checked := map[string]float64{
		analyzer.ParamMass:            c.Analyzer.Mass,
		analyzer.ParamBarrierHeight:   c.Analyzer.BarrierHeight,
		analyzer.ParamCoherenceLength: c.Analyzer.CoherenceLength,
	}
	for name, value := range checked {
		bound, ok := analyzer.BoundFor(name)
		if !ok {
			continue
		}
		if !bound.Contains(value) {
			return fmt.Errorf("analyzer.%s: %g outside permitted range [%g, %g]",
				name, value, bound.Min, bound.Max)
		}
	}
	return nil
}
