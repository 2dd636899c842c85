// Package config loads the calculator's settings. Values are layered:
// built-in defaults, then an optional .bmi.yaml file, then environment
// variables prefixed with BMI_ (BMI_SERVER_PORT, BMI_FORM_UNIT, ...). The
// bare PORT variable is honoured too, as most hosting platforms set it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

// ConfigPathEnv names an extra directory searched for .bmi.yaml.
const ConfigPathEnv = "BMI_CONFIG_PATH"

// Config is the fully resolved configuration.
type Config struct {
	Server ServerConfig
	Form   FormConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Addr returns the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FormConfig holds the values the form is pre-filled with.
type FormConfig struct {
	Weight float64
	Height float64
	Unit   models.HeightUnit
}

// defaultHeightMeters is the height the form starts with when none is
// configured.
const defaultHeightMeters = 1.75

// DefaultHeight returns the default form height expressed in unit, so the
// centimeter form starts at 175 rather than 1.75.
func DefaultHeight(unit models.HeightUnit) float64 {
	if unit == models.HeightUnitCentimeters {
		return defaultHeightMeters * 100
	}
	return defaultHeightMeters
}

// New returns a viper instance with defaults, search paths, and environment
// bindings registered. Callers may bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("form.weight", 70.0)
	v.SetDefault("form.unit", string(models.HeightUnitMeters))

	v.SetConfigName(".bmi") // .yaml is implicit
	v.SetConfigType("yaml")
	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("BMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT only replaces the built-in default; the config file and
	// BMI_SERVER_PORT still win over it.
	if port := os.Getenv("PORT"); port != "" {
		v.SetDefault("server.port", port)
	}

	return v
}

// Load reads the config file (if any) into v and resolves a Config. A
// missing file is not an error; a malformed one is.
func Load(v *viper.Viper) (*Config, error) {
	if file := v.GetString("config"); file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		v.SetConfigFile(expanded)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	unit, err := models.ParseHeightUnit(v.GetString("form.unit"))
	if err != nil {
		return nil, fmt.Errorf("form.unit: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Form: FormConfig{
			Weight: v.GetFloat64("form.weight"),
			Height: DefaultHeight(unit),
			Unit:   unit,
		},
	}

	// form.height has no viper default because its value depends on
	// form.unit; an explicit value is taken as already being in that unit.
	if v.IsSet("form.height") {
		cfg.Form.Height = v.GetFloat64("form.height")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Form.Weight <= 0 || c.Form.Height <= 0 {
		return fmt.Errorf("form defaults must be positive numbers")
	}
	return nil
}
