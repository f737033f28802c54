// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sgl1d/fault"
)

// EnvPrefix is prepended to every environment override (SGL1D_LOG_LEVEL, ...).
const EnvPrefix = "SGL1D"

// ErrInvalidSettings is wrapped by every Settings validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Setting keys shared by viper, flags and the environment.
const (
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyOutputDir   = "output_dir"
	KeyWorkers     = "workers"
	KeyEigenMethod = "eigen_method"
)

// Settings are the application knobs of the sgl1d command.
type Settings struct {
	LogLevel    string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat   string `mapstructure:"log_format" validate:"required,oneof=text json"`
	OutputDir   string `mapstructure:"output_dir" validate:"required"`
	Workers     int    `mapstructure:"workers" validate:"gte=0"`
	EigenMethod string `mapstructure:"eigen_method" validate:"omitempty,oneof=bisection ql"`
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyWorkers, 0) // 0 = GOMAXPROCS
	v.SetDefault(KeyEigenMethod, "")
}

// NewViper returns a viper instance with defaults and SGL1D_ environment
// overrides enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadSettings reads the optional settings file at path into v and
// returns the validated settings. Flags bound to v take precedence over
// the environment, which takes precedence over the file.
func LoadSettings(v *viper.Viper, path string) (Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fault.Configuration("config", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fault.Configuration("config", path, fmt.Errorf("%w: %w", ErrInvalidSettings, err))
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	s.LogFormat = strings.ToLower(s.LogFormat)

	if err := validate.Struct(s); err != nil {
		return Settings{}, errors.Join(fieldErrors(err, ErrInvalidSettings)...)
	}

	return s, nil
}
