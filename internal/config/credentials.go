package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// APIKeyVar is the variable holding the OpenWeatherMap credential.
const APIKeyVar = "OPENWEATHER_API_KEY"

// ErrAPIKeyNotFound is returned when no source yields a credential.
var ErrAPIKeyNotFound = errors.New(APIKeyVar + " not found")

// Source is one place a credential may come from.
type Source interface {
	Name() string
	// Lookup returns "" with a nil error when the key is simply absent.
	Lookup(key string) (string, error)
}

// EnvSource reads the process environment.
type EnvSource struct{}

func (EnvSource) Name() string { return "environment" }

func (EnvSource) Lookup(key string) (string, error) {
	return strings.TrimSpace(os.Getenv(key)), nil
}

// DotEnvSource reads a local KEY=VALUE file. A missing file yields no value.
type DotEnvSource struct {
	Path string
}

func (s DotEnvSource) Name() string { return s.Path }

func (s DotEnvSource) Lookup(key string) (string, error) {
	if _, err := os.Stat(s.Path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return strings.TrimSpace(v.GetString(key)), nil
}

// DefaultSources is the environment first, then ./.env.
func DefaultSources() []Source {
	return []Source{EnvSource{}, DotEnvSource{Path: ".env"}}
}

// ResolveAPIKey tries each source in order and returns the first non-empty key.
// A source that fails to read is skipped; its error is reported only when no
// later source succeeds either.
func ResolveAPIKey(sources ...Source) (string, error) {
	var errs []error
	for _, src := range sources {
		key, err := src.Lookup(APIKeyVar)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if key != "" {
			return key, nil
		}
	}
	return "", errors.Join(append([]error{ErrAPIKeyNotFound}, errs...)...)
}
