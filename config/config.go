// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"
	"time"

	"github.com/clipseek/clipseek/constant"
	"github.com/clipseek/clipseek/filesystem"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Clipseek)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Clipseek)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// SearchSettings returns the provider settings the request builder is configured with.
func SearchSettings() search.Settings {
	return search.Settings{
		BaseURL:    viper.GetString(key.APIBaseURL),
		APIVersion: viper.GetString(key.APIVersion),
	}
}

// NetworkTimeout returns the per-request timeout, zero meaning none.
func NetworkTimeout() time.Duration {
	seconds := viper.GetInt(key.NetworkTimeout)
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
