package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".depgraph"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for depgraph settings.
const envPrefix = "DEPGRAPH"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	return load(viper.New(), configPath)
}

// LoadConfigWithOverrides is LoadConfig with explicit values applied on top,
// keyed by dotted config key (for example "graph.mode").
func LoadConfigWithOverrides(configPath string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	for k, val := range overrides {
		v.Set(k, val)
	}
	return load(v, configPath)
}

func load(viperCfg *viper.Viper, configPath string) (*Config, error) {
	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("extensions", DefaultExtensions)
	viperCfg.SetDefault("exclude_dirs", []string{})

	viperCfg.SetDefault("syntax.namespace_keyword", DefaultNamespaceKeyword)
	viperCfg.SetDefault("syntax.import_keyword", DefaultImportKeyword)
	viperCfg.SetDefault("syntax.terminator", DefaultTerminator)
	viperCfg.SetDefault("syntax.import_modifiers", DefaultImportModifiers)

	viperCfg.SetDefault("graph.mode", DefaultGraphMode)
	viperCfg.SetDefault("workers", DefaultWorkers)
}
