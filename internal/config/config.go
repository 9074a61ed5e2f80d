package config

import (
	"github.com/spf13/viper"
)

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// ParserConfig configures the structured parser.
type ParserConfig struct {
	CollectAll bool `mapstructure:"collect_all" yaml:"collect_all"`
}

// Config wraps the entire configuration for the playground CLI.
type Config struct {
	Theme  string       `mapstructure:"theme" yaml:"theme"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`
}

var (
	defaults = map[string]any{
		"theme":              "classic",
		"log.level":          "warn",
		"log.encoding":       "console",
		"parser.collect_all": false,
	}

	// envBindings maps config keys to the environment variables that can set
	// them, without the prefix.
	envBindings = map[string][]string{
		"theme":              {"THEME"},
		"log.level":          {"LOG_LEVEL"},
		"log.encoding":       {"LOG_ENCODING"},
		"parser.collect_all": {"COLLECT_ALL"},
	}
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PLAYGROUND"

// Load builds the config from defaults, the optional file at filePath and the
// PLAYGROUND_* environment. Environment variables override file values.
func Load(filePath string) (*Config, error) {
	return LoadWithPrefix(filePath, EnvPrefix)
}

// LoadWithPrefix is Load reading <prefix>_* environment variables instead.
func LoadWithPrefix(filePath, prefix string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	if err := bindEnvs(v, prefix); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

func bindEnvs(v *viper.Viper, prefix string) error {
	for key, envs := range envBindings {
		inputs := make([]string, 0, len(envs)+1)
		inputs = append(inputs, key)
		for _, env := range envs {
			inputs = append(inputs, prefix+"_"+env)
		}

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
