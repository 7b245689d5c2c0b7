package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "WORDFREQ"
	envFileVar     = "WORDFREQ_ENV_FILE"
	defaultEnvFile = ".env"
)

type Config struct {
	Limits   LimitsConfig `mapstructure:"limits"`
	Output   OutputConfig `mapstructure:"output"`
	LogLevel string       `mapstructure:"log_level"`
}

// LimitsConfig holds the hard input-size limits. Exceeding any of them is
// reported as an error rather than truncated.
type LimitsConfig struct {
	MaxInputBytes int `mapstructure:"max_input_bytes"`
	MaxWords      int `mapstructure:"max_words"`
	MaxWordLen    int `mapstructure:"max_word_len"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Prompt bool   `mapstructure:"prompt"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	// EnvFile is an explicit dotenv path. When empty, WORDFREQ_ENV_FILE or
	// ./.env is tried and a missing file is not an error.
	EnvFile  string
	Defaults Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps each registered flag to the config key it overrides.
var flagKeys = map[string]string{
	"limits-max-input-bytes": "limits.max_input_bytes",
	"limits-max-words":       "limits.max_words",
	"limits-max-word-len":    "limits.max_word_len",
	"format":                 "output.format",
	"prompt":                 "output.prompt",
	"log-level":              "log_level",
}

func DefaultConfig() Config {
	return Config{
		Limits: LimitsConfig{
			MaxInputBytes: 999,
			MaxWords:      1000,
			MaxWordLen:    49,
		},
		Output: OutputConfig{
			Format: FormatText,
			Prompt: true,
		},
		LogLevel: "warn",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("limits-max-input-bytes", defaults.Limits.MaxInputBytes, "Maximum input line length in bytes, excluding the terminator")
	fs.Int("limits-max-words", defaults.Limits.MaxWords, "Maximum number of distinct words")
	fs.Int("limits-max-word-len", defaults.Limits.MaxWordLen, "Maximum word length in bytes")
	fs.String("format", defaults.Output.Format, "Report format (text|json|yaml)")
	fs.Bool("prompt", defaults.Output.Prompt, "Print the input prompt before reading stdin (text format only)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	if err := loadDotEnv(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("wordfreq")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate rejects non-positive limits and unknown output formats. The
// format is canonicalized in place.
func (c *Config) Validate() error {
	if c.Limits.MaxInputBytes <= 0 {
		return fmt.Errorf("limits.max_input_bytes must be positive, got %d", c.Limits.MaxInputBytes)
	}
	if c.Limits.MaxWords <= 0 {
		return fmt.Errorf("limits.max_words must be positive, got %d", c.Limits.MaxWords)
	}
	if c.Limits.MaxWordLen <= 0 {
		return fmt.Errorf("limits.max_word_len must be positive, got %d", c.Limits.MaxWordLen)
	}

	format, err := NormalizeFormat(c.Output.Format)
	if err != nil {
		return err
	}
	c.Output.Format = format

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func loadDotEnv(explicit string) error {
	path := explicit
	if path == "" {
		path = os.Getenv(envFileVar)
	}
	if path == "" {
		path = defaultEnvFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %q: %w", path, err)
	}

	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("limits.max_input_bytes", c.Limits.MaxInputBytes)
	v.SetDefault("limits.max_words", c.Limits.MaxWords)
	v.SetDefault("limits.max_word_len", c.Limits.MaxWordLen)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.prompt", c.Output.Prompt)
	v.SetDefault("log_level", c.LogLevel)
}
