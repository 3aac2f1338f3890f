package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/valpere/horoscope/internal/horoscope"
)

// EnvPrefix namespaces every environment variable, e.g. HOROSCOPE_SIGN.
const EnvPrefix = "HOROSCOPE"

// Config holds the settings of one horoscope run.
type Config struct {
	Sign    string `mapstructure:"sign"`
	Period  string `mapstructure:"period"`
	Day     string `mapstructure:"day"`
	BaseURL string `mapstructure:"base_url"`

	// Source may be "auto" to detect the horoscope language before translating.
	Source   string   `mapstructure:"source"`
	Target   string   `mapstructure:"target"`
	Services []string `mapstructure:"services"`

	MyMemoryEmail     string `mapstructure:"mymemory_email"`
	GoogleCredentials string `mapstructure:"google_credentials"`
	GoogleProject     string `mapstructure:"google_project"`
	OllamaURL         string `mapstructure:"ollama_url"`
	OllamaModel       string `mapstructure:"ollama_model"`

	// DB is the translation memory path; empty disables it.
	DB               string        `mapstructure:"db"`
	CheckLanguage    bool          `mapstructure:"validate"`
	TranslateTimeout time.Duration `mapstructure:"translate_timeout"`
	LogLevel         string        `mapstructure:"log_level"`

	sign   horoscope.Sign
	period horoscope.Period
	target language.Tag
}

var defaults = map[string]any{
	"sign":               "libra",
	"period":             "daily",
	"day":                "",
	"base_url":           horoscope.DefaultBaseURL,
	"source":             "en",
	"target":             "pt",
	"services":           []string{"mymemory"},
	"mymemory_email":     "",
	"google_credentials": "",
	"google_project":     "",
	"ollama_url":         "http://localhost:11434",
	"ollama_model":       "llama3.2",
	"db":                 "",
	"validate":           false,
	"translate_timeout":  "0s",
	"log_level":          "warn",
}

// Load merges, from highest precedence down: changed flags, HOROSCOPE_* environment
// variables (a .env file is read first if present), the config file, and defaults.
// flags may be nil. A "config" flag, when set, names the config file explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var configFile string
	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" {
				configFile = f.Value.String()
				return
			}
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("horoscope")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.horoscope")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	sign, err := horoscope.ParseSign(c.Sign)
	if err != nil {
		return err
	}
	c.sign = sign

	period, err := horoscope.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	c.period = period

	if c.Day != "" && period != horoscope.Daily {
		return fmt.Errorf("day is only supported for the daily period, got %s", period)
	}

	target, err := language.Parse(c.Target)
	if err != nil {
		return fmt.Errorf("invalid target language %q: %w", c.Target, err)
	}
	c.target = target

	if c.Source != "auto" {
		if _, err := language.Parse(c.Source); err != nil {
			return fmt.Errorf("invalid source language %q: %w", c.Source, err)
		}
	}

	var services []string
	for _, s := range c.Services {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			services = append(services, s)
		}
	}
	if len(services) == 0 {
		return fmt.Errorf("at least one translation service is required")
	}
	c.Services = services

	if c.TranslateTimeout < 0 {
		return fmt.Errorf("translate_timeout must not be negative")
	}
	return nil
}

// Request is the horoscope lookup described by c.
func (c *Config) Request() horoscope.Request {
	return horoscope.Request{Sign: c.sign, Period: c.period, Day: c.Day}
}

// TargetTag is the parsed target language.
func (c *Config) TargetTag() language.Tag {
	return c.target
}
