// Package config loads jay's settings from defaults, an optional YAML file,
// JAY_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/kittclouds/jay/internal/store"
	"github.com/kittclouds/jay/pkg/chat"
	"github.com/kittclouds/jay/pkg/matcher"
	"github.com/kittclouds/jay/pkg/textnorm"
)

const envPrefix = "JAY"

type Config struct {
	KnowledgeBase KnowledgeBaseConfig `yaml:"knowledge_base" mapstructure:"knowledge_base"`
	Language      string              `yaml:"language" mapstructure:"language"`
	BotName       string              `yaml:"bot_name" mapstructure:"bot_name"`
	UserName      string              `yaml:"user_name" mapstructure:"user_name"`
	Matcher       MatcherConfig       `yaml:"matcher" mapstructure:"matcher"`
	Sentiment     SentimentConfig     `yaml:"sentiment" mapstructure:"sentiment"`
	Commands      chat.CommandTable   `yaml:"commands" mapstructure:"commands"`
	Replies       chat.Replies        `yaml:"replies" mapstructure:"replies"`
	LexiconPath   string              `yaml:"lexicon_path" mapstructure:"lexicon_path"`
	LogLevel      string              `yaml:"log_level" mapstructure:"log_level"`
}

type KnowledgeBaseConfig struct {
	Path    string `yaml:"path" mapstructure:"path"`
	Backend string `yaml:"backend" mapstructure:"backend"`
}

type MatcherConfig struct {
	Threshold    float64 `yaml:"threshold" mapstructure:"threshold"`
	RefitOnLearn bool    `yaml:"refit_on_learn" mapstructure:"refit_on_learn"`
}

type SentimentConfig struct {
	PositiveThreshold float64 `yaml:"positive_threshold" mapstructure:"positive_threshold"`
	NegativeThreshold float64 `yaml:"negative_threshold" mapstructure:"negative_threshold"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"kb":      "knowledge_base.path",
	"backend": "knowledge_base.backend",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("knowledge_base.path", "knowledge_base.json")
	v.SetDefault("knowledge_base.backend", string(store.BackendJSON))
	v.SetDefault("language", "french")
	v.SetDefault("bot_name", "Jay")
	v.SetDefault("user_name", "Hikari")
	v.SetDefault("matcher.threshold", matcher.DefaultThreshold)
	v.SetDefault("matcher.refit_on_learn", false)
	v.SetDefault("sentiment.positive_threshold", chat.DefaultPositiveThreshold)
	v.SetDefault("sentiment.negative_threshold", chat.DefaultNegativeThreshold)
	v.SetDefault("commands", map[string][]string{
		string(chat.CommandQuit):  {"quit"},
		string(chat.CommandTeach): {"apprendre"},
		string(chat.CommandSkip):  {"passer"},
	})
	v.SetDefault("lexicon_path", "")
	v.SetDefault("log_level", "warn")
}

// Load reads the configuration. An explicit file must exist; otherwise
// config.yaml is looked up in ".", $XDG_CONFIG_HOME/jay and ~/.config/jay
// and is optional. Flags that were set on the command line win.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "jay"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "jay"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StoreOptions returns the knowledge store settings.
func (c *Config) StoreOptions() (store.Options, error) {
	backend, err := store.ParseBackend(c.KnowledgeBase.Backend)
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{Backend: backend, Path: c.KnowledgeBase.Path}, nil
}

// SessionOptions returns the chat session settings.
func (c *Config) SessionOptions() chat.Options {
	return chat.Options{
		UserName:          c.UserName,
		Commands:          c.Commands,
		Replies:           c.Replies,
		PositiveThreshold: c.Sentiment.PositiveThreshold,
		NegativeThreshold: c.Sentiment.NegativeThreshold,
		RefitOnLearn:      c.Matcher.RefitOnLearn,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.KnowledgeBase.Path == "" {
		return fmt.Errorf("config: knowledge_base.path is required")
	}
	if _, err := store.ParseBackend(c.KnowledgeBase.Backend); err != nil {
		return fmt.Errorf("config: knowledge_base.backend: %w", err)
	}
	if !textnorm.Supported(c.Language) {
		return fmt.Errorf("config: unsupported language %q", c.Language)
	}
	if c.BotName == "" {
		return fmt.Errorf("config: bot_name is required")
	}
	if c.UserName == "" {
		return fmt.Errorf("config: user_name is required")
	}
	if c.Matcher.Threshold <= 0 || c.Matcher.Threshold >= 1 {
		return fmt.Errorf("config: matcher.threshold must be in (0, 1), got %v", c.Matcher.Threshold)
	}
	pos, neg := c.Sentiment.PositiveThreshold, c.Sentiment.NegativeThreshold
	if pos <= 0 || pos >= 1 {
		return fmt.Errorf("config: sentiment.positive_threshold must be in (0, 1), got %v", pos)
	}
	if neg <= -1 || neg >= 0 {
		return fmt.Errorf("config: sentiment.negative_threshold must be in (-1, 0), got %v", neg)
	}
	if err := c.Commands.Validate(); err != nil {
		return fmt.Errorf("config: commands: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}
