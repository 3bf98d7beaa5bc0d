package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/de-tools/billsplit/pkg/services/allocation"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "BILLSPLIT"

const (
	KeyCurrency      = "currency"
	KeyDiscountBase  = "discount_base"
	KeyFormat        = "format"
	KeyCommentPrefix = "comment_prefix"
)

var settingKeys = []string{KeyCurrency, KeyDiscountBase, KeyFormat, KeyCommentPrefix}

var Formats = []string{"text", "table"}

type Settings struct {
	Currency      string `mapstructure:"currency"`
	DiscountBase  string `mapstructure:"discount_base"`
	Format        string `mapstructure:"format"`
	CommentPrefix string `mapstructure:"comment_prefix"`
}

func Defaults() Settings {
	return Settings{
		Currency:      "$",
		DiscountBase:  string(allocation.BaseSubtotal),
		Format:        "text",
		CommentPrefix: "#",
	}
}

type LoadOptions struct {
	// ConfigPath is an optional settings file (yaml, toml, json, ini...).
	ConfigPath string
	// EnvFile is loaded into the environment before binding. When empty,
	// ".env" is tried and silently skipped if missing.
	EnvFile string
	// ProfilesPath and Profile select a named profile section.
	ProfilesPath string
	Profile      string
	// Flags maps flag names to settings keys. Changed flags win over
	// every other source.
	Flags    *pflag.FlagSet
	FlagKeys map[string]string
}

// Load resolves settings from, lowest first: defaults, the settings file,
// the profile, BILLSPLIT_* environment variables, then flags.
func Load(opts LoadOptions) (*Settings, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	defaults := Defaults()
	v.SetDefault(KeyCurrency, defaults.Currency)
	v.SetDefault(KeyDiscountBase, defaults.DiscountBase)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyCommentPrefix, defaults.CommentPrefix)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigPath != "" {
		v.SetConfigFile(opts.ConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Profile != "" {
		if opts.ProfilesPath == "" {
			return nil, fmt.Errorf("profile %q requested without a profiles file", opts.Profile)
		}
		registry, err := NewRegistry(opts.ProfilesPath)
		if err != nil {
			return nil, err
		}
		values, err := registry.GetProfile(opts.Profile)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to apply profile %s: %w", opts.Profile, err)
		}
	}

	if opts.Flags != nil {
		for flag, key := range opts.FlagKeys {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s Settings) Validate() error {
	if _, err := allocation.ParseDiscountBase(s.DiscountBase); err != nil {
		return err
	}
	if !slices.Contains(Formats, s.Format) {
		return fmt.Errorf("unknown format %q (want one of %v)", s.Format, Formats)
	}
	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
