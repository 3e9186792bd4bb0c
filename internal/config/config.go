// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file, SPROUTLY_* environment variables and command-line flags,
// in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"sproutly/internal/splash"
	"sproutly/internal/styles"
)

const (
	EnvPrefix = "SPROUTLY"

	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

type Splash struct {
	FactInterval  time.Duration `mapstructure:"fact_interval" validate:"gt=0"`
	NameDelay     time.Duration `mapstructure:"name_delay" validate:"gt=0"`
	TypeInterval  time.Duration `mapstructure:"type_interval" validate:"gt=0"`
	FinishDelay   time.Duration `mapstructure:"finish_delay" validate:"gt=0"`
	FrameInterval time.Duration `mapstructure:"frame_interval" validate:"gt=0"`
}

type Config struct {
	Theme      string        `mapstructure:"theme" validate:"oneof=light dark auto"`
	SkipSplash bool          `mapstructure:"skip_splash"`
	Seed       int64         `mapstructure:"seed"`
	Width      int           `mapstructure:"width" validate:"min=40,max=120"`
	LogFile    string        `mapstructure:"log_file"`
	LogLevel   string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ReplyDelay time.Duration `mapstructure:"reply_delay" validate:"gt=0"`
	Splash     Splash        `mapstructure:"splash"`
}

// Timings converts the splash section for the loading screen
func (c Config) Timings() splash.Timings {
	return splash.Timings{
		FactInterval:  c.Splash.FactInterval,
		NameDelay:     c.Splash.NameDelay,
		TypeInterval:  c.Splash.TypeInterval,
		FinishDelay:   c.Splash.FinishDelay,
		FrameInterval: c.Splash.FrameInterval,
	}
}

// Dark resolves the starting theme. detect is consulted only for "auto";
// nil means styles.DetectDark.
func (c Config) Dark(detect func() bool) bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeAuto:
		if detect == nil {
			detect = styles.DetectDark
		}
		return detect()
	default:
		return false
	}
}

func setDefaults(v *viper.Viper) {
	t := splash.DefaultTimings()
	v.SetDefault("theme", ThemeLight)
	v.SetDefault("skip_splash", false)
	v.SetDefault("seed", 0)
	v.SetDefault("width", styles.DefaultCardWidth)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("reply_delay", time.Second)
	v.SetDefault("splash.fact_interval", t.FactInterval)
	v.SetDefault("splash.name_delay", t.NameDelay)
	v.SetDefault("splash.type_interval", t.TypeInterval)
	v.SetDefault("splash.finish_delay", t.FinishDelay)
	v.SetDefault("splash.frame_interval", t.FrameInterval)
}

// Loader owns one viper instance. Flags are bound by the caller through
// Viper() before Load.
type Loader struct {
	v       *viper.Viper
	file    string
	envFile string
}

func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &Loader{v: v, envFile: ".env"}
}

func (l *Loader) Viper() *viper.Viper { return l.v }

// SetConfigFile selects an explicit YAML file; it must exist.
func (l *Loader) SetConfigFile(path string) { l.file = path }

// SetEnvFile selects the dotenv file; a missing file is ignored.
func (l *Loader) SetEnvFile(path string) { l.envFile = path }

// DefaultConfigFile is $XDG_CONFIG_HOME/sproutly/config.yaml
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sproutly", "config.yaml")
}

func (l *Loader) Load() (Config, error) {
	if l.envFile != "" {
		// godotenv never overrides variables already set
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", l.envFile, err)
		}
	}

	file := l.file
	if file == "" {
		if def := DefaultConfigFile(); def != "" {
			if _, err := os.Stat(def); err == nil {
				file = def
			}
		}
	}
	if file != "" {
		l.v.SetConfigFile(file)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load resolves configuration without flags
func Load() (Config, error) {
	return NewLoader().Load()
}

func Default() Config {
	t := splash.DefaultTimings()
	return Config{
		Theme:      ThemeLight,
		Width:      styles.DefaultCardWidth,
		LogLevel:   "info",
		ReplyDelay: time.Second,
		Splash: Splash{
			FactInterval:  t.FactInterval,
			NameDelay:     t.NameDelay,
			TypeInterval:  t.TypeInterval,
			FinishDelay:   t.FinishDelay,
			FrameInterval: t.FrameInterval,
		},
	}
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

// Validate reports every invalid field by its config key
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", key, describe(fe)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of %s, got %q", strings.ReplaceAll(fe.Param(), " ", "|"), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("must be positive, got %v", fe.Value())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
