package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SALES_REPORT"

type Settings struct {
	Input     string `mapstructure:"input" validate:"required"`
	Sheet     string `mapstructure:"sheet"`
	Delimiter string `mapstructure:"delimiter" validate:"required,len=1"`
	Chart     string `mapstructure:"chart" validate:"required,endswith=.png"`
	Report    string `mapstructure:"report" validate:"required"`
	Title     string `mapstructure:"title" validate:"required"`
	TopN      int    `mapstructure:"top_n" validate:"min=1"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	Profile   string `mapstructure:"profile"`
	Profiles  string `mapstructure:"profiles"`
}

// DelimiterRune returns the first rune of Delimiter.
func (s Settings) DelimiterRune() rune {
	for _, r := range s.Delimiter {
		return r
	}
	return ','
}

func (s Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

var defaults = map[string]any{
	"input":     "eCommercePK.csv",
	"sheet":     "",
	"delimiter": ",",
	"chart":     "top_cities_chart.png",
	"report":    "ecommerce_report_enhanced.pdf",
	"title":     "eCommerce Dataset Report - 2025",
	"top_n":     5,
	"log_level": "warn",
	"profile":   "",
	"profiles":  "sales-report.ini",
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"input":     "input",
	"sheet":     "sheet",
	"delimiter": "delimiter",
	"chart":     "chart",
	"report":    "report",
	"title":     "title",
	"top":       "top_n",
	"log-level": "log_level",
	"profile":   "profile",
	"profiles":  "profiles",
}

// Loader resolves Settings from defaults, an optional config file, an
// optional INI profile, environment variables and flags, in increasing order
// of precedence.
type Loader struct {
	v        *viper.Viper
	validate *validator.Validate
}

func NewLoader() *Loader {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, validate: validator.New()}
}

// RegisterFlags defines one flag per setting on fs and binds it.
func (l *Loader) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("input", defaults["input"].(string), "dataset to read (.csv or .xlsx)")
	fs.String("sheet", "", "workbook sheet to read (first sheet when empty)")
	fs.String("delimiter", defaults["delimiter"].(string), "field delimiter of text datasets")
	fs.String("chart", defaults["chart"].(string), "chart image to write")
	fs.String("report", defaults["report"].(string), "PDF report to write")
	fs.String("title", defaults["title"].(string), "report title")
	fs.Int("top", defaults["top_n"].(int), "number of cities and categories to rank")
	fs.String("log-level", defaults["log_level"].(string), "log level (trace, debug, info, warn, error, disabled)")
	fs.String("profile", "", "named profile from the profiles file")
	fs.String("profiles", defaults["profiles"].(string), "INI file holding named profiles")

	for name, key := range flagKeys {
		_ = l.v.BindPFlag(key, fs.Lookup(name))
	}
}

// Load reads configFile when set, merges the selected profile, and validates
// the result.
func (l *Loader) Load(ctx context.Context, configFile string) (*Settings, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if name := l.v.GetString("profile"); name != "" {
		registry, err := NewProfileRegistry(l.v.GetString("profiles"))
		if err != nil {
			return nil, err
		}
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			return nil, err
		}
		overrides := make(map[string]any, len(profile.Settings))
		for k, val := range profile.Settings {
			overrides[k] = val
		}
		if err := l.v.MergeConfigMap(overrides); err != nil {
			return nil, fmt.Errorf("failed to apply profile %s: %w", name, err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := l.Validate(s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every failing field in a single error.
func (l *Loader) Validate(s Settings) error {
	err := l.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate settings: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}
