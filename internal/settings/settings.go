// Package settings resolves CLI preferences from flags, INKUI_* environment variables
// and an optional .inkui.yaml file, in that order of precedence.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/inkui/internal/config"
	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

const (
	envPrefix  = "INKUI"
	configName = ".inkui"

	KeyLogLevel   = "log_level"
	KeyLogJSON    = "log_json"
	KeyWeekStart  = "week_start"
	KeyDateFormat = "date_format"
	KeyTheme      = "theme"
)

// flag name -> settings key
var flagKeys = map[string]string{
	"log-level":   KeyLogLevel,
	"log-json":    KeyLogJSON,
	"week-start":  KeyWeekStart,
	"date-format": KeyDateFormat,
	"theme":       KeyTheme,
}

// Settings are the resolved preferences.
type Settings struct {
	LogLevel   string
	LogJSON    bool
	WeekStart  time.Weekday
	DateFormat string
	Theme      string
	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string
}

// RegisterFlags adds the settings flags to fs. Flag defaults are empty so an
// unset flag never shadows the environment or the config file.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to an inkui settings file")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.Bool("log-json", false, "Write logs as JSON instead of console output")
	fs.String("week-start", "", "First day of the week in calendars")
	fs.String("date-format", "", "Display format for dates, e.g. DD/MM/YYYY")
	fs.String("theme", "", "Color theme (light or dark)")
}

// Loader reads settings through its own viper instance.
type Loader struct {
	v           *viper.Viper
	searchPaths []string
}

// NewLoader creates a loader. With no search paths it looks in the working directory
// and the home directory; INKUI_CONFIG_PATH adds one more.
func NewLoader(searchPaths ...string) *Loader {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyWeekStart, "sunday")
	v.SetDefault(KeyDateFormat, "")
	v.SetDefault(KeyTheme, "dark")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			searchPaths = append(searchPaths, home)
		}
	}
	return &Loader{v: v, searchPaths: searchPaths}
}

// Load binds fs (which may be nil), reads the config file when present and returns
// the validated settings.
func (l *Loader) Load(fs *pflag.FlagSet) (Settings, error) {
	explicit := ""
	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := l.v.BindPFlag(key, flag); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if flag := fs.Lookup("config"); flag != nil {
			explicit = flag.Value.String()
		}
	}

	if explicit != "" {
		l.v.SetConfigFile(explicit)
	} else {
		l.v.SetConfigName(configName)
		l.v.SetConfigType("yaml")
		if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
			l.v.AddConfigPath(override)
		}
		for _, path := range l.searchPaths {
			l.v.AddConfigPath(path)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Settings{}, inkerrors.NewParseError(l.v.ConfigFileUsed(), 0, err)
		}
	}

	return l.resolve()
}

func (l *Loader) resolve() (Settings, error) {
	s := Settings{
		LogLevel:   strings.ToLower(strings.TrimSpace(l.v.GetString(KeyLogLevel))),
		LogJSON:    l.v.GetBool(KeyLogJSON),
		DateFormat: strings.TrimSpace(l.v.GetString(KeyDateFormat)),
		Theme:      strings.ToLower(strings.TrimSpace(l.v.GetString(KeyTheme))),
		ConfigFile: l.v.ConfigFileUsed(),
	}

	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, inkerrors.NewValidationError(KeyLogLevel, fmt.Sprintf("unknown log level %q", s.LogLevel), err)
	}

	day, ok := config.ParseWeekday(l.v.GetString(KeyWeekStart))
	if !ok {
		return Settings{}, inkerrors.NewValidationError(KeyWeekStart,
			fmt.Sprintf("unknown weekday %q", l.v.GetString(KeyWeekStart)), nil)
	}
	s.WeekStart = day

	if s.DateFormat != "" && !config.ValidDateFormat(s.DateFormat) {
		return Settings{}, inkerrors.NewValidationError(KeyDateFormat,
			fmt.Sprintf("format %q cannot represent a full date", s.DateFormat), nil)
	}

	switch s.Theme {
	case "light", "dark":
	default:
		return Settings{}, inkerrors.NewValidationError(KeyTheme, fmt.Sprintf("unknown theme %q", s.Theme), nil)
	}

	return s, nil
}

// Load is a shortcut for NewLoader().Load(fs).
func Load(fs *pflag.FlagSet) (Settings, error) {
	return NewLoader().Load(fs)
}
