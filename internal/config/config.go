package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"folio/internal/animation"
	"folio/internal/calendar"
	"folio/internal/carousel"
	"folio/internal/domain"
	"folio/internal/eventbus"
)

// EnvPrefix prefixes environment overrides, e.g. FOLIO_ANIMATION_DISABLED=true
const EnvPrefix = "FOLIO"

// Config represents the application configuration
type Config struct {
	Version    int               `mapstructure:"version" toml:"version"`
	Calendar   CalendarSettings  `mapstructure:"calendar" toml:"calendar"`
	Carousel   CarouselSettings  `mapstructure:"carousel" toml:"carousel"`
	Animation  AnimationSettings `mapstructure:"animation" toml:"animation"`
	UISettings UISettings        `mapstructure:"ui" toml:"ui"`
}

// CalendarSettings configures the calendar screen
type CalendarSettings struct {
	WeekStart    string `mapstructure:"week_start" toml:"week_start"`
	InitialMonth string `mapstructure:"initial_month" toml:"initial_month,omitempty"` // yyyy-MM, empty for the current month
}

// CarouselSettings configures the carousel screen
type CarouselSettings struct {
	InitialIndex int              `mapstructure:"initial_index" toml:"initial_index"`
	Slides       []carousel.Slide `mapstructure:"slides" toml:"slides"`
}

// AnimationSettings configures page transitions
type AnimationSettings struct {
	Disabled bool           `mapstructure:"disabled" toml:"disabled"`
	FPS      int            `mapstructure:"fps" toml:"fps"`
	Calendar SpringSettings `mapstructure:"calendar" toml:"calendar"`
	Carousel SpringSettings `mapstructure:"carousel" toml:"carousel"`
}

// SpringSettings shapes the spring of one screen
type SpringSettings struct {
	Frequency   float64 `mapstructure:"frequency" toml:"frequency"`
	Damping     float64 `mapstructure:"damping" toml:"damping"`
	MaxDuration string  `mapstructure:"max_duration" toml:"max_duration"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen   bool `mapstructure:"alt_screen" toml:"alt_screen"`
	Mouse       bool `mapstructure:"mouse" toml:"mouse"`
	ShowHelpBar bool `mapstructure:"show_help_bar" toml:"show_help_bar"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/folio/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "folio", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceForPath creates a config service bound to path
func NewConfigServiceForPath(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigServiceForPath(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := read(cs.filePath, true)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := write(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return read(path, false)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	return write(config, path)
}

func read(path string, allowMissing bool) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if !allowMissing {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Carousel.Slides) == 0 {
		cfg.Carousel.Slides = carousel.DefaultSlides()
	}
	cfg.Carousel.Slides = carousel.Normalize(cfg.Carousel.Slides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func write(config *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("calendar.week_start", d.Calendar.WeekStart)
	v.SetDefault("calendar.initial_month", d.Calendar.InitialMonth)
	v.SetDefault("carousel.initial_index", d.Carousel.InitialIndex)
	v.SetDefault("animation.disabled", d.Animation.Disabled)
	v.SetDefault("animation.fps", d.Animation.FPS)
	for name, spring := range map[string]SpringSettings{
		"calendar": d.Animation.Calendar,
		"carousel": d.Animation.Carousel,
	} {
		v.SetDefault("animation."+name+".frequency", spring.Frequency)
		v.SetDefault("animation."+name+".damping", spring.Damping)
		v.SetDefault("animation."+name+".max_duration", spring.MaxDuration)
	}
	v.SetDefault("ui.alt_screen", d.UISettings.AltScreen)
	v.SetDefault("ui.mouse", d.UISettings.Mouse)
	v.SetDefault("ui.show_help_bar", d.UISettings.ShowHelpBar)
	return v
}

// Validate checks values that the screens cannot recover from
func (c *Config) Validate() error {
	if _, ok := calendar.ParseWeekday(c.Calendar.WeekStart); !ok {
		return fmt.Errorf("invalid calendar.week_start %q", c.Calendar.WeekStart)
	}
	if c.Calendar.InitialMonth != "" {
		if _, err := domain.ParseMonth(c.Calendar.InitialMonth); err != nil {
			return fmt.Errorf("invalid calendar.initial_month: %w", err)
		}
	}
	if n := len(c.Carousel.Slides); n > 0 && (c.Carousel.InitialIndex < 0 || c.Carousel.InitialIndex >= n) {
		return fmt.Errorf("carousel.initial_index %d out of range [0, %d]", c.Carousel.InitialIndex, n-1)
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		return fmt.Errorf("animation.fps must be between 1 and 240, got %d", c.Animation.FPS)
	}
	if err := c.Animation.Calendar.validate("animation.calendar"); err != nil {
		return err
	}
	return c.Animation.Carousel.validate("animation.carousel")
}

// validate rejects springs that would never bring a transition to rest
func (s SpringSettings) validate(prefix string) error {
	if s.Frequency <= 0 {
		return fmt.Errorf("%s.frequency must be positive, got %g", prefix, s.Frequency)
	}
	if s.Damping < 0 {
		return fmt.Errorf("%s.damping must not be negative, got %g", prefix, s.Damping)
	}
	d, err := time.ParseDuration(s.MaxDuration)
	if err != nil {
		return fmt.Errorf("invalid %s.max_duration: %w", prefix, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s.max_duration must be positive, got %s", prefix, s.MaxDuration)
	}
	return nil
}

// WeekStart returns the configured first day of the week
func (c *Config) WeekStart() time.Weekday {
	d, _ := calendar.ParseWeekday(c.Calendar.WeekStart)
	return d
}

// InitialMonth returns the configured starting month, or the month of now
func (c *Config) InitialMonth(now time.Time) domain.Month {
	if m, err := domain.ParseMonth(c.Calendar.InitialMonth); err == nil {
		return m
	}
	return domain.MonthOf(now)
}

// CalendarAnimation returns the tween options for month paging
func (c *Config) CalendarAnimation() animation.Options {
	return c.Animation.options(c.Animation.Calendar)
}

// CarouselAnimation returns the tween options for slide paging
func (c *Config) CarouselAnimation() animation.Options {
	return c.Animation.options(c.Animation.Carousel)
}

func (a AnimationSettings) options(s SpringSettings) animation.Options {
	maxDuration, _ := time.ParseDuration(s.MaxDuration)
	return animation.Options{
		FPS:         a.FPS,
		Frequency:   s.Frequency,
		Damping:     s.Damping,
		MaxDuration: maxDuration,
		Disabled:    a.Disabled,
	}
}

func springSettings(o animation.Options) SpringSettings {
	return SpringSettings{
		Frequency:   o.Frequency,
		Damping:     o.Damping,
		MaxDuration: o.MaxDuration.String(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Calendar: CalendarSettings{
			WeekStart: "sunday",
		},
		Carousel: CarouselSettings{
			Slides: carousel.DefaultSlides(),
		},
		Animation: AnimationSettings{
			FPS:      animation.DefaultOptions().FPS,
			Calendar: springSettings(animation.QuickOptions()),
			Carousel: springSettings(animation.DefaultOptions()),
		},
		UISettings: UISettings{
			AltScreen:   true,
			Mouse:       true,
			ShowHelpBar: true,
		},
	}
}
