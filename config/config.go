package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dnldd/candleplugin/chart"
	"github.com/dnldd/candleplugin/series"
	"github.com/dnldd/candleplugin/shared"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// Environment variables the settings are read from.
	envAnimation     = "CANDLE_ANIMATION"
	envNavigator     = "CANDLE_NAVIGATOR"
	envScrollbar     = "CANDLE_SCROLLBAR"
	envRangeButtons  = "CANDLE_RANGE_BUTTONS"
	envRangeSelected = "CANDLE_RANGE_SELECTED"
	envReadiness     = "CANDLE_READINESS"
	envLogLevel      = "CANDLE_LOG_LEVEL"
)

// Settings is the configuration of a widget instance.
type Settings struct {
	// Animation toggles chart animation.
	Animation bool
	// Navigator toggles the chart navigator.
	Navigator bool
	// Scrollbar toggles the chart scrollbar.
	Scrollbar bool
	// RangeButtons are the range selector presets.
	RangeButtons []string
	// RangeSelected is the index of the initially selected range button, -1 for none.
	RangeSelected int
	// Readiness is the readiness policy name.
	Readiness string
	// LogLevel is the logging verbosity.
	LogLevel string
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Animation:     true,
		Navigator:     true,
		Scrollbar:     true,
		RangeSelected: chart.NoSelection,
		Readiness:     series.Lenient.String(),
		LogLevel:      zerolog.InfoLevel.String(),
	}
}

// Validate asserts the settings are sane.
func (s *Settings) Validate() error {
	var errs error

	buttons, err := chart.ParseRangeButtons(s.RangeButtons)
	if err != nil {
		errs = errors.Join(errs, err)
	}
	if s.RangeSelected < chart.NoSelection {
		errs = errors.Join(errs, fmt.Errorf("range selection cannot be below %d", chart.NoSelection))
	}
	if err == nil && len(buttons) > 0 && s.RangeSelected >= len(buttons) {
		errs = errors.Join(errs, fmt.Errorf("range selection %d out of bounds for %d buttons",
			s.RangeSelected, len(buttons)))
	}
	_, err = series.ParsePolicy(s.Readiness)
	if err != nil {
		errs = errors.Join(errs, err)
	}
	_, err = zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("parsing log level: %w", err))
	}

	if errs != nil {
		return errors.Join(shared.ErrInvalidSettings, errs)
	}

	return nil
}

// Chart returns the cosmetic chart settings.
func (s *Settings) Chart() (chart.Settings, error) {
	buttons, err := chart.ParseRangeButtons(s.RangeButtons)
	if err != nil {
		return chart.Settings{}, fmt.Errorf("%w: %v", shared.ErrInvalidSettings, err)
	}

	return chart.Settings{
		Animation:     s.Animation,
		Navigator:     s.Navigator,
		Scrollbar:     s.Scrollbar,
		RangeButtons:  buttons,
		RangeSelected: s.RangeSelected,
	}, nil
}

// Policy returns the readiness policy.
func (s *Settings) Policy() (series.Policy, error) {
	policy, err := series.ParsePolicy(s.Readiness)
	if err != nil {
		return series.Lenient, fmt.Errorf("%w: %v", shared.ErrInvalidSettings, err)
	}

	return policy, nil
}

// Level returns the logging level.
func (s *Settings) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("%w: %v", shared.ErrInvalidSettings, err)
	}

	return level, nil
}

// lookupBool reads a boolean environment variable into the provided value.
func lookupBool(name string, value *bool) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s: parsing bool: %w", name, err)
	}
	*value = b

	return nil
}

// lookupInt reads an integer environment variable into the provided value.
func lookupInt(name string, value *int) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: parsing int: %w", name, err)
	}
	*value = n

	return nil
}

// lookupString reads a string environment variable into the provided value.
func lookupString(name string, value *string) {
	raw, ok := os.LookupEnv(name)
	if ok && raw != "" {
		*value = raw
	}
}

// lookupList reads a comma separated environment variable into the provided value.
func lookupList(name string, value *[]string) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return
	}

	items := strings.Split(raw, ",")
	list := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	*value = list
}

// Load loads the settings from the environment, using the provided .env file to fill in
// variables that are not already set. The file is optional.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := Default()

	var errs error
	errs = errors.Join(errs, lookupBool(envAnimation, &cfg.Animation))
	errs = errors.Join(errs, lookupBool(envNavigator, &cfg.Navigator))
	errs = errors.Join(errs, lookupBool(envScrollbar, &cfg.Scrollbar))
	errs = errors.Join(errs, lookupInt(envRangeSelected, &cfg.RangeSelected))
	lookupList(envRangeButtons, &cfg.RangeButtons)
	lookupString(envReadiness, &cfg.Readiness)
	lookupString(envLogLevel, &cfg.LogLevel)
	if errs != nil {
		return nil, errors.Join(shared.ErrInvalidSettings, errs)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
