// Package config loads staffr's INI configuration file.
//
// Every key is optional. A missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/model"
)

type CapacitySection struct {
	Days        float64 `ini:"days"`
	HoursPerDay float64 `ini:"hours_per_day"`
}

type RevenueSection struct {
	HoursPerDay float64 `ini:"hours_per_day"`
}

type GeneralSection struct {
	Company  string `ini:"company"`
	Currency string `ini:"currency"`
}

type Config struct {
	Capacity CapacitySection `ini:"capacity"`
	Revenue  RevenueSection  `ini:"revenue"`
	General  GeneralSection  `ini:"general"`

	// Holidays replaces the default holiday table when the file has a
	// [holidays] section.
	Holidays calendar.Holidays `ini:"-"`
}

func Default() *Config {
	agg := aggregate.DefaultConfig()
	return &Config{
		Capacity: CapacitySection{Days: agg.OccupationDays, HoursPerDay: agg.OccupationHoursPerDay},
		Revenue:  RevenueSection{HoursPerDay: agg.RevenueHoursPerDay},
		General:  GeneralSection{Company: "Staffr", Currency: "EUR"},
		Holidays: calendar.DefaultHolidays(),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/staffr/staffr.ini, falling back to the
// platform's user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "staffr.ini"
		}
	}
	return filepath.Join(dir, "staffr", "staffr.ini")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return parse(f, cfg)
}

// Parse reads INI data from memory over the defaults.
func Parse(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return parse(f, Default())
}

func parse(f *ini.File, cfg *Config) (*Config, error) {
	for name, dst := range map[string]any{
		"capacity": &cfg.Capacity,
		"revenue":  &cfg.Revenue,
		"general":  &cfg.General,
	} {
		if err := f.Section(name).MapTo(dst); err != nil {
			return nil, fmt.Errorf("config section [%s]: %w", name, err)
		}
	}

	if sec, err := f.GetSection("holidays"); err == nil {
		holidays := make(calendar.Holidays)
		for _, key := range sec.Keys() {
			date := strings.TrimSpace(key.Name())
			if _, err := model.ParseDate(date); err != nil {
				return nil, fmt.Errorf("config [holidays] %q: %w", date, err)
			}
			holidays[date] = key.Value()
		}
		cfg.Holidays = holidays
	}

	return cfg, nil
}

// Aggregate returns the capacity constants for the aggregation engine.
// Non-positive values fall back to the defaults there.
func (c *Config) Aggregate() aggregate.Config {
	return aggregate.Config{
		OccupationDays:        c.Capacity.Days,
		OccupationHoursPerDay: c.Capacity.HoursPerDay,
		RevenueHoursPerDay:    c.Revenue.HoursPerDay,
	}
}
