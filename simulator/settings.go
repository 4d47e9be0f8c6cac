// SPDX-License-Identifier: MIT
// Package: lvdeadlock/simulator
//
// settings.go — tunable game constants and their YAML form.
//
// Deterministic defaults (match the classroom game):
//   • Timer              = 60  seconds for level 1
//   • TimerStep          = 5   seconds fewer per level
//   • MinTimer           = 30  seconds floor
//   • PointsPerExecution = 100
//   • TimeBonus          = 10  points per remaining second
//   • MaxProcesses       = 6   for generated levels
//   • Resources          = 3   for generated levels
//   • RetryBudget        = 10  trimming rounds

package simulator

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the game constants.
type Settings struct {
	Timer              int `yaml:"timer"`
	TimerStep          int `yaml:"timer_step"`
	MinTimer           int `yaml:"min_timer"`
	PointsPerExecution int `yaml:"points_per_execution"`
	TimeBonus          int `yaml:"time_bonus"`
	MaxProcesses       int `yaml:"max_processes"`
	Resources          int `yaml:"resources"`
	RetryBudget        int `yaml:"retry_budget"`

	// Random generation ranges: max demand in [1, MaxDemand], total supply
	// per resource in [SupplyMin, SupplyMin+SupplySpread).
	MaxDemand    int `yaml:"max_demand"`
	SupplyMin    int `yaml:"supply_min"`
	SupplySpread int `yaml:"supply_spread"`
}

// DefaultSettings returns the deterministic defaults.
func DefaultSettings() Settings {
	return Settings{
		Timer:              60,
		TimerStep:          5,
		MinTimer:           30,
		PointsPerExecution: 100,
		TimeBonus:          10,
		MaxProcesses:       6,
		Resources:          3,
		RetryBudget:        10,
		MaxDemand:          10,
		SupplyMin:          10,
		SupplySpread:       15,
	}
}

// Validate rejects non-positive durations, sizes and ranges and negative
// point values.
func (s Settings) Validate() error {
	switch {
	case s.Timer <= 0, s.MinTimer <= 0:
		return fmt.Errorf("Validate: timer %d / min_timer %d: %w", s.Timer, s.MinTimer, ErrBadSettings)
	case s.TimerStep < 0:
		return fmt.Errorf("Validate: timer_step %d: %w", s.TimerStep, ErrBadSettings)
	case s.PointsPerExecution < 0, s.TimeBonus < 0:
		return fmt.Errorf("Validate: negative points: %w", ErrBadSettings)
	case s.MaxProcesses <= 0, s.Resources <= 0:
		return fmt.Errorf("Validate: max_processes %d / resources %d: %w", s.MaxProcesses, s.Resources, ErrBadSettings)
	case s.RetryBudget < 0:
		return fmt.Errorf("Validate: retry_budget %d: %w", s.RetryBudget, ErrBadSettings)
	case s.MaxDemand <= 0, s.SupplyMin < 0, s.SupplySpread <= 0:
		return fmt.Errorf("Validate: generation ranges: %w", ErrBadSettings)
	}

	return nil
}

// TimerFor returns the countdown for level: Timer − TimerStep·(level−1),
// never below MinTimer (and never above Timer).
func (s Settings) TimerFor(level int) int {
	t := s.Timer - s.TimerStep*(level-1)
	if t < s.MinTimer {
		t = s.MinTimer
	}
	if t > s.Timer {
		t = s.Timer
	}

	return t
}

// ProcessesFor returns the process count of a generated level:
// level+2, capped at MaxProcesses.
func (s Settings) ProcessesFor(level int) int {
	p := level + 2
	if p > s.MaxProcesses {
		p = s.MaxProcesses
	}

	return p
}

// LoadSettings decodes YAML on top of DefaultSettings, so a file only needs
// the keys it overrides, and validates the result.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, fmt.Errorf("LoadSettings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("LoadSettings: %w", err)
	}

	return s, nil
}

// LoadSettingsFile opens path and calls LoadSettings.
func LoadSettingsFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("LoadSettingsFile: %w", err)
	}
	defer f.Close()

	return LoadSettings(f)
}
