package risk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rulebook carries the static, documented reference values the engine
// evaluates against. The numbers are explainable policy defaults, never
// learned or fetched from AI output. A YAML file may override them.
type Rulebook struct {
	RulebookID string     `yaml:"rulebook_id"`
	Version    string     `yaml:"version"`
	Thresholds Thresholds `yaml:"thresholds"`
	// Severities overrides the per-rule severity delta by tag.
	Severities map[string]int `yaml:"severities"`
	// AssumeNightTransit is a static assumption that matatu and bus
	// routes run at night on major corridors. Not live data.
	AssumeNightTransit *bool `yaml:"assume_night_transit"`
}

type Thresholds struct {
	// NightCommuteMinutes is the commute length above which a night
	// return adds exposure.
	NightCommuteMinutes int `yaml:"night_commute_minutes"`
	// ExtendedCommuteMinutes is the length above which any commute adds
	// exposure regardless of return time.
	ExtendedCommuteMinutes int `yaml:"extended_commute_minutes"`
}

func DefaultRulebook() Rulebook {
	transit := true
	return Rulebook{
		RulebookID: "makao-default",
		Version:    "2026-08",
		Thresholds: Thresholds{
			NightCommuteMinutes:    30,
			ExtendedCommuteMinutes: 90,
		},
		AssumeNightTransit: &transit,
	}
}

// LoadRulebook reads a YAML rulebook, filling unset values from the
// defaults so a partial file only overrides what it names.
func LoadRulebook(path string) (Rulebook, error) {
	// #nosec G304 -- path comes from operator-configured rulebook path.
	data, err := os.ReadFile(path)
	if err != nil {
		return Rulebook{}, err
	}

	rb := DefaultRulebook()
	if err := yaml.Unmarshal(data, &rb); err != nil {
		return Rulebook{}, fmt.Errorf("parse rulebook: %w", err)
	}
	if rb.Thresholds.NightCommuteMinutes <= 0 {
		rb.Thresholds.NightCommuteMinutes = DefaultRulebook().Thresholds.NightCommuteMinutes
	}
	if rb.Thresholds.ExtendedCommuteMinutes <= 0 {
		rb.Thresholds.ExtendedCommuteMinutes = DefaultRulebook().Thresholds.ExtendedCommuteMinutes
	}
	return rb, nil
}

func (rb Rulebook) nightTransit() bool {
	if rb.AssumeNightTransit == nil {
		return true
	}
	return *rb.AssumeNightTransit
}

func (rb Rulebook) severity(tag string, fallback int) int {
	if v, ok := rb.Severities[tag]; ok {
		return v
	}
	return fallback
}
