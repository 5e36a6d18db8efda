// Package simconfig holds the externally tunable knobs of the simulation
// core, following the Default()-factory / JSON-file-load pattern used by the
// teacher's internal/combat/config package.
package simconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds every recognised simulation option.
type Config struct {
	mu sync.RWMutex

	MaxNPCs         int     `json:"max_npcs" yaml:"max_npcs"`
	InitialGameTime float64 `json:"initial_game_time" yaml:"initial_game_time"`

	EmotionDecayRate float64 `json:"emotion_decay_rate" yaml:"emotion_decay_rate"`
	EventImpactScale float64 `json:"event_impact_scale" yaml:"event_impact_scale"`

	MaxRecentMemories int `json:"max_recent_memories" yaml:"max_recent_memories"`

	InteractionRate             float64 `json:"interaction_rate" yaml:"interaction_rate"`
	MaxInteractionsPerLocation  int     `json:"max_interactions_per_location" yaml:"max_interactions_per_location"`
	MinEnergyForInteraction     float64 `json:"min_energy_for_interaction" yaml:"min_energy_for_interaction"`

	RelationshipDecayRate  float64 `json:"relationship_decay_rate" yaml:"relationship_decay_rate"`
	RelationshipDeltaScale float64 `json:"relationship_delta_scale" yaml:"relationship_delta_scale"`

	EnergyDrainPerTick       float64 `json:"energy_drain_per_tick" yaml:"energy_drain_per_tick"`
	EnergyRegenBase          float64 `json:"energy_regen_base" yaml:"energy_regen_base"`
	HealthRegenRate          float64 `json:"health_regen_rate" yaml:"health_regen_rate"`
	DangerHealthDrain        float64 `json:"danger_health_drain" yaml:"danger_health_drain"`
	DangerSafetyThreshold    float64 `json:"danger_safety_threshold" yaml:"danger_safety_threshold"`
	HealthEnergyCapThreshold float64 `json:"health_energy_cap_threshold" yaml:"health_energy_cap_threshold"`

	SocialBlendRate  float64 `json:"social_blend_rate" yaml:"social_blend_rate"`
	SocialDecayRate  float64 `json:"social_decay_rate" yaml:"social_decay_rate"`
	SocialEventScale float64 `json:"social_event_scale" yaml:"social_event_scale"`

	MoveProbabilityBase  float64 `json:"move_probability_base" yaml:"move_probability_base"`
	TravelEnergyPerHour  float64 `json:"travel_energy_per_hour" yaml:"travel_energy_per_hour"`
	EnvironmentBlendRate float64 `json:"environment_blend_rate" yaml:"environment_blend_rate"`
}

// Default returns a Config populated with the simulation's documented
// defaults.
func Default() *Config {
	return &Config{
		MaxNPCs:         1000,
		InitialGameTime: 0,

		EmotionDecayRate: 0.05,
		EventImpactScale: 1.0,

		MaxRecentMemories: 10,

		InteractionRate:            0.3,
		MaxInteractionsPerLocation: 10,
		MinEnergyForInteraction:    0.1,

		RelationshipDecayRate:  0.01,
		RelationshipDeltaScale: 1.0,

		EnergyDrainPerTick:       0.01,
		EnergyRegenBase:          0.03,
		HealthRegenRate:          0.005,
		DangerHealthDrain:        0.02,
		DangerSafetyThreshold:    0.3,
		HealthEnergyCapThreshold: 0.5,

		SocialBlendRate:  0.2,
		SocialDecayRate:  0.05,
		SocialEventScale: 1.0,

		MoveProbabilityBase:  0.2,
		TravelEnergyPerHour:  0.02,
		EnvironmentBlendRate: 0.5,
	}
}

// LoadFromFile loads a Config from a JSON or YAML file (dispatched on
// extension), layered onto Default() so unset fields keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	return cfg, nil
}

// Reload re-reads path and atomically replaces c's fields, for parity with
// the teacher's hot-reload idiom.
func (c *Config) Reload(path string) error {
	fresh, err := LoadFromFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Copy every exported field, leaving c.mu (held above) in place.
	dst := reflect.ValueOf(c).Elem()
	src := reflect.ValueOf(fresh).Elem()
	for i := 0; i < dst.NumField(); i++ {
		if dst.Type().Field(i).IsExported() {
			dst.Field(i).Set(src.Field(i))
		}
	}
	return nil
}

// Snapshot returns a copy of the config safe for concurrent reads.
func (c *Config) Snapshot() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := *c
	cp.mu = sync.RWMutex{}
	return cp
}
