package runner

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/cohsim/coherence"
)

// Config holds the simulation parameters for a Runner.
type Config struct {
	// Iterations is the number of operations each core issues.
	// Default: 1000.
	Iterations int `json:"iterations"`

	// WriteProbability is the chance in [0, 1] that an operation is a
	// write. Default: 0.5.
	WriteProbability float64 `json:"write_probability"`

	// ValueMin is the inclusive lower bound of the write payload domain.
	// Default: 0.
	ValueMin int64 `json:"value_min"`

	// ValueMax is the inclusive upper bound of the write payload domain.
	// Default: 100.
	ValueMax int64 `json:"value_max"`

	// CoreCount is the parallelism degree. The engine's state machine is
	// written for exactly two agents, so Validate rejects any other value.
	// Default: 2.
	CoreCount int `json:"core_count"`

	// Seed seeds the per-core random sources. 0 selects a time-based seed.
	// Default: 0.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns a Config with the contract default values.
func DefaultConfig() *Config {
	return &Config{
		Iterations:       1000,
		WriteProbability: 0.5,
		ValueMin:         0,
		ValueMax:         100,
		CoreCount:        coherence.NumCores,
		Seed:             0,
	}
}

// LoadConfig loads a Config from a JSON file. Fields absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration describes a runnable simulation.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be > 0")
	}
	if c.WriteProbability < 0 || c.WriteProbability > 1 {
		return fmt.Errorf("write_probability must be in [0, 1]")
	}
	if c.ValueMin > c.ValueMax {
		return fmt.Errorf("value_min must be <= value_max")
	}
	if c.CoreCount != coherence.NumCores {
		return fmt.Errorf("core_count must be %d", coherence.NumCores)
	}
	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
