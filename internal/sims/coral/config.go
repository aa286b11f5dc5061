package coral

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable weights, rates and limits for coral growth.
type Params struct {
	NSteps int `yaml:"n_steps"`

	LightDirX float64 `yaml:"light_dir_x"`
	LightDirY float64 `yaml:"light_dir_y"`
	FlowDirX  float64 `yaml:"flow_dir_x"`
	FlowDirY  float64 `yaml:"flow_dir_y"`

	LightWeight   float64 `yaml:"light_weight"`
	FlowWeight    float64 `yaml:"flow_weight"`
	LateralWeight float64 `yaml:"lateral_weight"`
	NoiseWeight   float64 `yaml:"noise_weight"`

	BranchRate float64 `yaml:"branch_rate"`
	DeathRate  float64 `yaml:"death_rate"`

	MinDist     int     `yaml:"min_dist"`
	CrowdingMax int     `yaml:"crowding_max"`
	Temperature float64 `yaml:"temperature"`
	MaxTips     int     `yaml:"max_tips"`
}

// Config controls a coral growth run.
type Config struct {
	GridSize int   `yaml:"grid_size"`
	Seed     int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration for the rich growth
// variant: upward light, weak sideways flow, moderate branching and
// attrition.
func DefaultConfig() Config {
	return Config{
		GridSize: 256,
		Seed:     42,
		Params: Params{
			NSteps:        12000,
			LightDirX:     0,
			LightDirY:     -1,
			FlowDirX:      1,
			FlowDirY:      0,
			LightWeight:   1.0,
			FlowWeight:    0.35,
			LateralWeight: 0.25,
			NoiseWeight:   0.8,
			BranchRate:    0.12,
			DeathRate:     0.01,
			MinDist:       1,
			CrowdingMax:   2,
			Temperature:   2.5,
			MaxTips:       96,
		},
	}
}

// ClassicConfig reproduces the minimal historical variant as a
// restricted configuration: light bias plus noise only, no flow or
// lateral term, no death, and a temperature high enough that sampling
// is effectively greedy.
func ClassicConfig() Config {
	c := DefaultConfig()
	c.Params.FlowWeight = 0
	c.Params.LateralWeight = 0
	c.Params.DeathRate = 0
	c.Params.Temperature = 64
	return c
}

// Validate reports the first fatal configuration error, if any.
func (c Config) Validate() error {
	p := c.Params
	if p.NSteps < 0 {
		return fmt.Errorf("n_steps must be >= 0, got %d", p.NSteps)
	}
	if p.MinDist < 1 {
		return fmt.Errorf("min_dist must be >= 1, got %d", p.MinDist)
	}
	if c.GridSize < 2*p.MinDist+1 {
		return fmt.Errorf("grid_size %d too small for min_dist %d", c.GridSize, p.MinDist)
	}
	if p.CrowdingMax < 0 {
		return fmt.Errorf("crowding_max must be >= 0, got %d", p.CrowdingMax)
	}
	if p.Temperature <= 0 {
		return fmt.Errorf("temperature must be > 0, got %g", p.Temperature)
	}
	if p.MaxTips < 1 {
		return fmt.Errorf("max_tips must be >= 1, got %d", p.MaxTips)
	}
	if p.BranchRate < 0 || p.BranchRate > 1 {
		return fmt.Errorf("branch_rate must be in [0,1], got %g", p.BranchRate)
	}
	if p.DeathRate < 0 || p.DeathRate > 1 {
		return fmt.Errorf("death_rate must be in [0,1], got %g", p.DeathRate)
	}
	return nil
}

// LoadConfig reads a YAML configuration file layered over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep the defaults.
func FromMap(cfg map[string]string) Config {
	return fromMapWith(DefaultConfig(), cfg)
}

func fromMapWith(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["n_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.NSteps = parsed
		}
	}
	if v, ok := cfg["light_dir_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.LightDirX = parsed
		}
	}
	if v, ok := cfg["light_dir_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.LightDirY = parsed
		}
	}
	if v, ok := cfg["flow_dir_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FlowDirX = parsed
		}
	}
	if v, ok := cfg["flow_dir_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FlowDirY = parsed
		}
	}
	if v, ok := cfg["light_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.LightWeight = parsed
		}
	}
	if v, ok := cfg["flow_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FlowWeight = parsed
		}
	}
	if v, ok := cfg["lateral_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.LateralWeight = parsed
		}
	}
	if v, ok := cfg["noise_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.NoiseWeight = parsed
		}
	}
	if v, ok := cfg["branch_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BranchRate = parsed
		}
	}
	if v, ok := cfg["death_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DeathRate = parsed
		}
	}
	if v, ok := cfg["min_dist"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.MinDist = parsed
		}
	}
	if v, ok := cfg["crowding_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CrowdingMax = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Temperature = parsed
		}
	}
	if v, ok := cfg["max_tips"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.MaxTips = parsed
		}
	}
	if c.GridSize < 2*c.Params.MinDist+1 {
		c.GridSize = 2*c.Params.MinDist + 1
	}
	return c
}
