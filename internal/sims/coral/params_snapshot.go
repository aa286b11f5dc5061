package coral

import (
	"strconv"

	"coral-ca/internal/core"
)

// Parameters reports the current tunables for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Grid size", w.cfg.GridSize),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("n_steps", "Step budget", p.NSteps),
				intParam("min_dist", "Crowding radius", p.MinDist),
			},
		},
		{
			Name: "Bias",
			Params: []core.Parameter{
				floatParam("light_dir_x", "Light dir X", p.LightDirX),
				floatParam("light_dir_y", "Light dir Y", p.LightDirY),
				floatParam("flow_dir_x", "Flow dir X", p.FlowDirX),
				floatParam("flow_dir_y", "Flow dir Y", p.FlowDirY),
				floatParam("light_weight", "Light weight", p.LightWeight),
				floatParam("flow_weight", "Flow weight", p.FlowWeight),
				floatParam("lateral_weight", "Lateral weight", p.LateralWeight),
				floatParam("noise_weight", "Noise weight", p.NoiseWeight),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				floatParam("branch_rate", "Branch rate", p.BranchRate),
				floatParam("death_rate", "Death rate", p.DeathRate),
				intParam("max_tips", "Max tips", p.MaxTips),
				intParam("crowding_max", "Crowding max", p.CrowdingMax),
				floatParam("temperature", "Temperature", p.Temperature),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables that may be adjusted live. Grid
// geometry and the step budget are fixed for the lifetime of a run.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "light_weight", Label: "Light weight", Type: core.ParamTypeFloat, Step: 0.05},
		{Key: "flow_weight", Label: "Flow weight", Type: core.ParamTypeFloat, Step: 0.05},
		{Key: "lateral_weight", Label: "Lateral weight", Type: core.ParamTypeFloat, Step: 0.05},
		{Key: "noise_weight", Label: "Noise weight", Type: core.ParamTypeFloat, Step: 0.05},
		{Key: "branch_rate", Label: "Branch rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "death_rate", Label: "Death rate", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, HasMin: true},
		{Key: "crowding_max", Label: "Crowding max", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "max_tips", Label: "Max tips", Type: core.ParamTypeInt, Step: 8, Min: 1, HasMin: true},
	}
}

// SetIntParameter updates an integer tunable. Returns false for unknown
// keys or out-of-range values.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "crowding_max":
		if value < 0 {
			return false
		}
		w.cfg.Params.CrowdingMax = value
	case "max_tips":
		if value < 1 {
			return false
		}
		w.cfg.Params.MaxTips = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable. Direction changes rebuild
// the normalized field.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := &w.cfg.Params
	switch key {
	case "light_weight":
		p.LightWeight = value
	case "flow_weight":
		p.FlowWeight = value
	case "lateral_weight":
		p.LateralWeight = value
	case "noise_weight":
		p.NoiseWeight = value
	case "branch_rate":
		if value < 0 || value > 1 {
			return false
		}
		p.BranchRate = value
	case "death_rate":
		if value < 0 || value > 1 {
			return false
		}
		p.DeathRate = value
	case "temperature":
		if value <= 0 {
			return false
		}
		p.Temperature = value
	case "light_dir_x":
		p.LightDirX = value
		w.field = NewField(*p)
	case "light_dir_y":
		p.LightDirY = value
		w.field = NewField(*p)
	case "flow_dir_x":
		p.FlowDirX = value
		w.field = NewField(*p)
	case "flow_dir_y":
		p.FlowDirY = value
		w.field = NewField(*p)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
