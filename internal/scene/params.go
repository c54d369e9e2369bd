package scene

import (
	"strconv"

	"wavebg/internal/dither"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Param is one live tunable with its formatted current value.
type Param struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// Control describes how the HUD may adjust a parameter.
type Control struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64
	Min   float64
	Max   float64
}

// Controls lists the HUD-adjustable parameters in display order.
func (s *Scene) Controls() []Control {
	return []Control{
		{Key: "speed", Label: "Speed", Type: ParamTypeFloat, Step: 0.1, Min: 0, Max: 5},
		{Key: "frequency", Label: "Frequency", Type: ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 12},
		{Key: "decay", Label: "Decay", Type: ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 0.95},
		{Key: "radius", Label: "Mouse radius", Type: ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 3},
		{Key: "colors", Label: "Color levels", Type: ParamTypeInt, Step: 1, Min: 2, Max: 16},
		{Key: "block", Label: "Block size", Type: ParamTypeInt, Step: 1, Min: 1, Max: 32},
	}
}

// Params snapshots the current values for the controls above.
func (s *Scene) Params() []Param {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return []Param{
		{Key: "speed", Label: "Speed", Type: ParamTypeFloat, Value: f(s.cfg.Speed)},
		{Key: "frequency", Label: "Frequency", Type: ParamTypeFloat, Value: f(s.cfg.Frequency)},
		{Key: "decay", Label: "Decay", Type: ParamTypeFloat, Value: f(s.cfg.Decay)},
		{Key: "radius", Label: "Mouse radius", Type: ParamTypeFloat, Value: f(s.cfg.MouseRadius)},
		{Key: "colors", Label: "Color levels", Type: ParamTypeInt, Value: strconv.Itoa(s.cfg.ColorNum)},
		{Key: "block", Label: "Block size", Type: ParamTypeInt, Value: strconv.Itoa(s.cfg.Block)},
	}
}

// SetFloatParam updates a float parameter by key and reports whether the
// key was recognized. Field tuning changes rebuild the field.
func (s *Scene) SetFloatParam(key string, value float64) bool {
	switch key {
	case "speed":
		s.cfg.Speed = value
	case "frequency":
		if value <= 0 {
			return false
		}
		s.cfg.Frequency = value
	case "decay":
		if value <= 0 || value >= 1 {
			return false
		}
		s.cfg.Decay = value
	case "radius":
		if value <= 0 {
			return false
		}
		s.cfg.MouseRadius = value
		return true
	default:
		return false
	}
	s.rebuildField()
	return true
}

// SetIntParam updates an integer parameter by key and reports whether the
// key was recognized.
func (s *Scene) SetIntParam(key string, value int) bool {
	switch key {
	case "colors":
		quant, err := dither.New(value)
		if err != nil {
			return false
		}
		s.cfg.ColorNum = value
		s.quant = quant
		return true
	case "block":
		if value < 1 {
			return false
		}
		s.cfg.Block = value
		return true
	default:
		return false
	}
}

// ToggleMouse flips the pointer interaction and returns the new state.
func (s *Scene) ToggleMouse() bool {
	s.cfg.Mouse = !s.cfg.Mouse
	return s.cfg.Mouse
}
