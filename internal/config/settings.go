package config

import (
	"time"

	"github.com/spf13/cast"
)

// ToolSettings is the opaque per-tool configuration slice handed to a
// tool's Execute. Tools read it through the typed getters; unknown or
// mistyped keys fall back to the caller's default, matching the permissive
// behavior of the original configuration surface.
type ToolSettings map[string]any

// Settings returns the settings slice for a tool, never nil.
func (s *Snapshot) Settings(toolID string) ToolSettings {
	if tc, ok := s.Tool(toolID); ok && tc.Settings != nil {
		return ToolSettings(tc.Settings)
	}
	return ToolSettings{}
}

func (ts ToolSettings) Bool(key string, def bool) bool {
	v, ok := ts[key]
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

func (ts ToolSettings) Int(key string, def int) int {
	v, ok := ts[key]
	if !ok {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

func (ts ToolSettings) Float(key string, def float64) float64 {
	v, ok := ts[key]
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

func (ts ToolSettings) Duration(key string, def time.Duration) time.Duration {
	v, ok := ts[key]
	if !ok {
		return def
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return def
	}
	return d
}

func (ts ToolSettings) Strings(key string, def []string) []string {
	v, ok := ts[key]
	if !ok {
		return def
	}
	ss, err := cast.ToStringSliceE(v)
	if err != nil {
		return def
	}
	return ss
}
