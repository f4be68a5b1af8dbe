package config

import "sort"

// Presets are named variations on the defaults. watchy mirrors the firmware
// build: a short batch per refresh, a longer tail and a 3 degree turn.
var Presets = map[string]func(*Config){
	"demo": func(*Config) {},
	"watchy": func(c *Config) {
		c.StepsPerFrame = 5
		c.MaxPoints = 500
		c.RotationStep = 0.0523598776
	},
	"slow": func(c *Config) {
		c.StepsPerFrame = 10
		c.MaxPoints = 300
	},
	"long": func(c *Config) {
		c.Frames = 90
	},
}

// GetPreset returns a fresh config for name, or nil if it is unknown.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
