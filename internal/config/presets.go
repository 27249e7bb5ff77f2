package config

import "sort"

var Presets = map[string]Window{
	"laptop": {
		Title: DefaultTitle, Width: 960, Height: 540, FPS: 30, Stars: 800,
	},
	"desktop": {
		Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS, Stars: DefaultStars,
	},
	"showcase": {
		Title: DefaultTitle, Width: 1920, Height: 1080, FPS: 120, Stars: 8000,
	},
}

// GetPreset returns a default config using the named window preset, or nil.
func GetPreset(name string) *Config {
	w, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Window = w
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
