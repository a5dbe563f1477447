package config

import (
	"maps"
	"slices"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/sorting"
)

func preset(alg sorting.Algorithm, p dataset.Pattern, size, ms int) *Config {
	cfg := DefaultConfig()
	cfg.Algorithm = string(alg)
	cfg.Pattern = string(p)
	cfg.Size = size
	cfg.IntervalMs = ms
	return cfg
}

var Presets = map[string]map[string]*Config{
	"bubble": {
		"best":   preset(sorting.Bubble, dataset.Sorted, 20, 50),
		"worst":  preset(sorting.Bubble, dataset.Reversed, 20, 20),
		"small":  preset(sorting.Bubble, dataset.Random, 8, 300),
		"nearly": preset(sorting.Bubble, dataset.NearlySorted, 30, 40),
	},
	"insertion": {
		"best":   preset(sorting.Insertion, dataset.Sorted, 25, 50),
		"worst":  preset(sorting.Insertion, dataset.Reversed, 20, 20),
		"small":  preset(sorting.Insertion, dataset.Random, 8, 300),
		"nearly": preset(sorting.Insertion, dataset.NearlySorted, 40, 40),
	},
	"merge": {
		"small":  preset(sorting.Merge, dataset.Random, 8, 300),
		"large":  preset(sorting.Merge, dataset.Random, 50, 10),
		"dupes":  preset(sorting.Merge, dataset.FewUnique, 30, 60),
		"sorted": preset(sorting.Merge, dataset.Sorted, 32, 30),
	},
	"quick": {
		"small": preset(sorting.Quick, dataset.Random, 8, 300),
		"large": preset(sorting.Quick, dataset.Random, 50, 10),
		"worst": preset(sorting.Quick, dataset.Sorted, 20, 20),
		"dupes": preset(sorting.Quick, dataset.FewUnique, 30, 60),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(alg, name string) *Config {
	algPresets, ok := Presets[alg]
	if !ok {
		return nil
	}
	cfg, ok := algPresets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(alg string) []string {
	algPresets, ok := Presets[alg]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(algPresets))
}
