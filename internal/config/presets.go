package config

import "sort"

var (
	doomRows   = []string{".>..", "^KTK", ".TvT", "...<"}
	funnelRows = []string{">>>>v", "^>>vv", "^^T<v", "^^<<<", "^<<<<"}
)

// Presets are the reference mazes, each with its expected outcome.
var Presets = map[string]*Config{
	"treasure": {
		Rows: []string{"T.", ".."}, Start: Index(0), Heading: ">", Expect: "found_treasure",
	},
	"key": {
		Rows: []string{"K.", ".."}, Start: Index(0), Heading: "^", Expect: "found_key",
	},
	"middle": {
		Rows: []string{"...", ".T.", "..."}, Start: Index(4), Heading: "v", Expect: "found_treasure",
	},
	"straight-up": {
		Rows: []string{".T.", "...", "..."}, Start: Index(7), Heading: "^", Expect: "found_treasure",
	},
	"column": {
		Rows: []string{"..........................T"}, Width: 1, Height: 27,
		Start: Index(7), Heading: "v", Expect: "found_treasure",
	},
	"corridor-right": {
		Rows: []string{"..........................K"}, Width: 27, Height: 1,
		Start: Index(2), Heading: ">", Expect: "found_key",
	},
	"corridor-left": {
		Rows: []string{"K.........................."}, Width: 27, Height: 1,
		Start: Index(15), Heading: "<", Expect: "found_key",
	},
	"directions": {
		Rows: []string{">..v", "....", "...K", "^..<"}, Start: Index(12), Heading: ">", Expect: "found_key",
	},
	"funnel": {
		Rows: funnelRows, Start: Index(0), Heading: "<", Expect: "found_treasure",
	},
	"doom-right": {
		Rows: doomRows, Start: Index(1), Heading: ">", Expect: "out_of_bounds",
	},
	"doom-up": {
		Rows: doomRows, Start: Index(4), Heading: ">", Expect: "out_of_bounds",
	},
	"doom-down": {
		Rows: doomRows, Start: Index(10), Heading: ">", Expect: "out_of_bounds",
	},
	"doom-left": {
		Rows: doomRows, Start: Index(15), Heading: ">", Expect: "out_of_bounds",
	},
	"outside": {
		Rows: []string{"..", ".."}, Start: Index(4), Heading: "v", Expect: "out_of_bounds",
	},
	"outside-before": {
		Rows: []string{"..", ".."}, Start: Index(-1), Heading: "v", Expect: "out_of_bounds",
	},
	"outside-3x3": {
		Rows: []string{">T<", "...", "^.^"}, Start: Index(10), Heading: "^", Expect: "out_of_bounds",
	},
	"loop-easy": {
		Rows: []string{">.v", "...", "^.<"}, Start: Index(0), Heading: "v", Expect: "infinite_loop",
	},
	"loop-medium": {
		Rows: []string{">v", "^<"}, Start: Index(2), Heading: "v", Expect: "infinite_loop",
	},
	"loop-hard": {
		Rows: []string{"v.v", "...", "^.^"}, Start: Index(0), Heading: ">", Expect: "infinite_loop",
	},
	"loop-harder": {
		Rows:    []string{">.v..", ".....", "^...<", ".....", "..>.^"},
		Start:   Index(4),
		Heading: "v",
		Expect:  "infinite_loop",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := p.Clone()
	cfg.Name = name
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
