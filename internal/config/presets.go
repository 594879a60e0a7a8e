package config

// Presets are named tunings layered over DefaultConfig. Only the fields a
// preset cares about differ from the defaults.
var Presets = map[string]*Config{
	"bouncy": {
		Scenario:   "toss",
		MaxElapsed: 0.25,
		Ball:       BallConfig{Mass: 1, Radius: 20, VX: 400, VY: 200},
		Room:       RoomConfig{Wall: 20, K: 10000, QFactor: 40, Friction: 0.1},
		Hand:       HandConfig{K: 100, QFactor: 2},
	},
	"dead": {
		Scenario:   "drop",
		MaxElapsed: 0.25,
		Ball:       BallConfig{Mass: 1, Radius: 20, VX: 150, VY: 0},
		Room:       RoomConfig{Wall: 20, K: 10000, QFactor: 2, Friction: 0.9},
		Hand:       HandConfig{K: 100, QFactor: 2},
	},
	"slippery": {
		Scenario:   "toss",
		MaxElapsed: 0.25,
		Ball:       BallConfig{Mass: 1, Radius: 20, VX: 500, VY: 100},
		Room:       RoomConfig{Wall: 20, K: 10000, QFactor: 15, Friction: 0},
		Hand:       HandConfig{K: 100, QFactor: 2},
	},
	"stiff-hand": {
		Scenario:   "grab",
		MaxElapsed: 0.25,
		Ball:       BallConfig{Mass: 1, Radius: 20, VX: 0, VY: 0},
		Room:       RoomConfig{Wall: 20, K: 10000, QFactor: 10, Friction: 0.5},
		Hand:       HandConfig{K: 400, QFactor: 1},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
