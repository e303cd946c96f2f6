// Package game implements the falling-word round simulation and its
// status state machine.
package game

// LevelConfig maps a difficulty level to its pacing parameters.
type LevelConfig struct {
	BaseSpeed     float64
	SpawnInterval int64 // ms between spawns
	MaxOnScreen   int
}

// levelTable is static and read-only during a round. Out-of-range levels
// clamp to the nearest edge.
var levelTable = map[int]LevelConfig{
	1: {BaseSpeed: 0.3, SpawnInterval: 4000, MaxOnScreen: 3},
	2: {BaseSpeed: 0.6, SpawnInterval: 3000, MaxOnScreen: 4},
	3: {BaseSpeed: 1.0, SpawnInterval: 2500, MaxOnScreen: 5},
	4: {BaseSpeed: 1.5, SpawnInterval: 2000, MaxOnScreen: 6},
	5: {BaseSpeed: 2.2, SpawnInterval: 1500, MaxOnScreen: 8},
}

// LevelFor returns the configuration for a level, clamping to 1-5.
func LevelFor(level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return levelTable[level]
}

// WordColors are the cosmetic colors cycled across spawned instances.
var WordColors = []string{
	"#60A5FA", "#34D399", "#FBBF24", "#F87171",
	"#A78BFA", "#38BDF8", "#FB923C", "#4ADE80",
}
