package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded fallback configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Combat: CombatConfig{
			StrikeDamage: 10,
			StrikeRange:  1,
		},
		Boss: BossConfig{
			Health: 100,
		},
	}
}
