// Package config provides YAML-based gameplay configuration for
// pipewalker: combat tuning and the default boss health.
package config

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	Combat CombatConfig `yaml:"combat"`
	Boss   BossConfig   `yaml:"boss"`
}

// CombatConfig tunes the final-level strike rule.
type CombatConfig struct {
	StrikeDamage int `yaml:"strike_damage"` // boss health lost per landed strike
	StrikeRange  int `yaml:"strike_range"`  // Manhattan distance at which strikes land
}

// BossConfig holds boss defaults applied when a level definition does
// not set its own.
type BossConfig struct {
	Health int `yaml:"health"`
}
