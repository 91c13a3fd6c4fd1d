// Package bestiary provides monster stat lookup by name.
//
// This is the fair-play stand-in for a player's accumulated knowledge: the
// agent never reads a monster's live state, it recalls what a creature of
// that name is like. Unknown names fall back to safe defaults so lookups
// never fail.
package bestiary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stats describes what a player could know about a monster species.
type Stats struct {
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	AttackPower   int     `yaml:"attack_power"`
	Defense       int     `yaml:"defense"`
	Evasion       float64 `yaml:"evasion"`
	Resistance    string  `yaml:"resistance"`
	Vulnerability string  `yaml:"vulnerability"`
}

// Default stats for unknown monster names.
const (
	DefaultHealth      = 10
	DefaultAttackPower = 2
	DefaultDefense     = 0
)

// Bestiary is a read-only monster stat lookup keyed by lower-cased name.
type Bestiary struct {
	entries map[string]Stats
}

// New creates a bestiary from a set of stats. Entries are indexed by
// lower-cased name.
func New(entries []Stats) *Bestiary {
	b := &Bestiary{entries: make(map[string]Stats, len(entries))}
	for _, s := range entries {
		b.entries[strings.ToLower(s.Name)] = s
	}
	return b
}

// Load reads bestiary entries from a YAML file.
func Load(path string) (*Bestiary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bestiary: %w", err)
	}
	defer f.Close()

	var entries []Stats
	if err := yaml.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode bestiary %s: %w", path, err)
	}
	return New(entries), nil
}

// GetStats looks up monster stats by name. Unknown names return default
// stats rather than an error.
func (b *Bestiary) GetStats(name string) Stats {
	if b != nil {
		if s, ok := b.entries[strings.ToLower(name)]; ok {
			return s
		}
	}
	return Stats{
		Name:        name,
		Health:      DefaultHealth,
		AttackPower: DefaultAttackPower,
		Defense:     DefaultDefense,
	}
}

// GetAttackPower returns the monster's attack power
func (b *Bestiary) GetAttackPower(name string) int {
	return b.GetStats(name).AttackPower
}

// GetHealth returns the monster's max health
func (b *Bestiary) GetHealth(name string) int {
	return b.GetStats(name).Health
}

// GetDefense returns the monster's defense
func (b *Bestiary) GetDefense(name string) int {
	return b.GetStats(name).Defense
}

// GetVulnerability returns the monster's damage vulnerability, if any
func (b *Bestiary) GetVulnerability(name string) string {
	return b.GetStats(name).Vulnerability
}

// GetResistance returns the monster's damage resistance, if any
func (b *Bestiary) GetResistance(name string) string {
	return b.GetStats(name).Resistance
}

// DangerRating rates a monster 1..5 combining attack tier, effective-HP tier
// and an evasion bonus. Used to prioritize which monsters to engage or avoid.
func (b *Bestiary) DangerRating(name string) int {
	stats := b.GetStats(name)
	danger := 1

	if stats.AttackPower >= 5 {
		danger += 2
	} else if stats.AttackPower >= 3 {
		danger++
	}

	effectiveHP := stats.Health + stats.Defense*2
	if effectiveHP >= 25 {
		danger++
	}

	if stats.Evasion > 0.1 {
		danger++
	}

	if danger > 5 {
		danger = 5
	}
	return danger
}
