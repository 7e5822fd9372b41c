package player

import "fmt"

// Item categories recognised by the inventory.
const (
	CategoryWeapon     = "weapon"
	CategoryArmor      = "armor"
	CategoryConsumable = "consumable"
	CategoryTreasure   = "treasure"
	CategoryTool       = "tool"
)

// Item is anything a player can carry, find on a chamber floor, or win
// from a challenge.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int    `json:"value"`
	Category    string `json:"category"`
}

// Stat names used by skill checks, combat math and scroll effects.
const (
	StatStrength     = "strength"
	StatIntelligence = "intelligence"
	StatDexterity    = "dexterity"
	StatLuck         = "luck"
)

// Stats holds the four attributes every challenge rolls against.
type Stats struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Dexterity    int `json:"dexterity"`
	Luck         int `json:"luck"`
}

// DefaultStats returns a fresh attribute block. 10 is the baseline every
// modifier formula is written against.
func DefaultStats() Stats {
	return Stats{Strength: 10, Intelligence: 10, Dexterity: 10, Luck: 10}
}

// Get returns the named stat value.
func (s Stats) Get(name string) (int, error) {
	switch name {
	case StatStrength:
		return s.Strength, nil
	case StatIntelligence:
		return s.Intelligence, nil
	case StatDexterity:
		return s.Dexterity, nil
	case StatLuck:
		return s.Luck, nil
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

// Add raises (or lowers, with a negative delta) the named stat. Stats never
// drop below 1.
func (s *Stats) Add(name string, delta int) error {
	var target *int
	switch name {
	case StatStrength:
		target = &s.Strength
	case StatIntelligence:
		target = &s.Intelligence
	case StatDexterity:
		target = &s.Dexterity
	case StatLuck:
		target = &s.Luck
	default:
		return fmt.Errorf("unknown stat %q", name)
	}
	*target += delta
	if *target < 1 {
		*target = 1
	}
	return nil
}

// AddAll raises every stat by delta. Used on level up.
func (s *Stats) AddAll(delta int) {
	s.Strength += delta
	s.Intelligence += delta
	s.Dexterity += delta
	s.Luck += delta
}
