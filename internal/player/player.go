package player

import (
	"fmt"
	"strings"
)

// DefaultMaxHealth is the starting health pool.
const DefaultMaxHealth = 100

// xpPerLevel scales the experience needed for the next level.
const xpPerLevel = 100

// Player is the adventurer: health, attributes, experience, and the bag.
type Player struct {
	Name      string     `json:"name"`
	Health    int        `json:"health"`
	MaxHealth int        `json:"max_health"`
	Stats     Stats      `json:"stats"`
	XP        int        `json:"xp"`
	Level     int        `json:"level"`
	Inventory *Inventory `json:"inventory"`
	Progress  *Progress  `json:"progress"`
}

// New returns a level-1 player at full health with default stats.
func New(name string) *Player {
	return &Player{
		Name:      name,
		Health:    DefaultMaxHealth,
		MaxHealth: DefaultMaxHealth,
		Stats:     DefaultStats(),
		Level:     1,
		Inventory: NewInventory(),
		Progress:  NewProgress(),
	}
}

// IsAlive reports whether the player still stands.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage lowers health, never below zero. Returns the damage applied.
func (p *Player) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	return amount
}

// Heal raises health, never above MaxHealth. Returns the amount restored.
func (p *Player) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if p.Health+amount > p.MaxHealth {
		amount = p.MaxHealth - p.Health
	}
	p.Health += amount
	return amount
}

// XPToNextLevel returns the experience still needed for the next level.
func (p *Player) XPToNextLevel() int {
	need := xpPerLevel*p.Level - p.XP
	if need < 0 {
		return 0
	}
	return need
}

// GainXP adds experience and applies any level-ups: +10 max health, full
// heal, +1 to every stat per level. Returns how many levels were gained.
func (p *Player) GainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.XP += amount
	levels := 0
	for p.XP >= xpPerLevel*p.Level {
		p.XP -= xpPerLevel * p.Level
		p.Level++
		p.MaxHealth += 10
		p.Health = p.MaxHealth
		p.Stats.AddAll(1)
		levels++
	}
	return levels
}

// UseItem consumes the named item if it is usable and applies its effect.
// The returned string describes what happened.
func (p *Player) UseItem(name string) (string, error) {
	item, ok := p.Inventory.Find(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	effect, consumed := p.applyItem(item)
	if !consumed {
		return "", fmt.Errorf("the %s is not something you can use here", item.Name)
	}
	if _, err := p.Inventory.Remove(item.Name); err != nil {
		return "", err
	}
	return effect, nil
}

// applyItem interprets an item's effect from its name and category, the
// same scheme the content packs are written against: potions and food
// heal, scrolls teach the stat named on them.
func (p *Player) applyItem(item Item) (string, bool) {
	lower := strings.ToLower(item.Name)
	switch {
	case strings.Contains(lower, "potion"):
		healed := p.Heal(item.Value / 2)
		return fmt.Sprintf("You drink the %s and recover %d health.", item.Name, healed), true
	case strings.Contains(lower, "scroll"):
		for _, stat := range []string{StatStrength, StatIntelligence, StatDexterity, StatLuck} {
			if strings.Contains(lower, stat) {
				_ = p.Stats.Add(stat, 1)
				return fmt.Sprintf("You study the %s. %s +1.", item.Name, capitalize(stat)), true
			}
		}
		return fmt.Sprintf("You read the %s, but its script fades before it teaches anything.", item.Name), true
	case item.Category == CategoryConsumable:
		healed := p.Heal(maxInt(1, item.Value/5))
		return fmt.Sprintf("You eat the %s and recover %d health.", item.Name, healed), true
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
