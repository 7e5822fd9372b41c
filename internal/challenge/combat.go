package challenge

import (
	"fmt"
	"math/rand"
	"strings"

	"labyrinth-terminal/internal/player"
)

// defeatDamage is the health penalty for losing a fight; the challenge
// tracks its own pool during combat, the real hit lands at the end.
const defeatDamage = 25

// Enemy is a combat opponent.
type Enemy struct {
	Name      string
	Health    int
	MaxHealth int
	Attack    int
	Defense   int
}

// NewEnemy builds an enemy from content-pack material.
func NewEnemy(spec EnemySpec) *Enemy {
	return &Enemy{
		Name:      spec.Name,
		Health:    spec.Health,
		MaxHealth: spec.Health,
		Attack:    spec.Attack,
		Defense:   spec.Defense,
	}
}

// IsAlive reports whether the enemy still fights.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// TakeDamage applies damage after defense, minimum 1, and returns the
// amount that actually landed.
func (e *Enemy) TakeDamage(amount int) int {
	actual := amount - e.Defense
	if actual < 1 {
		actual = 1
	}
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual
}

// Strike rolls the enemy's attack with ±25% variance.
func (e *Enemy) Strike(rng *rand.Rand) int {
	variance := e.Attack / 4
	dmg := e.Attack + rng.Intn(2*variance+1) - variance
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// Combat is a turn-based fight. The player acts with attack, defend or
// flee; every turn except the last is intermediate.
type Combat struct {
	name         string
	enemy        *Enemy
	difficulty   int
	reward       player.Item
	rng          *rand.Rand
	active       bool
	playerHealth int
	turn         int
	log          []string
	completed    bool
}

// NewCombat builds a fight against the given enemy.
func NewCombat(spec EnemySpec, difficulty int, rng *rand.Rand) *Combat {
	difficulty = clampDifficulty(difficulty)
	return &Combat{
		name:       fmt.Sprintf("Combat Challenge (%s)", spec.Name),
		enemy:      NewEnemy(spec),
		difficulty: difficulty,
		reward:     combatReward(difficulty),
		rng:        rng,
	}
}

func combatReward(difficulty int) player.Item {
	names := []string{
		"Rusty Sword", "Iron Dagger", "Steel Blade", "Magic Sword",
		"Enchanted Axe", "Legendary Spear", "Dragon Slayer", "Divine Weapon",
	}
	idx := difficulty - 1
	if idx >= len(names) {
		idx = len(names) - 1
	}
	name := names[idx]
	return player.Item{
		Name:        name,
		Description: fmt.Sprintf("A %s taken from a defeated enemy", strings.ToLower(name)),
		Category:    player.CategoryWeapon,
		Value:       difficulty * 15,
	}
}

func (c *Combat) Name() string { return c.name }

func (c *Combat) Present() string {
	var b strings.Builder
	if !c.active {
		fmt.Fprintf(&b, "=== %s ===\n", c.name)
		fmt.Fprintf(&b, "Difficulty: %d/10\n\n", c.difficulty)
		fmt.Fprintf(&b, "%s blocks your path forward.\n", c.enemy.Name)
		fmt.Fprintf(&b, "Enemy Health: %d/%d\n\n", c.enemy.Health, c.enemy.MaxHealth)
		b.WriteString("Combat Commands:\n")
		b.WriteString("- 'attack' or 'a': Attack the enemy\n")
		b.WriteString("- 'defend' or 'd': Defend to reduce incoming damage\n")
		b.WriteString("- 'flee' or 'f': Attempt to flee from combat\n\n")
		b.WriteString("What do you do?")
		return b.String()
	}

	fmt.Fprintf(&b, "--- Turn %d ---\n", c.turn)
	fmt.Fprintf(&b, "Your Health: %d\n", c.playerHealth)
	fmt.Fprintf(&b, "%s Health: %d/%d\n", c.enemy.Name, c.enemy.Health, c.enemy.MaxHealth)
	if len(c.log) > 0 {
		b.WriteString("\nRecent actions:\n")
		start := len(c.log) - 3
		if start < 0 {
			start = 0
		}
		for _, entry := range c.log[start:] {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
	}
	b.WriteString("\nWhat do you do? (attack/defend/flee)")
	return b.String()
}

func (c *Combat) Respond(input string, stats player.Stats) Result {
	if !c.active {
		c.active = true
		c.playerHealth = player.DefaultMaxHealth
	}
	c.turn++

	switch normalize(input) {
	case "attack", "a":
		return c.attack(stats)
	case "defend", "d":
		return c.defend(stats)
	case "flee", "f":
		return c.flee(stats)
	}
	return Result{Message: "Invalid action! Use 'attack', 'defend', or 'flee'.", Intermediate: true}
}

func (c *Combat) attack(stats player.Stats) Result {
	base := 8 + (stats.Strength - 10)
	luckBonus := (stats.Luck - 10) / 2
	dmg := base + luckBonus + c.rng.Intn(6) - 2 // -2..+3 variance
	if dmg < 1 {
		dmg = 1
	}
	landed := c.enemy.TakeDamage(dmg)
	c.logf("You attack for %d damage!", landed)

	if !c.enemy.IsAlive() {
		c.completed = true
		return Result{
			Success: true,
			Message: fmt.Sprintf("Victory! You defeated the %s!", c.enemy.Name),
			Reward:  &c.reward,
		}
	}

	return c.enemyTurn(0, fmt.Sprintf("Defeat! The %s has bested you in combat.", c.enemy.Name), "Combat continues...")
}

func (c *Combat) defend(stats player.Stats) Result {
	c.logf("You raise your guard defensively!")
	reduction := 3
	if bonus := (stats.Dexterity - 10) / 2; bonus > 0 {
		reduction += bonus
	}
	return c.enemyTurn(reduction,
		fmt.Sprintf("Defeat! The %s has overwhelmed your defenses.", c.enemy.Name),
		"You successfully defended against the attack!")
}

func (c *Combat) flee(stats player.Stats) Result {
	chance := 60 + (stats.Dexterity-10)*2 + (stats.Luck-10)*2
	chance = clampInt(chance, 20, 90)

	if c.rng.Intn(100)+1 <= chance {
		// Escaped. The fight ends unresolved and the chamber stays
		// uncleared, at the cost of a scratch.
		c.Reset()
		return Result{
			Message: fmt.Sprintf("You successfully flee from the %s! You can try again later.", c.enemy.Name),
			Damage:  5,
		}
	}

	c.logf("Failed to flee! %s gets a free attack!", c.enemy.Name)
	return c.enemyTurn(0,
		fmt.Sprintf("You failed to escape and the %s finished you off!", c.enemy.Name),
		"You failed to flee and took damage! Combat continues.")
}

// enemyTurn resolves the enemy's swing and ends the fight if the
// player's combat pool runs dry.
func (c *Combat) enemyTurn(reduction int, defeatMsg, continueMsg string) Result {
	dmg := c.enemy.Strike(c.rng) - reduction
	if dmg < 1 {
		dmg = 1
	}
	c.playerHealth -= dmg
	c.logf("%s attacks you for %d damage!", c.enemy.Name, dmg)

	if c.playerHealth <= 0 {
		c.Reset()
		return Result{Message: defeatMsg, Damage: defeatDamage}
	}
	return Result{Message: continueMsg, Intermediate: true}
}

func (c *Combat) logf(format string, args ...any) {
	c.log = append(c.log, fmt.Sprintf(format, args...))
}

func (c *Combat) Reward() *player.Item {
	if !c.completed {
		return nil
	}
	return &c.reward
}

func (c *Combat) Completed() bool { return c.completed }

func (c *Combat) Reset() {
	c.active = false
	c.turn = 0
	c.playerHealth = player.DefaultMaxHealth
	c.log = c.log[:0]
	c.completed = false
	c.enemy.Health = c.enemy.MaxHealth
}
