package challenge

import (
	"fmt"
	"math/rand"
	"strings"

	"labyrinth-terminal/internal/player"
)

const skillMaxAttempts = 3

// skillActions are the verbs that trigger an attempt, one set per stat.
var skillActions = map[string][]string{
	player.StatStrength:     {"lift", "push", "break", "climb", "force"},
	player.StatIntelligence: {"analyze", "calculate", "deduce", "reason", "solve"},
	player.StatDexterity:    {"dodge", "balance", "sneak", "pick", "jump"},
	player.StatLuck:         {"gamble", "risk", "chance", "try", "hope"},
}

// Skill is a stat check: the player examines the scene, then attempts it
// with a percentage roll against their stat and the difficulty.
type Skill struct {
	name       string
	stat       string
	scenario   string
	action     string
	difficulty int
	reward     player.Item
	rng        *rand.Rand
	attempts   int
	completed  bool
}

// NewSkill builds a skill check from content-pack material.
func NewSkill(spec ScenarioSpec, difficulty int, rng *rand.Rand) *Skill {
	difficulty = clampDifficulty(difficulty)
	actions := skillActions[spec.Stat]
	if len(actions) == 0 {
		actions = skillActions[player.StatStrength]
	}
	return &Skill{
		name:       fmt.Sprintf("Skill Challenge (%s)", capitalizeWord(spec.Stat)),
		stat:       spec.Stat,
		scenario:   spec.Text,
		action:     actions[rng.Intn(len(actions))],
		difficulty: difficulty,
		reward:     skillReward(spec.Stat, difficulty),
		rng:        rng,
	}
}

func skillReward(stat string, difficulty int) player.Item {
	rewards := map[string][]string{
		player.StatStrength:     {"Power Gauntlets", "Strength Potion", "Mighty Belt", "Iron Ring"},
		player.StatIntelligence: {"Wisdom Scroll", "Knowledge Crystal", "Scholar's Tome", "Mind Gem"},
		player.StatDexterity:    {"Agility Boots", "Swift Cloak", "Nimble Ring", "Grace Amulet"},
		player.StatLuck:         {"Fortune Coin", "Lucky Charm", "Fate Stone", "Blessed Token"},
	}
	names := rewards[stat]
	if names == nil {
		names = rewards[player.StatStrength]
	}
	idx := difficulty / 3
	if idx >= len(names) {
		idx = len(names) - 1
	}
	name := names[idx]
	return player.Item{
		Name:        name,
		Description: fmt.Sprintf("A %s that enhances your %s", strings.ToLower(name), stat),
		Category:    player.CategoryTool,
		Value:       difficulty * 12,
	}
}

func (s *Skill) Name() string { return s.name }

func (s *Skill) Present() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", s.name)
	fmt.Fprintf(&b, "Difficulty: %d/10\n", s.difficulty)
	fmt.Fprintf(&b, "Primary Stat: %s\n\n", capitalizeWord(s.stat))
	b.WriteString(s.scenario)
	b.WriteString("\n")
	if s.attempts > 0 {
		fmt.Fprintf(&b, "\nAttempts remaining: %d\n", skillMaxAttempts-s.attempts)
	}
	fmt.Fprintf(&b, "\nThis challenge tests your %s. ", s.stat)
	fmt.Fprintf(&b, "Type '%s' to attempt the challenge, or 'examine' to study the situation more carefully.", s.action)
	return b.String()
}

func (s *Skill) Respond(input string, stats player.Stats) Result {
	switch action := normalize(input); action {
	case "examine":
		return s.examine(stats)
	case s.action, "attempt", "try", "do":
		return s.attempt(stats)
	}
	return Result{
		Message:      fmt.Sprintf("Invalid action! Use '%s' to attempt the challenge or 'examine' to study it.", s.action),
		Intermediate: true,
	}
}

func (s *Skill) examine(stats player.Stats) Result {
	value, _ := stats.Get(s.stat)
	var hint string
	switch {
	case value >= 15:
		hint = "You feel very confident about this challenge. Your skills are well-suited for this task."
	case value >= 12:
		hint = "You think you have a good chance of succeeding with careful effort."
	case value >= 8:
		hint = "This will be challenging, but not impossible. You'll need some luck."
	default:
		hint = "This looks very difficult for someone with your current abilities."
	}
	var scale string
	switch {
	case s.difficulty <= 3:
		scale = "The challenge appears straightforward."
	case s.difficulty <= 6:
		scale = "The challenge looks moderately complex."
	default:
		scale = "The challenge appears extremely demanding."
	}
	return Result{
		Message:      fmt.Sprintf("You carefully examine the situation. %s %s", hint, scale),
		Intermediate: true,
	}
}

func (s *Skill) attempt(stats player.Stats) Result {
	s.attempts++
	value, _ := stats.Get(s.stat)
	chance := s.successChance(value)
	roll := s.rng.Intn(100) + 1

	if roll <= chance {
		s.completed = true
		return Result{Success: true, Message: s.successMessage(roll, chance), Reward: &s.reward}
	}

	remaining := skillMaxAttempts - s.attempts
	if remaining > 0 {
		return Result{Message: fmt.Sprintf("%s You have %d attempt(s) remaining.", s.failureMessage(roll, chance), remaining)}
	}
	return Result{Message: s.finalFailureMessage(), Damage: s.failureDamage()}
}

// successChance: 50% base, ±3% per stat point from 10, -4% per difficulty
// point above 5, clamped to 5-95 so there is always a chance either way.
func (s *Skill) successChance(statValue int) int {
	chance := 50 + (statValue-10)*3 - (s.difficulty-5)*4
	return clampInt(chance, 5, 95)
}

func (s *Skill) failureDamage() int {
	dmg := 3 + s.difficulty + s.rng.Intn(6) - 2
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func (s *Skill) successMessage(roll, chance int) string {
	quality := "successfully"
	switch {
	case roll <= chance/3:
		quality = "masterfully"
	case roll <= chance/2:
		quality = "skillfully"
	}
	switch s.stat {
	case player.StatStrength:
		return fmt.Sprintf("You %s overcome the physical challenge through sheer power!", quality)
	case player.StatIntelligence:
		return fmt.Sprintf("You %s solve the mental puzzle with clever thinking!", quality)
	case player.StatDexterity:
		return fmt.Sprintf("You %s navigate the challenge with precise movements!", quality)
	}
	return fmt.Sprintf("Fortune smiles upon you as you %s make the right choice!", quality)
}

func (s *Skill) failureMessage(roll, chance int) string {
	quality := "narrowly"
	switch {
	case roll > chance+30:
		quality = "badly"
	case roll > chance+15:
		quality = "poorly"
	}
	switch s.stat {
	case player.StatStrength:
		return fmt.Sprintf("You %s fail to overcome the physical challenge.", quality)
	case player.StatIntelligence:
		return fmt.Sprintf("You %s fail to solve the mental puzzle.", quality)
	case player.StatDexterity:
		return fmt.Sprintf("You %s fail to navigate the challenge precisely.", quality)
	}
	return "Fortune does not favor you this time."
}

func (s *Skill) finalFailureMessage() string {
	switch s.stat {
	case player.StatStrength:
		return "Despite your best efforts, you lack the physical power needed. You strain yourself in the attempt."
	case player.StatIntelligence:
		return "The mental challenge proves too complex for you to solve. The effort leaves you mentally drained."
	case player.StatDexterity:
		return "Your movements aren't precise enough to overcome the challenge. You suffer minor injuries from your clumsy attempts."
	}
	return "Fortune has completely abandoned you. Your poor choices lead to unfortunate consequences."
}

func (s *Skill) Reward() *player.Item {
	if !s.completed {
		return nil
	}
	return &s.reward
}

func (s *Skill) Completed() bool { return s.completed }

func (s *Skill) Reset() {
	s.attempts = 0
	s.completed = false
}
