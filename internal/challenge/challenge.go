// Package challenge implements the obstacles that guard chambers: riddles,
// logic puzzles, combat encounters, skill checks and memory tests. Every
// variant speaks the same interface so the engine can route player input
// without knowing what it is talking to.
package challenge

import (
	"strings"

	"labyrinth-terminal/internal/player"
)

// Challenge type identifiers, as they appear in labyrinth config files.
const (
	TypeRiddle = "riddle"
	TypePuzzle = "puzzle"
	TypeCombat = "combat"
	TypeSkill  = "skill"
	TypeMemory = "memory"
)

// Result is the outcome of offering one line of input to a challenge.
// Intermediate results (hints, combat turns, multi-step prompts) are part
// of an ongoing exchange and must not be read as failures.
type Result struct {
	Success      bool
	Message      string
	Reward       *player.Item
	Damage       int
	Intermediate bool
}

// Challenge is one obstacle in a chamber. Respond receives the player's
// stats because combat and skill checks roll against them.
type Challenge interface {
	Name() string
	Present() string
	Respond(input string, stats player.Stats) Result
	Reward() *player.Item
	Completed() bool
	Reset()
}

// clampDifficulty keeps difficulty inside the 1-10 band every formula
// assumes.
func clampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 10 {
		return 10
	}
	return d
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// isHintRequest matches the words players reach for when stuck.
func isHintRequest(input string) bool {
	switch input {
	case "hint", "help", "clue", "tip":
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
