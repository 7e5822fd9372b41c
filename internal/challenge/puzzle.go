package challenge

import (
	"fmt"
	"strings"

	"labyrinth-terminal/internal/player"
)

// Puzzle kinds. Sequence and pattern puzzles complete in one answer,
// logic grids walk through their questions one at a time.
const (
	PuzzleKindSequence  = "sequence"
	PuzzleKindPattern   = "pattern"
	PuzzleKindMath      = "math"
	PuzzleKindLogicGrid = "logic_grid"
)

const puzzleMaxHints = 2

// PuzzleKindFor maps difficulty to the puzzle kind used when a chamber
// doesn't name one.
func PuzzleKindFor(difficulty int) string {
	switch {
	case difficulty <= 3:
		return PuzzleKindSequence
	case difficulty <= 6:
		return PuzzleKindPattern
	case difficulty <= 8:
		return PuzzleKindMath
	}
	return PuzzleKindLogicGrid
}

// Puzzle is a logic puzzle challenge.
type Puzzle struct {
	name       string
	spec       PuzzleSpec
	difficulty int
	reward     player.Item
	question   int // logic grid progress
	hintsUsed  int
	completed  bool
}

// NewPuzzle builds a puzzle from content-pack material.
func NewPuzzle(spec PuzzleSpec, difficulty int) *Puzzle {
	difficulty = clampDifficulty(difficulty)
	kindLabel := strings.ReplaceAll(spec.Kind, "_", " ")
	return &Puzzle{
		name:       fmt.Sprintf("Logic Puzzle (%s)", capitalizeWord(kindLabel)),
		spec:       spec,
		difficulty: difficulty,
		reward:     puzzleReward(difficulty),
	}
}

func puzzleReward(difficulty int) player.Item {
	names := []string{
		"Logic Crystal", "Puzzle Box", "Mind Gem", "Wisdom Stone",
		"Clever Key", "Brain Teaser", "Smart Token", "Riddle Rune",
	}
	name := names[difficulty%len(names)]
	return player.Item{
		Name:        name,
		Description: fmt.Sprintf("A valuable %s earned by solving a challenging puzzle", strings.ToLower(name)),
		Category:    player.CategoryTreasure,
		Value:       difficulty * 15,
	}
}

func (p *Puzzle) Name() string { return p.name }

func (p *Puzzle) Present() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", p.name)
	fmt.Fprintf(&b, "Difficulty: %d/10\n\n", p.difficulty)

	switch p.spec.Kind {
	case PuzzleKindSequence:
		fmt.Fprintf(&b, "Complete the sequence: %s\n\nWhat number comes next?", strings.Join(p.spec.Sequence, ", "))
	case PuzzleKindPattern:
		b.WriteString("Look at this pattern and find what comes next:\n")
		b.WriteString(strings.Join(p.spec.Sequence, " "))
		b.WriteString("\n\nWhat comes next? (type the symbol or the shape name, like 'circle')")
	case PuzzleKindMath:
		b.WriteString(p.spec.Description)
		b.WriteString("\n\nYour answer?")
	case PuzzleKindLogicGrid:
		b.WriteString(p.spec.Description)
		b.WriteString("\n\nClues:\n")
		for i, clue := range p.spec.Clues {
			fmt.Fprintf(&b, "%d. %s\n", i+1, clue)
		}
		fmt.Fprintf(&b, "\nQuestion %d: %s", p.question+1, p.spec.Questions[p.question])
	}

	if p.hintsUsed < puzzleMaxHints {
		fmt.Fprintf(&b, "\n(Type 'hint' for a clue - %d hint(s) remaining)", puzzleMaxHints-p.hintsUsed)
	}
	return b.String()
}

func (p *Puzzle) Respond(input string, _ player.Stats) Result {
	answer := normalize(input)

	if answer == "hint" && p.hintsUsed < puzzleMaxHints {
		p.hintsUsed++
		return Result{Message: "Hint: " + p.hintText(), Intermediate: true}
	}

	switch p.spec.Kind {
	case PuzzleKindLogicGrid:
		return p.respondLogicGrid(answer)
	case PuzzleKindPattern:
		return p.respondPattern(answer)
	}
	return p.respondDirect(answer)
}

func (p *Puzzle) hintText() string {
	switch p.spec.Kind {
	case PuzzleKindSequence:
		return "Think about the rule: " + p.ruleOr("look for a pattern")
	case PuzzleKindLogicGrid:
		return "Try to eliminate possibilities using the clues systematically."
	case PuzzleKindMath:
		return "Break the problem down into smaller parts and think step by step."
	case PuzzleKindPattern:
		return "The pattern follows: " + p.ruleOr("a repeating sequence")
	}
	return "Look for patterns and relationships."
}

func (p *Puzzle) ruleOr(fallback string) string {
	if p.spec.Rule != "" {
		return p.spec.Rule
	}
	return fallback
}

func (p *Puzzle) respondDirect(answer string) Result {
	if answer != normalize(p.spec.Answer) {
		if p.spec.Kind == PuzzleKindMath {
			return Result{Message: "That's not correct. Think about the problem step by step."}
		}
		return Result{Message: "That's not correct. The sequence follows a specific mathematical rule."}
	}
	p.completed = true
	msg := fmt.Sprintf("Correct! The answer is %s.", p.spec.Answer)
	if p.spec.Kind == PuzzleKindMath && p.spec.Explanation != "" {
		msg = "Correct! " + p.spec.Explanation
	} else if p.spec.Rule != "" {
		msg += " The rule was: " + p.spec.Rule + "."
	}
	return Result{Success: true, Message: msg, Reward: &p.reward}
}

func (p *Puzzle) respondLogicGrid(answer string) Result {
	if answer != normalize(p.spec.Answers[p.question]) {
		return Result{Message: "That's not correct. Use the clues to eliminate possibilities."}
	}
	p.question++
	if p.question < len(p.spec.Questions) {
		return Result{Message: "Correct! Moving to the next question...", Intermediate: true}
	}
	p.completed = true
	return Result{Success: true, Message: "Excellent! You've solved the entire logic puzzle!", Reward: &p.reward}
}

// shapeWords maps pattern symbols to their spoken names and the ASCII
// stand-ins players without the symbols on their keyboard can type.
var shapeWords = map[string][]string{
	"○": {"circle", "o"},
	"△": {"triangle", "^"},
	"□": {"square", "#"},
}

func (p *Puzzle) respondPattern(answer string) Result {
	correct := normalize(p.spec.Answer)
	ok := answer == correct
	if !ok {
		for _, alt := range shapeWords[correct] {
			if answer == alt {
				ok = true
				break
			}
		}
	}
	if !ok {
		return Result{Message: "That's not correct. Look carefully at the repeating pattern. You can type the symbol or the name of the shape."}
	}
	p.completed = true
	return Result{
		Success: true,
		Message: "Correct! The pattern was: " + p.ruleOr("a repeating sequence"),
		Reward:  &p.reward,
	}
}

func (p *Puzzle) Reward() *player.Item {
	if !p.completed {
		return nil
	}
	return &p.reward
}

func (p *Puzzle) Completed() bool { return p.completed }

func (p *Puzzle) Reset() {
	p.question = 0
	p.hintsUsed = 0
	p.completed = false
}
