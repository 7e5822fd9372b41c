package challenge

import (
	"fmt"
	"strings"

	"labyrinth-terminal/internal/player"
)

const riddleMaxAttempts = 3

// Riddle asks a question with several acceptable answers. Three wrong
// answers end it with a small health penalty.
type Riddle struct {
	name       string
	question   string
	answers    []string
	hint       string
	difficulty int
	reward     player.Item
	attempts   int
	completed  bool
}

// NewRiddle builds a riddle from content-pack material. Answers are
// normalised once so comparisons stay cheap.
func NewRiddle(spec RiddleSpec, difficulty int) *Riddle {
	difficulty = clampDifficulty(difficulty)
	answers := make([]string, 0, len(spec.Answers))
	for _, a := range spec.Answers {
		answers = append(answers, normalize(a))
	}
	name := "Riddle Challenge"
	if spec.Category != "" {
		name = fmt.Sprintf("Riddle Challenge (%s)", capitalizeWord(spec.Category))
	}
	return &Riddle{
		name:       name,
		question:   spec.Question,
		answers:    answers,
		hint:       spec.Hint,
		difficulty: difficulty,
		reward:     riddleReward(difficulty),
	}
}

func riddleReward(difficulty int) player.Item {
	names := []string{
		"Ancient Key", "Wisdom Scroll", "Crystal Shard", "Golden Coin",
		"Magic Rune", "Silver Token", "Mystic Gem", "Sacred Amulet",
	}
	name := names[difficulty%len(names)]
	return player.Item{
		Name:        name,
		Description: fmt.Sprintf("A valuable %s earned by solving a riddle", strings.ToLower(name)),
		Category:    player.CategoryTreasure,
		Value:       difficulty * 10,
	}
}

func (r *Riddle) Name() string { return r.name }

func (r *Riddle) Present() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", r.name)
	fmt.Fprintf(&b, "Difficulty: %d/10\n\n", r.difficulty)
	b.WriteString(r.question)
	b.WriteString("\n")
	if r.attempts > 0 {
		fmt.Fprintf(&b, "\nAttempts remaining: %d\n", riddleMaxAttempts-r.attempts)
	}
	b.WriteString("\nWhat is your answer?")
	return b.String()
}

func (r *Riddle) Respond(input string, _ player.Stats) Result {
	answer := normalize(input)

	if isHintRequest(answer) {
		return Result{Message: "Hint: " + r.hintText(), Intermediate: true}
	}

	r.attempts++
	for _, accepted := range r.answers {
		if answer == accepted {
			r.completed = true
			return Result{
				Success: true,
				Message: "Correct! " + r.successMessage(),
				Reward:  &r.reward,
			}
		}
	}

	remaining := riddleMaxAttempts - r.attempts
	if remaining > 0 {
		return Result{Message: fmt.Sprintf("That's not correct. %s You have %d attempt(s) remaining.", r.hintText(), remaining)}
	}

	shown := r.answers
	if len(shown) > 3 {
		shown = shown[:3]
	}
	return Result{
		Message: fmt.Sprintf("You've run out of attempts. The answer was: %s", strings.Join(shown, ", ")),
		Damage:  5,
	}
}

func (r *Riddle) successMessage() string {
	switch r.attempts {
	case 1:
		return "Brilliant! You solved it on the first try!"
	case 2:
		return "Good thinking! You got it on the second attempt."
	}
	return "You persevered and found the answer!"
}

func (r *Riddle) hintText() string {
	if r.hint != "" {
		return r.hint
	}
	return "Think carefully about the clues in the riddle."
}

func (r *Riddle) Reward() *player.Item {
	if !r.completed {
		return nil
	}
	return &r.reward
}

func (r *Riddle) Completed() bool { return r.completed }

func (r *Riddle) Reset() {
	r.attempts = 0
	r.completed = false
}

func capitalizeWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
