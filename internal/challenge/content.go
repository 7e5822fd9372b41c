package challenge

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// RiddleSpec is one riddle in a content pack.
type RiddleSpec struct {
	Question   string   `yaml:"question"`
	Answers    []string `yaml:"answers"`
	Hint       string   `yaml:"hint"`
	Category   string   `yaml:"category"`
	Difficulty int      `yaml:"difficulty"`
}

// PuzzleSpec is one puzzle in a content pack. Which fields matter depends
// on Kind: sequence/pattern use Sequence+Rule, math uses Explanation,
// logic_grid uses Clues/Questions/Answers.
type PuzzleSpec struct {
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	Sequence    []string `yaml:"sequence"`
	Answer      string   `yaml:"answer"`
	Rule        string   `yaml:"rule"`
	Explanation string   `yaml:"explanation"`
	Clues       []string `yaml:"clues"`
	Questions   []string `yaml:"questions"`
	Answers     []string `yaml:"answers"`
	Difficulty  int      `yaml:"difficulty"`
}

// EnemySpec is one combat opponent in a content pack.
type EnemySpec struct {
	Name       string `yaml:"name"`
	Health     int    `yaml:"health"`
	Attack     int    `yaml:"attack"`
	Defense    int    `yaml:"defense"`
	Difficulty int    `yaml:"difficulty"`
}

// ScenarioSpec is one skill-check scene in a content pack.
type ScenarioSpec struct {
	Stat       string `yaml:"stat"`
	Text       string `yaml:"text"`
	Difficulty int    `yaml:"difficulty"`
}

// Content is a pack of challenge material. Operators can ship their own
// pack to reskin every chamber without touching code.
type Content struct {
	Riddles   []RiddleSpec   `yaml:"riddles"`
	Puzzles   []PuzzleSpec   `yaml:"puzzles"`
	Enemies   []EnemySpec    `yaml:"enemies"`
	Scenarios []ScenarioSpec `yaml:"skill_scenarios"`
}

// LoadContent reads a YAML content pack from disk.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content pack: %w", err)
	}

	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content pack: %w", err)
	}

	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content pack %s: %w", path, err)
	}
	return &content, nil
}

// Validate rejects packs with unusable entries.
func (c *Content) Validate() error {
	for i, r := range c.Riddles {
		if r.Question == "" {
			return fmt.Errorf("riddle %d has no question", i)
		}
		if len(r.Answers) == 0 {
			return fmt.Errorf("riddle %d (%q) has no answers", i, r.Question)
		}
	}
	for i, p := range c.Puzzles {
		// Logic grids answer question-by-question; the bare answer
		// field does not apply to them.
		if p.Kind == PuzzleKindLogicGrid {
			if len(p.Questions) == 0 {
				return fmt.Errorf("logic grid puzzle %d has no questions", i)
			}
			if len(p.Answers) != len(p.Questions) {
				return fmt.Errorf("logic grid puzzle %d has %d answers for %d questions",
					i, len(p.Answers), len(p.Questions))
			}
			continue
		}
		if p.Answer == "" {
			return fmt.Errorf("puzzle %d has no answer", i)
		}
	}
	for i, e := range c.Enemies {
		if e.Name == "" {
			return fmt.Errorf("enemy %d has no name", i)
		}
		if e.Health <= 0 || e.Attack <= 0 {
			return fmt.Errorf("enemy %d (%s) has non-positive health or attack", i, e.Name)
		}
	}
	for i, s := range c.Scenarios {
		if s.Text == "" {
			return fmt.Errorf("skill scenario %d has no text", i)
		}
	}
	return nil
}

// Merge lays pack entries over the built-in material, so a pack only
// needs the sections it wants to replace.
func (c *Content) Merge(pack *Content) {
	if len(pack.Riddles) > 0 {
		c.Riddles = pack.Riddles
	}
	if len(pack.Puzzles) > 0 {
		c.Puzzles = pack.Puzzles
	}
	if len(pack.Enemies) > 0 {
		c.Enemies = pack.Enemies
	}
	if len(pack.Scenarios) > 0 {
		c.Scenarios = pack.Scenarios
	}
}

// riddleFor picks a riddle matching the difficulty, preferring exact
// matches and falling back to the nearest band.
func (c *Content) riddleFor(difficulty int, rng *rand.Rand) RiddleSpec {
	best := pickByDifficulty(len(c.Riddles), difficulty, rng, func(i int) int { return c.Riddles[i].Difficulty })
	return c.Riddles[best]
}

func (c *Content) puzzleFor(kind string, difficulty int, rng *rand.Rand) (PuzzleSpec, bool) {
	matching := make([]int, 0, len(c.Puzzles))
	for i, p := range c.Puzzles {
		if p.Kind == kind {
			matching = append(matching, i)
		}
	}
	if len(matching) == 0 {
		return PuzzleSpec{}, false
	}
	best := pickByDifficulty(len(matching), difficulty, rng, func(i int) int { return c.Puzzles[matching[i]].Difficulty })
	return c.Puzzles[matching[best]], true
}

func (c *Content) enemyFor(difficulty int, rng *rand.Rand) EnemySpec {
	best := pickByDifficulty(len(c.Enemies), difficulty, rng, func(i int) int { return c.Enemies[i].Difficulty })
	return c.Enemies[best]
}

func (c *Content) scenarioFor(stat string, difficulty int, rng *rand.Rand) (ScenarioSpec, bool) {
	matching := make([]int, 0, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Stat == stat {
			matching = append(matching, i)
		}
	}
	if len(matching) == 0 {
		return ScenarioSpec{}, false
	}
	best := pickByDifficulty(len(matching), difficulty, rng, func(i int) int { return c.Scenarios[matching[i]].Difficulty })
	return c.Scenarios[matching[best]], true
}

// pickByDifficulty returns the index (0..n-1) whose difficulty is closest
// to the target, breaking ties randomly so repeated chambers vary.
func pickByDifficulty(n, target int, rng *rand.Rand, diff func(i int) int) int {
	bestDist := -1
	var candidates []int
	for i := 0; i < n; i++ {
		d := diff(i) - target
		if d < 0 {
			d = -d
		}
		switch {
		case bestDist < 0 || d < bestDist:
			bestDist = d
			candidates = candidates[:0]
			candidates = append(candidates, i)
		case d == bestDist:
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}
