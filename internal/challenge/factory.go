package challenge

import (
	"fmt"
	"math/rand"

	"labyrinth-terminal/internal/player"
)

// Factory builds challenges from content material. A seeded source makes
// every pick reproducible, which the generator and the tests rely on.
type Factory struct {
	content *Content
	rng     *rand.Rand
}

// NewFactory returns a factory over the given content. A nil content
// uses the built-in material; a nil source seeds from entropy.
func NewFactory(content *Content, rng *rand.Rand) *Factory {
	if content == nil {
		content = DefaultContent()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Factory{content: content, rng: rng}
}

// Types lists every challenge type the factory can build.
func (f *Factory) Types() []string {
	return []string{TypeRiddle, TypePuzzle, TypeCombat, TypeSkill, TypeMemory}
}

// New builds a challenge of the named type at the given difficulty.
func (f *Factory) New(challengeType string, difficulty int) (Challenge, error) {
	difficulty = clampDifficulty(difficulty)
	switch challengeType {
	case TypeRiddle:
		return NewRiddle(f.content.riddleFor(difficulty, f.rng), difficulty), nil
	case TypePuzzle:
		kind := PuzzleKindFor(difficulty)
		spec, ok := f.content.puzzleFor(kind, difficulty, f.rng)
		if !ok {
			// Pack without this kind: fall back to any puzzle it carries.
			if len(f.content.Puzzles) == 0 {
				return nil, fmt.Errorf("content has no puzzles")
			}
			spec = f.content.Puzzles[f.rng.Intn(len(f.content.Puzzles))]
		}
		return NewPuzzle(spec, difficulty), nil
	case TypeCombat:
		if len(f.content.Enemies) == 0 {
			return nil, fmt.Errorf("content has no enemies")
		}
		return NewCombat(f.content.enemyFor(difficulty, f.rng), difficulty, f.rng), nil
	case TypeSkill:
		stats := []string{player.StatStrength, player.StatIntelligence, player.StatDexterity, player.StatLuck}
		stat := stats[f.rng.Intn(len(stats))]
		spec, ok := f.content.scenarioFor(stat, difficulty, f.rng)
		if !ok {
			if len(f.content.Scenarios) == 0 {
				return nil, fmt.Errorf("content has no skill scenarios")
			}
			spec = f.content.Scenarios[f.rng.Intn(len(f.content.Scenarios))]
		}
		return NewSkill(spec, difficulty, f.rng), nil
	case TypeMemory:
		return NewMemory("", difficulty, f.rng)
	}
	return nil, fmt.Errorf("unknown challenge type %q (available: %v)", challengeType, f.Types())
}

// NewRandom builds a random challenge type at the given difficulty.
func (f *Factory) NewRandom(difficulty int) (Challenge, error) {
	types := f.Types()
	return f.New(types[f.rng.Intn(len(types))], difficulty)
}
