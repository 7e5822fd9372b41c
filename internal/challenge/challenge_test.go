package challenge

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth-terminal/internal/player"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestRiddleCorrectAnswer(t *testing.T) {
	r := NewRiddle(RiddleSpec{
		Question:   "The more you take, the more you leave behind. What am I?",
		Answers:    []string{"Footsteps", "steps"},
		Hint:       "Think about walking.",
		Difficulty: 3,
	}, 3)

	res := r.Respond("  FOOTSTEPS ", player.DefaultStats())
	assert.True(t, res.Success)
	require.NotNil(t, res.Reward)
	assert.Equal(t, player.CategoryTreasure, res.Reward.Category)
	assert.True(t, r.Completed())
}

func TestRiddleHintIsIntermediate(t *testing.T) {
	r := NewRiddle(RiddleSpec{Question: "q", Answers: []string{"a"}, Hint: "the hint"}, 5)

	for _, word := range []string{"hint", "help", "clue", "tip"} {
		res := r.Respond(word, player.DefaultStats())
		assert.True(t, res.Intermediate, word)
		assert.Contains(t, res.Message, "the hint")
	}
	assert.False(t, r.Completed(), "hints must not consume attempts or complete the riddle")
}

func TestRiddleExhaustsAttempts(t *testing.T) {
	r := NewRiddle(RiddleSpec{Question: "q", Answers: []string{"right"}}, 4)

	var res Result
	for i := 0; i < 3; i++ {
		res = r.Respond("wrong", player.DefaultStats())
	}
	assert.False(t, res.Success)
	assert.False(t, res.Intermediate)
	assert.Equal(t, 5, res.Damage)
	assert.Contains(t, res.Message, "right")

	r.Reset()
	res = r.Respond("right", player.DefaultStats())
	assert.True(t, res.Success)
}

func TestSequencePuzzle(t *testing.T) {
	p := NewPuzzle(PuzzleSpec{
		Kind:     PuzzleKindSequence,
		Sequence: []string{"2", "4", "6", "8", "?"},
		Answer:   "10",
		Rule:     "even numbers",
	}, 2)

	assert.Contains(t, p.Present(), "2, 4, 6, 8, ?")

	res := p.Respond("9", player.DefaultStats())
	assert.False(t, res.Success)

	res = p.Respond("10", player.DefaultStats())
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "even numbers")
}

func TestPatternPuzzleAcceptsWordsAndASCII(t *testing.T) {
	spec := PuzzleSpec{
		Kind:     PuzzleKindPattern,
		Sequence: []string{"△", "□", "△", "□", "△", "?"},
		Answer:   "□",
		Rule:     "alternating triangle and square",
	}

	for _, answer := range []string{"□", "square", "#", "SQUARE"} {
		p := NewPuzzle(spec, 5)
		res := p.Respond(answer, player.DefaultStats())
		assert.True(t, res.Success, "answer %q should be accepted", answer)
	}

	p := NewPuzzle(spec, 5)
	res := p.Respond("circle", player.DefaultStats())
	assert.False(t, res.Success)
}

func TestLogicGridStepsThroughQuestions(t *testing.T) {
	spec := PuzzleSpec{
		Kind:      PuzzleKindLogicGrid,
		Questions: []string{"q1", "q2", "q3"},
		Answers:   []string{"alpha", "beta", "gamma"},
	}
	p := NewPuzzle(spec, 9)

	res := p.Respond("alpha", player.DefaultStats())
	assert.True(t, res.Intermediate, "correct non-final answers are intermediate")

	res = p.Respond("wrong", player.DefaultStats())
	assert.False(t, res.Success)
	assert.False(t, res.Intermediate)

	res = p.Respond("beta", player.DefaultStats())
	assert.True(t, res.Intermediate)

	res = p.Respond("gamma", player.DefaultStats())
	assert.True(t, res.Success)
	assert.True(t, p.Completed())
}

func TestValidateRejectsUnplayableLogicGrids(t *testing.T) {
	short := &Content{Puzzles: []PuzzleSpec{{
		Kind:      PuzzleKindLogicGrid,
		Questions: []string{"q1", "q2"},
		Answers:   []string{"a1"},
	}}}
	err := short.Validate()
	require.Error(t, err, "a grid with fewer answers than questions cannot be finished")
	assert.Contains(t, err.Error(), "1 answers for 2 questions")

	bare := &Content{Puzzles: []PuzzleSpec{{
		Kind:   PuzzleKindLogicGrid,
		Answer: "42",
	}}}
	err = bare.Validate()
	require.Error(t, err, "the bare answer field does not drive a logic grid")
	assert.Contains(t, err.Error(), "no questions")

	ok := &Content{Puzzles: []PuzzleSpec{{
		Kind:      PuzzleKindLogicGrid,
		Questions: []string{"q1", "q2"},
		Answers:   []string{"a1", "a2"},
	}}}
	assert.NoError(t, ok.Validate())
}

func TestPuzzleHintLimit(t *testing.T) {
	p := NewPuzzle(PuzzleSpec{Kind: PuzzleKindSequence, Sequence: []string{"1", "?"}, Answer: "2"}, 1)

	res := p.Respond("hint", player.DefaultStats())
	assert.True(t, res.Intermediate)
	res = p.Respond("hint", player.DefaultStats())
	assert.True(t, res.Intermediate)

	// Third hint request is just a wrong answer.
	res = p.Respond("hint", player.DefaultStats())
	assert.False(t, res.Intermediate)
	assert.False(t, res.Success)
}

func TestEnemyDamageFloor(t *testing.T) {
	e := NewEnemy(EnemySpec{Name: "Stone Golem", Health: 70, Attack: 14, Defense: 6})

	landed := e.TakeDamage(3)
	assert.Equal(t, 1, landed, "defense cannot reduce a hit below 1")
	assert.Equal(t, 69, e.Health)

	landed = e.TakeDamage(200)
	assert.Equal(t, 69, landed)
	assert.False(t, e.IsAlive())
}

func TestCombatRunsToAConclusion(t *testing.T) {
	c := NewCombat(EnemySpec{Name: "Weak Goblin", Health: 20, Attack: 5, Defense: 1}, 1, testRNG())

	stats := player.DefaultStats()
	var res Result
	for i := 0; i < 100; i++ {
		res = c.Respond("attack", stats)
		if !res.Intermediate {
			break
		}
	}
	require.False(t, res.Intermediate, "an attack loop must end in victory or defeat")
	if res.Success {
		require.NotNil(t, res.Reward)
		assert.True(t, c.Completed())
	} else {
		assert.Equal(t, defeatDamage, res.Damage)
		assert.False(t, c.Completed())
	}
}

func TestCombatInvalidAction(t *testing.T) {
	c := NewCombat(EnemySpec{Name: "Cave Rat", Health: 25, Attack: 6, Defense: 1}, 2, testRNG())

	res := c.Respond("dance", player.DefaultStats())
	assert.True(t, res.Intermediate)
	assert.Contains(t, res.Message, "attack")
}

func TestSkillSuccessChance(t *testing.T) {
	s := &Skill{stat: player.StatStrength, difficulty: 5}
	assert.Equal(t, 50, s.successChance(10))
	assert.Equal(t, 65, s.successChance(15))

	s.difficulty = 10
	assert.Equal(t, 30, s.successChance(10))

	// Clamped at both ends.
	s.difficulty = 1
	assert.Equal(t, 95, s.successChance(30))
	s.difficulty = 10
	assert.Equal(t, 5, s.successChance(1))
}

func TestSkillExamineAndAttempts(t *testing.T) {
	spec := ScenarioSpec{Stat: player.StatStrength, Text: "A boulder blocks the path.", Difficulty: 5}
	s := NewSkill(spec, 5, testRNG())

	res := s.Respond("examine", player.DefaultStats())
	assert.True(t, res.Intermediate)

	res = s.Respond("sing", player.DefaultStats())
	assert.True(t, res.Intermediate, "unknown verbs must not consume attempts")

	var last Result
	for i := 0; i < skillMaxAttempts; i++ {
		last = s.Respond("attempt", player.DefaultStats())
		if last.Success {
			break
		}
	}
	if last.Success {
		require.NotNil(t, last.Reward)
		assert.True(t, s.Completed())
	} else {
		assert.Greater(t, last.Damage, 0, "final failure must cost health")
	}
}

func TestMemorySequenceRoundTrip(t *testing.T) {
	m, err := NewMemory(MemoryKindSequence, 1, testRNG())
	require.NoError(t, err)
	assert.Len(t, m.sequence, 3)

	res := m.Respond("what?", player.DefaultStats())
	assert.True(t, res.Intermediate)
	assert.Contains(t, res.Message, "ready")

	res = m.Respond("ready", player.DefaultStats())
	assert.True(t, res.Intermediate)
	assert.Contains(t, res.Message, "MEMORIZE")

	res = m.Respond(strings.Join(m.sequence, " "), player.DefaultStats())
	assert.True(t, res.Success)
	assert.True(t, m.Completed())
}

func TestMemoryFailureExhaustsAttempts(t *testing.T) {
	m, err := NewMemory(MemoryKindNumber, 5, testRNG())
	require.NoError(t, err)

	var res Result
	for i := 0; i < memoryMaxAttempts; i++ {
		res = m.Respond("ready", player.DefaultStats())
		require.True(t, res.Intermediate)
		res = m.Respond("0 0 0 0 0 0 0", player.DefaultStats())
	}
	assert.False(t, res.Success)
	assert.Equal(t, memoryFailDamage, res.Damage)
	assert.Contains(t, res.Message, "correct sequence was")
}

func TestMemoryGridScoring(t *testing.T) {
	m, err := NewMemory(MemoryKindGrid, 3, testRNG())
	require.NoError(t, err)
	assert.Equal(t, 3, m.gridSize)

	res := m.Respond("ready", player.DefaultStats())
	require.True(t, res.Intermediate)

	var parts []string
	for _, cell := range m.cells {
		parts = append(parts, fmt.Sprintf("%d,%d,%s", cell.row+1, cell.col+1, cell.symbol))
	}
	res = m.Respond(strings.Join(parts, "; "), player.DefaultStats())
	assert.True(t, res.Success)
}

func TestFactoryBuildsEveryType(t *testing.T) {
	f := NewFactory(nil, testRNG())

	for _, typ := range f.Types() {
		ch, err := f.New(typ, 5)
		require.NoError(t, err, typ)
		require.NotNil(t, ch, typ)
		assert.NotEmpty(t, ch.Present(), typ)
		assert.False(t, ch.Completed(), typ)
	}

	_, err := f.New("karaoke", 5)
	assert.Error(t, err)
}

func TestFactoryClampsDifficulty(t *testing.T) {
	f := NewFactory(nil, testRNG())

	ch, err := f.New(TypeRiddle, 99)
	require.NoError(t, err)
	assert.Contains(t, ch.Present(), "10/10")

	ch, err = f.New(TypeRiddle, -3)
	require.NoError(t, err)
	assert.Contains(t, ch.Present(), "1/10")
}

func TestLoadContentPack(t *testing.T) {
	pack := `
riddles:
  - question: "What walks on four legs in the morning?"
    answers: ["man", "a man", "human"]
    hint: "Think of the ages of life."
    difficulty: 6
enemies:
  - name: "Sphinx"
    health: 80
    attack: 15
    defense: 5
    difficulty: 6
`
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o644))

	content, err := LoadContent(path)
	require.NoError(t, err)
	require.Len(t, content.Riddles, 1)
	assert.Equal(t, "Sphinx", content.Enemies[0].Name)

	base := DefaultContent()
	base.Merge(content)
	assert.Len(t, base.Riddles, 1, "pack riddles replace the built-ins")
	assert.NotEmpty(t, base.Puzzles, "sections the pack omits stay built-in")
}

func TestLoadContentRejectsBrokenPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("riddles:\n  - question: \"no answers\"\n"), 0o644))

	_, err := LoadContent(path)
	assert.Error(t, err)

	_, err = LoadContent(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultContentIsValid(t *testing.T) {
	require.NoError(t, DefaultContent().Validate())
}
