package challenge

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"labyrinth-terminal/internal/player"
)

// Memory kinds. Sequence, color and number are recall-in-order; grid
// shows symbol positions and asks for them back.
const (
	MemoryKindSequence = "sequence"
	MemoryKindGrid     = "grid"
	MemoryKindColor    = "color"
	MemoryKindNumber   = "number"
)

const (
	memoryMaxAttempts = 3
	memoryFailDamage  = 8
)

var memorySymbols = map[string][]string{
	MemoryKindSequence: {"A", "B", "C", "D", "E", "F", "G", "H"},
	MemoryKindGrid:     {"*", "#", "@", "%", "&", "+", "=", "~"},
	MemoryKindColor:    {"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Pink", "Cyan"},
	MemoryKindNumber:   {"1", "2", "3", "4", "5", "6", "7", "8", "9"},
}

var memoryNames = map[string]string{
	MemoryKindSequence: "Sequence Memory",
	MemoryKindGrid:     "Pattern Memory",
	MemoryKindColor:    "Color Memory",
	MemoryKindNumber:   "Number Memory",
}

type memoryPhase int

const (
	phaseBriefing memoryPhase = iota
	phaseRecall
)

type gridCell struct {
	row, col int
	symbol   string
}

// Memory shows a sequence or a symbol grid once, then scores the
// player's recall against an accuracy threshold that eases as the
// difficulty climbs.
type Memory struct {
	kind       string
	difficulty int
	reward     player.Item
	rng        *rand.Rand

	sequence []string
	gridSize int
	cells    []gridCell

	phase     memoryPhase
	attempts  int
	completed bool
}

// NewMemory builds a memory test of the given kind. An empty kind picks
// one at random.
func NewMemory(kind string, difficulty int, rng *rand.Rand) (*Memory, error) {
	if kind == "" {
		kinds := []string{MemoryKindSequence, MemoryKindGrid, MemoryKindColor, MemoryKindNumber}
		kind = kinds[rng.Intn(len(kinds))]
	}
	if _, ok := memorySymbols[kind]; !ok {
		return nil, fmt.Errorf("unknown memory challenge kind %q", kind)
	}
	m := &Memory{
		kind:       kind,
		difficulty: clampDifficulty(difficulty),
		rng:        rng,
	}
	m.reward = memoryReward(m.difficulty)
	m.generate()
	return m, nil
}

func memoryReward(difficulty int) player.Item {
	names := []string{
		"Memory Crystal", "Mind Enhancer", "Recall Potion", "Focus Amulet",
		"Concentration Ring", "Mental Clarity Gem", "Wisdom Stone", "Thought Amplifier",
	}
	idx := difficulty - 1
	if idx >= len(names) {
		idx = len(names) - 1
	}
	name := names[idx]
	return player.Item{
		Name:        name,
		Description: fmt.Sprintf("A %s that sharpens your memory and focus", strings.ToLower(name)),
		Category:    player.CategoryTreasure,
		Value:       difficulty * 10,
	}
}

// length is how many items to memorize: 2 plus difficulty, capped at 12.
func (m *Memory) length() int {
	n := 2 + m.difficulty
	if n > 12 {
		n = 12
	}
	return n
}

// threshold is the accuracy percentage needed to pass.
func (m *Memory) threshold() int {
	t := 100 - m.difficulty*5
	if t < 60 {
		t = 60
	}
	return t
}

func (m *Memory) generate() {
	symbols := memorySymbols[m.kind]
	if m.kind == MemoryKindGrid {
		m.generateGrid(symbols)
		return
	}

	n := m.length()
	m.sequence = make([]string, 0, n)
	if m.difficulty <= 3 {
		// Easy sequences avoid repeats as far as the symbol set allows.
		perm := m.rng.Perm(len(symbols))
		for _, idx := range perm {
			if len(m.sequence) == n {
				break
			}
			m.sequence = append(m.sequence, symbols[idx])
		}
		return
	}
	for i := 0; i < n; i++ {
		m.sequence = append(m.sequence, symbols[m.rng.Intn(len(symbols))])
	}
}

func (m *Memory) generateGrid(symbols []string) {
	m.gridSize = 3
	if m.difficulty > 5 {
		m.gridSize = 4
	}
	total := m.gridSize * m.gridSize
	n := m.length()
	if n > total {
		n = total
	}
	positions := m.rng.Perm(total)[:n]
	m.cells = make([]gridCell, 0, n)
	for i, pos := range positions {
		m.cells = append(m.cells, gridCell{
			row:    pos / m.gridSize,
			col:    pos % m.gridSize,
			symbol: symbols[i%len(symbols)],
		})
	}
}

func (m *Memory) Name() string { return memoryNames[m.kind] }

func (m *Memory) Present() string {
	if m.phase == phaseRecall {
		return m.recallPrompt()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", m.Name())
	fmt.Fprintf(&b, "Difficulty: %d/10\n", m.difficulty)
	if m.kind == MemoryKindGrid {
		fmt.Fprintf(&b, "Symbols to remember: %d\n\n", len(m.cells))
	} else {
		fmt.Fprintf(&b, "Sequence Length: %d\n\n", len(m.sequence))
	}
	if m.attempts > 0 {
		fmt.Fprintf(&b, "Attempts remaining: %d\n\n", memoryMaxAttempts-m.attempts)
	}
	b.WriteString("The sequence will be shown once. Pay close attention!\n")
	b.WriteString("Type 'ready' when you're prepared to see it.")
	return b.String()
}

func (m *Memory) recallPrompt() string {
	if m.kind == MemoryKindGrid {
		return "Enter the positions and symbols you saw.\n" +
			"Format: row,col,symbol (e.g. '1,2,*'), separated by semicolons.\n" +
			"Rows and columns are numbered starting from 1."
	}
	return "Enter the sequence you saw, separated by spaces or commas."
}

func (m *Memory) Respond(input string, _ player.Stats) Result {
	if m.phase == phaseBriefing {
		if normalize(input) != "ready" {
			return Result{Message: "Type 'ready' when you're prepared to see the sequence.", Intermediate: true}
		}
		m.phase = phaseRecall
		return Result{
			Message:      m.reveal() + "\n\n" + m.recallPrompt(),
			Intermediate: true,
		}
	}

	m.attempts++
	if m.kind == MemoryKindGrid {
		return m.scoreGrid(input)
	}
	return m.scoreSequence(input)
}

func (m *Memory) reveal() string {
	var b strings.Builder
	if m.kind == MemoryKindGrid {
		b.WriteString("MEMORIZE THIS PATTERN:\n\n   ")
		for c := 0; c < m.gridSize; c++ {
			fmt.Fprintf(&b, " %d ", c+1)
		}
		b.WriteString("\n")
		grid := make([][]string, m.gridSize)
		for r := range grid {
			grid[r] = make([]string, m.gridSize)
			for c := range grid[r] {
				grid[r][c] = " "
			}
		}
		for _, cell := range m.cells {
			grid[cell.row][cell.col] = cell.symbol
		}
		for r := 0; r < m.gridSize; r++ {
			fmt.Fprintf(&b, "%d: ", r+1)
			for c := 0; c < m.gridSize; c++ {
				fmt.Fprintf(&b, "[%s]", grid[r][c])
			}
			b.WriteString("\n")
		}
		return b.String()
	}
	b.WriteString("MEMORIZE THIS SEQUENCE:\n\n")
	b.WriteString(strings.Join(m.sequence, " -> "))
	return b.String()
}

func (m *Memory) scoreSequence(input string) Result {
	given := splitSequence(input)
	correct := 0
	for i := range m.sequence {
		if i < len(given) && strings.EqualFold(given[i], m.sequence[i]) {
			correct++
		}
	}
	return m.finish(correct, len(m.sequence), "The correct sequence was: "+strings.Join(m.sequence, " -> "))
}

func (m *Memory) scoreGrid(input string) Result {
	given := make(map[gridCell]bool)
	for _, entry := range strings.Split(strings.ReplaceAll(input, "\n", ";"), ";") {
		parts := strings.Split(strings.TrimSpace(entry), ",")
		if len(parts) != 3 {
			continue
		}
		row, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		col, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			continue
		}
		given[gridCell{row: row - 1, col: col - 1, symbol: strings.TrimSpace(parts[2])}] = true
	}

	correct := 0
	answer := make([]string, 0, len(m.cells))
	for _, cell := range m.cells {
		if given[cell] {
			correct++
		}
		answer = append(answer, fmt.Sprintf("%d,%d,%s", cell.row+1, cell.col+1, cell.symbol))
	}
	return m.finish(correct, len(m.cells), "The correct pattern was: "+strings.Join(answer, "; "))
}

func (m *Memory) finish(correct, total int, revealAnswer string) Result {
	accuracy := 0
	if total > 0 {
		accuracy = correct * 100 / total
	}

	if accuracy >= m.threshold() {
		m.completed = true
		return Result{
			Success: true,
			Message: fmt.Sprintf("Excellent memory! You got %d/%d correct (%d%%).", correct, total, accuracy),
			Reward:  &m.reward,
		}
	}

	remaining := memoryMaxAttempts - m.attempts
	if remaining > 0 {
		m.phase = phaseBriefing
		return Result{
			Message: fmt.Sprintf("Not quite right. You got %d/%d correct (%d%%). You need at least %d%% accuracy. %d attempt(s) remaining.",
				correct, total, accuracy, m.threshold(), remaining),
		}
	}
	return Result{
		Message: "Memory challenge failed. " + revealAnswer,
		Damage:  memoryFailDamage,
	}
}

func splitSequence(input string) []string {
	input = strings.TrimSpace(input)
	var raw []string
	switch {
	case strings.Contains(input, "->"):
		raw = strings.Split(input, "->")
	case strings.Contains(input, ","):
		raw = strings.Split(input, ",")
	default:
		raw = strings.Fields(input)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (m *Memory) Reward() *player.Item {
	if !m.completed {
		return nil
	}
	return &m.reward
}

func (m *Memory) Completed() bool { return m.completed }

func (m *Memory) Reset() {
	m.attempts = 0
	m.completed = false
	m.phase = phaseBriefing
	m.generate()
}
