// Package ui renders the game in the terminal: a status header, a
// scrollback of game text, and an input line.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"labyrinth-terminal/internal/game"
)

type Model struct {
	engine *game.Engine
	styles Styles
	log    *zap.Logger

	input      textinput.Model
	output     []string // scrollback buffer
	history    []string // entered commands
	historyIdx int

	width, height int
	viewportReady bool // avoid rendering before size is known
	gameOver      bool
}

// NewModel wraps a started engine. The opening text is already in the
// scrollback when the first frame renders.
func NewModel(engine *game.Engine, styles Styles, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type a command, 'help' for the list"
	input.CharLimit = 200
	input.Focus()

	return Model{
		engine: engine,
		styles: styles,
		log:    log,
		input:  input,
		output: renderBlocks(styles, engine.Start()),
	}
}

// renderBlocks splits a response into scrollback lines. A challenge
// presentation (everything from its "===" banner down) goes into a
// bordered box.
func renderBlocks(styles Styles, response string) []string {
	lines := strings.Split(response, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "===") {
			boxed := styles.ChallengeBox.Render(strings.Join(lines[i:], "\n"))
			out := append([]string(nil), lines[:i]...)
			return append(out, strings.Split(boxed, "\n")...)
		}
	}
	return lines
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewportReady = true
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.gameOver {
				return m, tea.Quit
			}
			return m.submit()

		case tea.KeyUp:
			if m.historyIdx > 0 {
				m.historyIdx--
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIdx < len(m.history) {
				m.historyIdx++
				if m.historyIdx == len(m.history) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.history[m.historyIdx])
					m.input.CursorEnd()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds the input line to the engine and appends the exchange to
// the scrollback.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if text == "" {
		return m, nil
	}

	m.history = append(m.history, text)
	m.historyIdx = len(m.history)

	m.output = append(m.output, "> "+text)
	response := m.engine.Submit(text)
	m.output = append(m.output, renderBlocks(m.styles, response)...)
	m.output = append(m.output, "")

	if m.engine.State() == game.StateQuit {
		return m, tea.Quit
	}
	if m.engine.State() != game.StatePlaying {
		m.gameOver = true
		m.output = append(m.output, m.styles.Muted.Render("Press Enter to leave the labyrinth."))
	}
	return m, nil
}

func (m Model) View() string {
	if !m.viewportReady {
		return "Entering the labyrinth..."
	}

	header := m.styles.Header.Width(m.width).Render(m.headerText())
	inputLine := m.input.View()

	termHeight := m.height - lipgloss.Height(header) - lipgloss.Height(inputLine)
	if termHeight < 0 {
		termHeight = 0
	}

	contentWidth := m.width - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapStyle := lipgloss.NewStyle().Width(contentWidth)

	// Walk the scrollback backwards, wrapping as we go, until the
	// visible region is full.
	var visible []string
	for i := len(m.output) - 1; i >= 0; i-- {
		rendered := wrapStyle.Render(m.styleLine(m.output[i]))
		visible = append(strings.Split(rendered, "\n"), visible...)
		if len(visible) >= termHeight {
			break
		}
	}
	if len(visible) > termHeight {
		visible = visible[len(visible)-termHeight:]
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(termHeight).
		Padding(0, 1).
		Render(strings.Join(visible, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, inputLine)
}

func (m Model) headerText() string {
	p := m.engine.Player()
	current := m.engine.World().Current()
	location := "???"
	if current != nil {
		location = current.Name
	}
	return fmt.Sprintf("%s | HP %d/%d | Lv %d | Score %d | %s",
		p.Name, p.Health, p.MaxHealth, p.Level, p.Progress.Score, location)
}

// styleLine colours a scrollback line by what it carries.
func (m Model) styleLine(text string) string {
	switch {
	case strings.Contains(text, "FLAG{") || strings.Contains(text, "YOUR PRIZE"):
		return m.styles.Prize.Render(text)
	case strings.HasPrefix(text, "==="):
		return m.styles.Challenge.Render(text)
	case strings.Contains(text, "Chamber cleared") || strings.HasPrefix(text, "Correct!") || strings.Contains(text, "Level up!"):
		return m.styles.Success.Render(text)
	case strings.Contains(text, "damage") || strings.Contains(text, "claims another soul"):
		return m.styles.Danger.Render(text)
	case strings.HasPrefix(text, "> "):
		return m.styles.Muted.Render(text)
	}
	return text
}

// Run drives the UI until the player leaves.
func Run(engine *game.Engine, noColor bool, log *zap.Logger) error {
	model := NewModel(engine, NewStyles(noColor), log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
