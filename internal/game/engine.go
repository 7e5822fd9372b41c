package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"labyrinth-terminal/internal/challenge"
	"labyrinth-terminal/internal/config"
	"labyrinth-terminal/internal/player"
	"labyrinth-terminal/internal/world"
)

// State is the engine's lifecycle phase.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
	StateQuit
)

// hardDamageNum/Den scale damage taken in hard mode (x1.5, rounded up).
const (
	hardDamageNum = 3
	hardDamageDen = 2
)

// Options configures a new engine.
type Options struct {
	Definition *world.Definition
	Config     *config.Config
	Saves      *SaveManager
	Factory    *challenge.Factory
	PlayerName string
	Hard       bool
	Logger     *zap.Logger
}

// Engine runs one game: it owns the world, the player, and the rules
// that connect them. The UI feeds it lines and prints what comes back.
type Engine struct {
	world   *world.World
	def     *world.Definition
	player  *player.Player
	cfg     *config.Config
	parser  *Parser
	saves   *SaveManager
	factory *challenge.Factory
	log     *zap.Logger

	state     State
	hard      bool
	sessionID string
	startedAt time.Time
	priorPlay time.Duration
}

// NewEngine builds the world from the definition and places the player
// at the start.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Definition == nil {
		opts.Definition = world.DefaultDefinition()
	}
	if opts.Factory == nil {
		opts.Factory = challenge.NewFactory(nil, nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "Adventurer"
	}

	w, err := opts.Definition.Build(opts.Factory)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		world:     w,
		def:       opts.Definition,
		player:    player.New(opts.PlayerName),
		cfg:       opts.Config,
		parser:    NewParser(),
		saves:     opts.Saves,
		factory:   opts.Factory,
		log:       opts.Logger,
		hard:      opts.Hard,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
	}
	e.player.Progress.VisitChamber(w.CurrentID(), w.Current().Connections)
	return e, nil
}

// State returns the lifecycle phase.
func (e *Engine) State() State { return e.state }

// Player returns the adventurer, for the status bar.
func (e *Engine) Player() *player.Player { return e.player }

// World returns the labyrinth.
func (e *Engine) World() *world.World { return e.world }

// PlayTime returns total time in the labyrinth, including loaded saves.
func (e *Engine) PlayTime() time.Duration {
	return e.priorPlay + time.Since(e.startedAt)
}

// Start returns the opening text: title, intro, and the first chamber.
func (e *Engine) Start() string {
	title := "Labyrinth Terminal"
	if e.cfg != nil {
		title = e.cfg.GetString("game.title", title)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n\n", title)
	b.WriteString("You descend worn stone steps into the labyrinth. ")
	b.WriteString("Clear every chamber's challenge to claim the prize.\n")
	b.WriteString("Type 'help' for commands.\n\n")
	b.WriteString(e.describeChamber())
	return b.String()
}

// Submit feeds one line of player input to the game and returns the
// text to show. Input that is not a recognised command goes to the
// active challenge, so combat actions and riddle answers need no
// prefix.
func (e *Engine) Submit(input string) string {
	if e.state != StatePlaying {
		return "The game is over. Start a new one to play again."
	}

	cmd, err := e.parser.Parse(input)
	if err != nil {
		if e.activeChallenge() != nil {
			return e.routeToChallenge(strings.TrimSpace(input))
		}
		return err.Error()
	}

	switch cmd.Name {
	case "go":
		return e.handleGo(cmd.Args[0])
	case "look":
		if name := cmd.Arg(); name != "" {
			return e.handleExamine(name)
		}
		return e.describeChamber()
	case "map":
		return e.RenderMap()
	case "inventory":
		return e.handleInventory()
	case "take":
		return e.handleTake(cmd.Arg())
	case "drop":
		return e.handleDrop(cmd.Arg())
	case "use":
		return e.handleUse(cmd.Arg())
	case "status":
		return e.handleStatus()
	case "answer":
		if e.activeChallenge() == nil {
			return "There is no challenge to answer here."
		}
		return e.routeToChallenge(cmd.Arg())
	case "hint":
		if e.activeChallenge() == nil {
			return "There is no challenge here to ask about."
		}
		return e.routeToChallenge("hint")
	case "save":
		slot := "quicksave"
		if len(cmd.Args) > 0 {
			slot = cmd.Args[0]
		}
		return e.handleSave(slot)
	case "load":
		return e.handleLoad(cmd.Args[0])
	case "help":
		if len(cmd.Args) > 0 {
			return e.parser.HelpFor(cmd.Args[0])
		}
		return e.parser.Help()
	case "quit":
		e.state = StateQuit
		return "You retreat from the labyrinth. Farewell."
	}
	return fmt.Sprintf("unknown command %q", cmd.Name)
}

// activeChallenge returns the current chamber's challenge if it still
// blocks the way.
func (e *Engine) activeChallenge() challenge.Challenge {
	current := e.world.Current()
	if current == nil || current.Completed || current.Challenge == nil {
		return nil
	}
	return current.Challenge
}

// routeToChallenge offers input to the chamber's challenge and applies
// the outcome to the player.
func (e *Engine) routeToChallenge(input string) string {
	current := e.world.Current()
	ch := current.Challenge
	result := ch.Respond(input, e.player.Stats)

	var b strings.Builder
	b.WriteString(result.Message)

	if result.Damage > 0 {
		damage := result.Damage
		if e.hard {
			damage = (damage*hardDamageNum + hardDamageDen - 1) / hardDamageDen
		}
		applied := e.player.TakeDamage(damage)
		fmt.Fprintf(&b, "\n\nYou take %d damage. Health: %d/%d", applied, e.player.Health, e.player.MaxHealth)
		e.log.Info("challenge damage",
			zap.String("challenge", ch.Name()),
			zap.Int("damage", applied),
			zap.Int("health", e.player.Health))
		if !e.player.IsAlive() {
			e.state = StateLost
			b.WriteString("\n\nYour strength fails you. The labyrinth claims another soul.")
			b.WriteString("\n\n" + e.finalStats())
			return b.String()
		}
	}

	if result.Success {
		b.WriteString("\n\n" + e.completeChamber(current, result.Reward))
		if e.won() {
			e.state = StateWon
			b.WriteString("\n\n" + e.victoryText())
		}
	}
	return b.String()
}

// completeChamber marks the chamber cleared, scores it, awards XP and
// hands over the reward.
func (e *Engine) completeChamber(c *world.Chamber, reward *player.Item) string {
	difficulty := e.difficultyOf(c.ID)
	c.Completed = true
	e.player.Progress.CompleteChamber(c.ID, difficulty*10)

	var b strings.Builder
	fmt.Fprintf(&b, "Chamber cleared! +%d points.", difficulty*10)

	levels := e.player.GainXP(difficulty * 15)
	fmt.Fprintf(&b, " +%d XP.", difficulty*15)
	if levels > 0 {
		fmt.Fprintf(&b, "\nLevel up! You are now level %d. Health restored to %d.",
			e.player.Level, e.player.MaxHealth)
	}

	if reward != nil {
		if err := e.player.Inventory.Add(*reward); err != nil {
			c.AddItem(*reward)
			fmt.Fprintf(&b, "\nYour pack is full; the %s falls to the floor.", reward.Name)
		} else {
			fmt.Fprintf(&b, "\nYou receive: %s (%s).", reward.Name, reward.Description)
		}
	}

	e.log.Info("chamber completed",
		zap.Int("chamber", c.ID),
		zap.Int("score", e.player.Progress.Score))
	return b.String()
}

// difficultyOf looks up a chamber's configured difficulty.
func (e *Engine) difficultyOf(id int) int {
	if def, ok := e.def.Chambers[strconv.Itoa(id)]; ok && def.Difficulty > 0 {
		return def.Difficulty
	}
	return 5
}

// won reports whether every challenge chamber is cleared.
func (e *Engine) won() bool {
	for _, id := range e.world.ChamberIDs() {
		c, _ := e.world.Chamber(id)
		if c.Challenge != nil && !c.Completed {
			return false
		}
	}
	return true
}

// victoryText renders the configured prize message and the run summary.
func (e *Engine) victoryText() string {
	message := "🏆 You have conquered the labyrinth!"
	if e.cfg != nil {
		message = e.cfg.VictoryMessage()
	}
	return message + "\n\n" + e.finalStats()
}

func (e *Engine) finalStats() string {
	p := e.player
	return fmt.Sprintf(
		"Final score: %d\nLevel: %d\nChambers explored: %d/%d\nChallenges cleared: %d\nPlay time: %s",
		p.Progress.Score, p.Level,
		p.Progress.VisitedCount(), e.world.Count(),
		p.Progress.CompletedCount(),
		e.PlayTime().Round(time.Second))
}

func (e *Engine) handleGo(direction string) string {
	target, err := e.world.Move(direction)
	if err != nil {
		return fmt.Sprintf("You cannot go %s from here.", direction)
	}
	e.player.Progress.VisitChamber(target.ID, target.Connections)
	e.log.Debug("moved", zap.String("direction", direction), zap.Int("chamber", target.ID))

	out := e.describeChamber()
	// A labyrinth can have no challenges left anywhere, for example when
	// every chamber is a rest chamber. Victory then falls to movement.
	if e.won() {
		e.state = StateWon
		out += "\n\n" + e.victoryText()
	}
	return out
}

// describeChamber renders the current chamber, its exits, and its
// challenge when one still blocks the way.
func (e *Engine) describeChamber() string {
	current := e.world.Current()
	var b strings.Builder
	b.WriteString(current.FullDescription())

	exits := current.Exits()
	sort.Strings(exits)
	if len(exits) > 0 {
		b.WriteString("\n\nExits: " + strings.Join(exits, ", "))
	} else {
		b.WriteString("\n\nThere are no exits. This cannot be right.")
	}

	if ch := e.activeChallenge(); ch != nil {
		b.WriteString("\n\n" + ch.Present())
	}
	return b.String()
}

// handleExamine describes one item, on the floor or in the pack.
func (e *Engine) handleExamine(name string) string {
	item, ok := e.world.Current().FindItem(name)
	if !ok {
		item, ok = e.player.Inventory.Find(name)
	}
	if !ok {
		return fmt.Sprintf("You see no %s here.", name)
	}
	category := item.Category
	if category == "" {
		category = "misc"
	}
	return fmt.Sprintf("%s: %s (%s, worth %d gold)", item.Name, item.Description, category, item.Value)
}

func (e *Engine) handleInventory() string {
	inv := e.player.Inventory
	if inv.Count() == 0 {
		return "Your pack is empty."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You carry %d/%d items (worth %d gold):\n", inv.Count(), inv.Capacity, inv.TotalValue())
	cats, groups := inv.ByCategory()
	for _, cat := range cats {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(cat[:1])+cat[1:])
		for _, item := range groups[cat] {
			fmt.Fprintf(&b, "  %s - %s\n", item.Name, item.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (e *Engine) handleTake(name string) string {
	current := e.world.Current()
	item, ok := current.RemoveItem(name)
	if !ok {
		return fmt.Sprintf("There is no %s here.", name)
	}
	if err := e.player.Inventory.Add(item); err != nil {
		current.AddItem(item)
		return "Your pack is full."
	}
	return fmt.Sprintf("You take the %s.", item.Name)
}

func (e *Engine) handleDrop(name string) string {
	item, err := e.player.Inventory.Remove(name)
	if err != nil {
		return fmt.Sprintf("You are not carrying a %s.", name)
	}
	e.world.Current().AddItem(item)
	return fmt.Sprintf("You drop the %s.", item.Name)
}

func (e *Engine) handleUse(name string) string {
	effect, err := e.player.UseItem(name)
	if err != nil {
		return err.Error()
	}
	return effect
}

func (e *Engine) handleStatus() string {
	p := e.player
	var b strings.Builder
	fmt.Fprintf(&b, "%s, level %d\n", p.Name, p.Level)
	fmt.Fprintf(&b, "Health: %d/%d\n", p.Health, p.MaxHealth)
	fmt.Fprintf(&b, "XP: %d (%d to next level)\n", p.XP, p.XPToNextLevel())
	fmt.Fprintf(&b, "Strength %d  Intelligence %d  Dexterity %d  Luck %d\n",
		p.Stats.Strength, p.Stats.Intelligence, p.Stats.Dexterity, p.Stats.Luck)
	fmt.Fprintf(&b, "Score: %d\n", p.Progress.Score)
	fmt.Fprintf(&b, "Chambers: %d visited, %d cleared of %d\n",
		p.Progress.VisitedCount(), p.Progress.CompletedCount(), e.world.Count())
	if e.hard {
		b.WriteString("Mode: hard\n")
	}
	fmt.Fprintf(&b, "Play time: %s", e.PlayTime().Round(time.Second))
	return b.String()
}

func (e *Engine) handleSave(slot string) string {
	if e.saves == nil {
		return "Saving is not available."
	}
	if err := e.saves.Save(slot, e.buildSaveState()); err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	return fmt.Sprintf("Game saved as %q.", slot)
}

func (e *Engine) handleLoad(slot string) string {
	if e.saves == nil {
		return "Loading is not available."
	}
	state, err := e.saves.Load(slot)
	if err != nil {
		return fmt.Sprintf("Load failed: %v", err)
	}
	if err := e.Restore(state); err != nil {
		return fmt.Sprintf("Load failed: %v", err)
	}
	return fmt.Sprintf("Game %q loaded.\n\n", slot) + e.describeChamber()
}

// buildSaveState captures the running game, including the labyrinth
// definition so generated worlds resume identical.
func (e *Engine) buildSaveState() *SaveState {
	p := e.player

	visited := make([]int, 0, len(p.Progress.Visited))
	for id := range p.Progress.Visited {
		visited = append(visited, id)
	}
	sort.Ints(visited)

	completed := make([]int, 0, len(p.Progress.Completed))
	for id := range p.Progress.Completed {
		completed = append(completed, id)
	}
	sort.Ints(completed)

	connections := make(map[string]map[string]int, len(p.Progress.Connections))
	for id, exits := range p.Progress.Connections {
		copied := make(map[string]int, len(exits))
		for dir, target := range exits {
			copied[dir] = target
		}
		connections[strconv.Itoa(id)] = copied
	}

	version := "1.0"
	if e.cfg != nil {
		version = e.cfg.GetString("game.version", version)
	}

	return &SaveState{
		Metadata: SaveMetadata{
			GameVersion: version,
			SessionID:   e.sessionID,
		},
		PlayerName:     p.Name,
		CurrentChamber: e.world.CurrentID(),
		Health:         p.Health,
		MaxHealth:      p.MaxHealth,
		Stats:          p.Stats,
		XP:             p.XP,
		Level:          p.Level,
		Items:          append([]player.Item(nil), p.Inventory.Items...),
		Capacity:       p.Inventory.Capacity,
		Visited:        visited,
		Completed:      completed,
		Connections:    connections,
		Score:          p.Progress.Score,
		PlayTime:       int(e.PlayTime().Seconds()),
		HardMode:       e.hard,
		World:          e.def,
	}
}

// Restore rebuilds the engine from a save: the world from the saved
// definition, then the player laid over it.
func (e *Engine) Restore(state *SaveState) error {
	def := state.World
	if def == nil {
		def = e.def
	}
	w, err := def.Build(e.factory)
	if err != nil {
		return fmt.Errorf("saved labyrinth is invalid: %w", err)
	}
	if err := w.MoveTo(state.CurrentChamber); err != nil {
		return fmt.Errorf("saved position is invalid: %w", err)
	}

	p := player.New(state.PlayerName)
	p.Health = state.Health
	p.MaxHealth = state.MaxHealth
	p.Stats = state.Stats
	p.XP = state.XP
	p.Level = state.Level
	if state.Capacity > 0 {
		p.Inventory.Capacity = state.Capacity
	}
	p.Inventory.Items = append([]player.Item(nil), state.Items...)

	for _, id := range state.Visited {
		p.Progress.Visited[id] = true
	}
	for _, id := range state.Completed {
		p.Progress.Completed[id] = true
		if c, ok := w.Chamber(id); ok {
			c.Completed = true
		}
	}
	for idStr, exits := range state.Connections {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return fmt.Errorf("saved connections reference chamber %q: %w", idStr, err)
		}
		copied := make(map[string]int, len(exits))
		for dir, target := range exits {
			copied[dir] = target
		}
		p.Progress.Connections[id] = copied
	}
	p.Progress.Score = state.Score

	e.world = w
	e.def = def
	e.player = p
	e.hard = state.HardMode
	e.priorPlay = time.Duration(state.PlayTime) * time.Second
	e.startedAt = time.Now()
	e.state = StatePlaying
	if state.Metadata.SessionID != "" {
		e.sessionID = state.Metadata.SessionID
	}
	e.log.Info("game restored",
		zap.String("player", state.PlayerName),
		zap.Int("chamber", state.CurrentChamber))
	return nil
}
