package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"labyrinth-terminal/internal/world"
)

// Command is a parsed player input: a canonical verb and its arguments.
type Command struct {
	Name string
	Args []string
	Raw  string
}

// Arg joins the arguments back into one phrase, for commands that take
// an item name ("take rusty sword").
func (c Command) Arg() string { return strings.Join(c.Args, " ") }

// commandDef describes one verb the parser accepts.
type commandDef struct {
	name    string
	aliases []string
	minArgs int
	maxArgs int // -1 means unlimited
	usage   string
	help    string
	group   string
}

var commandTable = []commandDef{
	{"go", []string{"walk", "move", "head"}, 1, 1, "go <direction>", "move through an exit", "Movement"},
	// "examine" is deliberately not an alias: skill challenges claim it.
	{"look", []string{"l"}, 0, -1, "look [item]", "describe the chamber, or one item in it", "Exploration"},
	{"map", []string{"m"}, 0, 0, "map", "draw the explored labyrinth", "Exploration"},
	{"inventory", []string{"i", "inv", "bag"}, 0, 0, "inventory", "list carried items", "Inventory"},
	{"take", []string{"get", "grab", "pickup"}, 1, -1, "take <item>", "pick up an item from the chamber", "Inventory"},
	{"drop", []string{"discard"}, 1, -1, "drop <item>", "leave an item in the chamber", "Inventory"},
	{"use", []string{"apply"}, 1, -1, "use <item>", "use an item from the bag", "Inventory"},
	{"status", []string{"stats", "st"}, 0, 0, "status", "show health, stats and score", "Exploration"},
	{"answer", []string{"solve"}, 1, -1, "answer <text>", "answer the chamber's challenge", "Challenges"},
	{"hint", []string{"clue"}, 0, 0, "hint", "ask the challenge for a hint", "Challenges"},
	{"save", nil, 0, 1, "save [name]", "save the game", "System"},
	{"load", nil, 1, 1, "load <name>", "load a saved game", "System"},
	{"help", []string{"h", "?", "commands"}, 0, 1, "help [command]", "show this list, or one command", "System"},
	{"quit", []string{"q", "exit"}, 0, 0, "quit", "leave the labyrinth", "System"},
}

// directionAliases maps shorthand to full direction names. Full names
// pass through world.IsValidDirection on their own.
var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"ne": "northeast", "nw": "northwest", "se": "southeast", "sw": "southwest",
	"u": "up", "d": "down",
}

// Parser turns raw player input into commands, with fuzzy suggestions
// for near-miss verbs.
type Parser struct {
	defs    map[string]commandDef // canonical name -> def
	aliases map[string]string     // alias -> canonical name
}

// NewParser builds a parser over the standard command table.
func NewParser() *Parser {
	p := &Parser{
		defs:    make(map[string]commandDef),
		aliases: make(map[string]string),
	}
	for _, def := range commandTable {
		p.defs[def.name] = def
		p.aliases[def.name] = def.name
		for _, alias := range def.aliases {
			p.aliases[alias] = def.name
		}
	}
	return p
}

// Parse resolves one line of input. Bare directions become go commands.
// Unknown verbs fail with a suggestion when a known verb is close.
func (p *Parser) Parse(raw string) (Command, error) {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return Command{}, fmt.Errorf("nothing entered")
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	if dir := asDirection(verb); dir != "" && len(args) == 0 {
		return Command{Name: "go", Args: []string{dir}, Raw: raw}, nil
	}

	canonical, ok := p.aliases[verb]
	if !ok {
		if suggestion := p.suggest(verb); suggestion != "" {
			return Command{}, fmt.Errorf("unknown command %q, did you mean %q?", verb, suggestion)
		}
		return Command{}, fmt.Errorf("unknown command %q, try 'help'", verb)
	}

	def := p.defs[canonical]
	if len(args) < def.minArgs {
		return Command{}, fmt.Errorf("usage: %s", def.usage)
	}
	if def.maxArgs >= 0 && len(args) > def.maxArgs {
		return Command{}, fmt.Errorf("usage: %s", def.usage)
	}

	if canonical == "go" {
		if dir := asDirection(strings.ToLower(args[0])); dir != "" {
			args = []string{dir}
		} else {
			return Command{}, fmt.Errorf("%q is not a direction", args[0])
		}
	}

	return Command{Name: canonical, Args: args, Raw: raw}, nil
}

// suggest finds the closest known verb or alias within the edit
// distance budget for its length.
func (p *Parser) suggest(verb string) string {
	best := ""
	bestDist := -1
	names := make([]string, 0, len(p.aliases))
	for name := range p.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if len(name) < 2 {
			continue
		}
		dist := levenshtein.ComputeDistance(verb, name)
		if dist > levenshteinLimit(len(name)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = name, dist
		}
	}
	if canonical, ok := p.aliases[best]; ok {
		return canonical
	}
	return best
}

// levenshteinLimit scales the tolerated edit distance with word length,
// so short verbs do not match everything.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Help renders the command list grouped the way the table declares it.
func (p *Parser) Help() string {
	groups := make(map[string][]commandDef)
	var order []string
	for _, def := range commandTable {
		if _, seen := groups[def.group]; !seen {
			order = append(order, def.group)
		}
		groups[def.group] = append(groups[def.group], def)
	}

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, group := range order {
		fmt.Fprintf(&b, "\n%s:\n", group)
		for _, def := range groups[group] {
			alias := ""
			if len(def.aliases) > 0 {
				alias = " (" + strings.Join(def.aliases, ", ") + ")"
			}
			fmt.Fprintf(&b, "  %-18s %s%s\n", def.usage, def.help, alias)
		}
	}
	b.WriteString("\nAnything else you type while a challenge is active goes to the challenge.\n")
	return b.String()
}

// HelpFor renders one command's usage line, resolving aliases.
func (p *Parser) HelpFor(name string) string {
	canonical, ok := p.aliases[strings.ToLower(name)]
	if !ok {
		return fmt.Sprintf("no such command %q, try 'help'", name)
	}
	def := p.defs[canonical]
	line := fmt.Sprintf("%s\n  %s", def.usage, def.help)
	if len(def.aliases) > 0 {
		line += "\n  aliases: " + strings.Join(def.aliases, ", ")
	}
	return line
}

// asDirection resolves a token to a full direction name, or "".
func asDirection(token string) string {
	if full, ok := directionAliases[token]; ok {
		return full
	}
	if world.IsValidDirection(token) {
		return token
	}
	return ""
}

// tokenize splits input on whitespace, keeping double-quoted phrases
// together.
func tokenize(raw string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
