package world

import (
	"fmt"
	"math"
	"math/rand"

	"labyrinth-terminal/internal/challenge"
)

// Layout names the generator understands.
const (
	LayoutLinear   = "linear"
	LayoutCircular = "circular"
	LayoutTree     = "tree"
	LayoutGrid     = "grid"
	LayoutRandom   = "random"
	LayoutHybrid   = "hybrid"
)

// Layouts lists every supported layout, for CLI help and validation.
func Layouts() []string {
	return []string{LayoutLinear, LayoutCircular, LayoutTree, LayoutGrid, LayoutRandom, LayoutHybrid}
}

// GenerationConfig controls labyrinth generation.
type GenerationConfig struct {
	ChamberCount  int
	Layout        string
	Connectivity  float64
	MinPathLength int
	Seed          int64
}

// DefaultGenerationConfig matches the stock thirteen-chamber labyrinth.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		ChamberCount:  13,
		Layout:        LayoutHybrid,
		Connectivity:  0.3,
		MinPathLength: 5,
	}
}

func (c GenerationConfig) validate() error {
	if c.ChamberCount < 3 {
		return fmt.Errorf("chamber count must be at least 3, got %d", c.ChamberCount)
	}
	if c.Connectivity < 0 || c.Connectivity > 1 {
		return fmt.Errorf("connectivity must be between 0.0 and 1.0, got %g", c.Connectivity)
	}
	valid := false
	for _, l := range Layouts() {
		if c.Layout == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown layout %q (available: %v)", c.Layout, Layouts())
	}
	return nil
}

// Generator produces solvable labyrinth definitions. A fixed seed yields
// the same labyrinth every time.
type Generator struct {
	cfg GenerationConfig
	rng *rand.Rand
}

// NewGenerator validates the config and seeds the generator.
func NewGenerator(cfg GenerationConfig) (*Generator, error) {
	if cfg.Layout == "" {
		cfg.Layout = LayoutHybrid
	}
	if cfg.MinPathLength == 0 {
		cfg.MinPathLength = 5
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
		cfg.Seed = seed
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// generator connection graph: chamber id -> direction -> target.
type graph map[int]map[string]int

var cardinalDirections = []string{"north", "south", "east", "west"}

// Generate builds a complete labyrinth definition and proves it by
// running it through the same validation the loader applies.
func (g *Generator) Generate() (*Definition, error) {
	conns := g.layout(g.cfg.Layout)
	g.ensureSolvable(conns)
	g.addConnectivity(conns)

	def := g.describe(conns)
	def.GenerationInfo = &GenerationInfo{
		Layout:       g.cfg.Layout,
		ChamberCount: g.cfg.ChamberCount,
		Connectivity: g.cfg.Connectivity,
		Seed:         g.cfg.Seed,
	}

	if _, err := def.Build(challenge.NewFactory(nil, g.rng)); err != nil {
		return nil, fmt.Errorf("generated labyrinth failed validation: %w", err)
	}
	return def, nil
}

func (g *Generator) layout(layout string) graph {
	switch layout {
	case LayoutLinear:
		return g.linearLayout()
	case LayoutCircular:
		return g.circularLayout()
	case LayoutTree, LayoutRandom:
		return g.spanningLayout()
	case LayoutGrid:
		return g.gridLayout()
	}
	// Hybrid: a random base layout, extra links come from connectivity.
	bases := []string{LayoutLinear, LayoutTree, LayoutGrid}
	return g.layout(bases[g.rng.Intn(len(bases))])
}

func (g *Generator) emptyGraph() graph {
	conns := make(graph, g.cfg.ChamberCount)
	for i := 1; i <= g.cfg.ChamberCount; i++ {
		conns[i] = make(map[string]int)
	}
	return conns
}

func (g *Generator) linearLayout() graph {
	conns := g.emptyGraph()
	for i := 1; i <= g.cfg.ChamberCount; i++ {
		if i > 1 {
			conns[i]["west"] = i - 1
		}
		if i < g.cfg.ChamberCount {
			conns[i]["east"] = i + 1
		}
	}
	return conns
}

func (g *Generator) circularLayout() graph {
	conns := g.emptyGraph()
	n := g.cfg.ChamberCount
	for i := 1; i <= n; i++ {
		prev := i - 1
		if prev < 1 {
			prev = n
		}
		next := i + 1
		if next > n {
			next = 1
		}
		conns[i]["west"] = prev
		conns[i]["east"] = next
	}
	return conns
}

// spanningLayout grows a random spanning tree, respecting the four-exit
// limit of each chamber.
func (g *Generator) spanningLayout() graph {
	conns := g.emptyGraph()
	connected := []int{1}
	unconnected := make([]int, 0, g.cfg.ChamberCount-1)
	for i := 2; i <= g.cfg.ChamberCount; i++ {
		unconnected = append(unconnected, i)
	}

	for len(unconnected) > 0 {
		childIdx := g.rng.Intn(len(unconnected))
		child := unconnected[childIdx]

		if !g.linkInto(conns, connected, child) {
			// Every open direction clashed; a retry with fresh random
			// picks resolves it because link choices are random.
			continue
		}
		connected = append(connected, child)
		unconnected = append(unconnected[:childIdx], unconnected[childIdx+1:]...)
	}
	return conns
}

// linkInto connects child to some chamber in connected with a free
// bidirectional direction pair. Reports whether a link was made.
func (g *Generator) linkInto(conns graph, connected []int, child int) bool {
	for _, idx := range g.rng.Perm(len(connected)) {
		parent := connected[idx]
		for _, dirIdx := range g.rng.Perm(len(cardinalDirections)) {
			dir := cardinalDirections[dirIdx]
			opp := oppositeDirection[dir]
			if _, used := conns[parent][dir]; used {
				continue
			}
			if _, used := conns[child][opp]; used {
				continue
			}
			conns[parent][dir] = child
			conns[child][opp] = parent
			return true
		}
	}
	return false
}

func (g *Generator) gridLayout() graph {
	conns := g.emptyGraph()
	size := int(math.Ceil(math.Sqrt(float64(g.cfg.ChamberCount))))

	at := func(row, col int) int {
		if row < 0 || col < 0 || row >= size || col >= size {
			return 0
		}
		id := row*size + col + 1
		if id > g.cfg.ChamberCount {
			return 0
		}
		return id
	}

	for id := 1; id <= g.cfg.ChamberCount; id++ {
		row := (id - 1) / size
		col := (id - 1) % size
		if n := at(row-1, col); n != 0 {
			conns[id]["north"] = n
		}
		if n := at(row+1, col); n != 0 {
			conns[id]["south"] = n
		}
		if n := at(row, col+1); n != 0 {
			conns[id]["east"] = n
		}
		if n := at(row, col-1); n != 0 {
			conns[id]["west"] = n
		}
	}
	return conns
}

// ensureSolvable stretches short labyrinths to the minimum path length
// and reattaches anything the layout left floating.
func (g *Generator) ensureSolvable(conns graph) {
	path := longestPath(conns, 1)
	for len(path) < g.cfg.MinPathLength {
		free := make([]int, 0)
		inPath := make(map[int]bool, len(path))
		for _, id := range path {
			inPath[id] = true
		}
		for id := 1; id <= g.cfg.ChamberCount; id++ {
			if !inPath[id] {
				free = append(free, id)
			}
		}
		if len(free) == 0 {
			break
		}
		last := path[len(path)-1]
		next := free[g.rng.Intn(len(free))]
		if !g.linkPair(conns, last, next) {
			break
		}
		path = append(path, next)
	}

	reachable := reachable(conns, 1)
	attached := make([]int, 0, len(reachable))
	for id := range reachable {
		attached = append(attached, id)
	}
	for id := 1; id <= g.cfg.ChamberCount; id++ {
		if reachable[id] {
			continue
		}
		for _, idx := range g.rng.Perm(len(attached)) {
			if g.linkPair(conns, attached[idx], id) {
				break
			}
		}
		reachable[id] = true
		attached = append(attached, id)
	}
}

// linkPair makes a bidirectional link between a and b on any free
// direction pair.
func (g *Generator) linkPair(conns graph, a, b int) bool {
	for _, idx := range g.rng.Perm(len(cardinalDirections)) {
		dir := cardinalDirections[idx]
		opp := oppositeDirection[dir]
		if _, used := conns[a][dir]; used {
			continue
		}
		if _, used := conns[b][opp]; used {
			continue
		}
		conns[a][dir] = b
		conns[b][opp] = a
		return true
	}
	return false
}

// addConnectivity sprinkles extra bidirectional links proportional to
// the connectivity knob.
func (g *Generator) addConnectivity(conns graph) {
	if g.cfg.Connectivity <= 0 {
		return
	}
	maxLinks := g.cfg.ChamberCount * len(cardinalDirections)
	current := 0
	for _, c := range conns {
		current += len(c)
	}
	extra := int(float64(maxLinks-current) * g.cfg.Connectivity)

	for i := 0; i < extra; i++ {
		a := g.rng.Intn(g.cfg.ChamberCount) + 1
		b := g.rng.Intn(g.cfg.ChamberCount) + 1
		if a == b || linked(conns, a, b) {
			continue
		}
		g.linkPair(conns, a, b)
	}
}

func linked(conns graph, a, b int) bool {
	for _, target := range conns[a] {
		if target == b {
			return true
		}
	}
	return false
}

func longestPath(conns graph, start int) []int {
	var dfs func(current int, visited map[int]bool) []int
	dfs = func(current int, visited map[int]bool) []int {
		visited[current] = true
		longest := []int{current}
		for _, neighbor := range conns[current] {
			if visited[neighbor] {
				continue
			}
			branch := make(map[int]bool, len(visited))
			for id := range visited {
				branch[id] = true
			}
			candidate := append([]int{current}, dfs(neighbor, branch)...)
			if len(candidate) > len(longest) {
				longest = candidate
			}
		}
		return longest
	}
	return dfs(start, make(map[int]bool))
}

func reachable(conns graph, start int) map[int]bool {
	visited := make(map[int]bool)
	queue := []int{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, target := range conns[id] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}

var chamberNames = []string{
	"Entrance Hall", "Crystal Cavern", "Shadow Corridor", "Ancient Library",
	"Guardian's Chamber", "Mystic Sanctum", "Hall of Echoes", "Prism Chamber",
	"Trial Arena", "Meditation Room", "Treasure Vault", "Throne Room",
	"Exit Portal",
}

var (
	descriptionAdjectives = []string{
		"dimly lit", "sparkling", "mysterious", "ancient", "grand",
		"serene", "imposing", "ethereal", "shadowy", "luminous",
	}
	descriptionFeatures = []string{
		"towering stone pillars", "glowing crystals", "ancient murals",
		"mystical symbols", "ornate carvings", "magical artifacts",
		"flowing water", "floating orbs", "intricate mosaics", "golden statues",
	}
	descriptionAtmospheres = []string{
		"The air hums with magical energy.",
		"Shadows dance in the flickering light.",
		"An aura of ancient power fills the space.",
		"The atmosphere is thick with mystery.",
		"Whispers of the past echo through the chamber.",
	}
)

// describe fills in names, descriptions and challenge assignments for a
// finished connection graph.
func (g *Generator) describe(conns graph) *Definition {
	types := []string{
		challenge.TypeRiddle, challenge.TypePuzzle, challenge.TypeCombat,
		challenge.TypeSkill, challenge.TypeMemory,
	}

	chambers := make(map[string]ChamberDef, len(conns))
	for id := 1; id <= g.cfg.ChamberCount; id++ {
		name := chamberNames[(id-1)%len(chamberNames)]
		if id > len(chamberNames) {
			name = fmt.Sprintf("%s %d", name, id)
		}
		description := fmt.Sprintf("A %s chamber with %s. %s",
			descriptionAdjectives[g.rng.Intn(len(descriptionAdjectives))],
			descriptionFeatures[g.rng.Intn(len(descriptionFeatures))],
			descriptionAtmospheres[g.rng.Intn(len(descriptionAtmospheres))])

		// Difficulty ramps with distance into the labyrinth.
		difficulty := 1 + (id*9)/g.cfg.ChamberCount
		if difficulty > 10 {
			difficulty = 10
		}

		chambers[fmt.Sprintf("%d", id)] = ChamberDef{
			Name:          name,
			Description:   description,
			Connections:   conns[id],
			ChallengeType: types[g.rng.Intn(len(types))],
			Difficulty:    difficulty,
		}
	}
	return &Definition{Chambers: chambers, StartingChamber: 1}
}
