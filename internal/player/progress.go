package player

// Progress tracks what the player has seen and cleared. The map view only
// draws from here, so unexplored chambers stay hidden.
type Progress struct {
	Visited     map[int]bool           `json:"visited"`
	Completed   map[int]bool           `json:"completed"`
	Connections map[int]map[string]int `json:"connections"`
	Score       int                    `json:"score"`
}

// NewProgress returns an empty tracker.
func NewProgress() *Progress {
	return &Progress{
		Visited:     make(map[int]bool),
		Completed:   make(map[int]bool),
		Connections: make(map[int]map[string]int),
	}
}

// VisitChamber records a visit and the exits seen from it.
func (p *Progress) VisitChamber(id int, exits map[string]int) {
	p.Visited[id] = true
	if len(exits) == 0 {
		return
	}
	known := p.Connections[id]
	if known == nil {
		known = make(map[string]int)
		p.Connections[id] = known
	}
	for dir, target := range exits {
		known[dir] = target
	}
}

// CompleteChamber marks a chamber's challenge as cleared and scores it.
// Repeat completions do not score twice.
func (p *Progress) CompleteChamber(id, points int) {
	if p.Completed[id] {
		return
	}
	p.Completed[id] = true
	p.Score += points
}

// HasVisited reports whether the player has stood in the chamber.
func (p *Progress) HasVisited(id int) bool { return p.Visited[id] }

// HasCompleted reports whether the chamber's challenge is cleared.
func (p *Progress) HasCompleted(id int) bool { return p.Completed[id] }

// VisitedCount returns how many chambers have been entered.
func (p *Progress) VisitedCount() int { return len(p.Visited) }

// CompletedCount returns how many challenges have been cleared.
func (p *Progress) CompletedCount() int { return len(p.Completed) }

// KnownExits returns the exits the player has seen from a chamber.
func (p *Progress) KnownExits(id int) map[string]int { return p.Connections[id] }
