package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoExit          = errors.New("no exit in that direction")
	ErrUnknownChamber  = errors.New("chamber does not exist")
	ErrEmptyLabyrinth  = errors.New("labyrinth must contain at least one chamber")
	ErrUnreachable     = errors.New("unreachable chambers detected")
	ErrBrokenConnector = errors.New("connection targets a non-existent chamber")
)

// World holds the chamber graph and the player's position in it.
type World struct {
	chambers   map[int]*Chamber
	startingID int
	currentID  int
}

// New returns an empty world. Chambers are added before Validate is
// called; most callers go through the loader or generator instead.
func New() *World {
	return &World{
		chambers:   make(map[int]*Chamber),
		startingID: 1,
		currentID:  1,
	}
}

// AddChamber registers a chamber. Re-adding an id replaces it.
func (w *World) AddChamber(c *Chamber) {
	w.chambers[c.ID] = c
}

// Chamber returns the chamber with the given id.
func (w *World) Chamber(id int) (*Chamber, bool) {
	c, ok := w.chambers[id]
	return c, ok
}

// Current returns the chamber the player stands in.
func (w *World) Current() *Chamber {
	return w.chambers[w.currentID]
}

// CurrentID returns the id of the occupied chamber.
func (w *World) CurrentID() int { return w.currentID }

// StartingID returns the id of the entrance chamber.
func (w *World) StartingID() int { return w.startingID }

// SetStart positions both the start marker and the player.
func (w *World) SetStart(id int) error {
	if _, ok := w.chambers[id]; !ok {
		return fmt.Errorf("starting chamber %d: %w", id, ErrUnknownChamber)
	}
	w.startingID = id
	w.currentID = id
	return nil
}

// MoveTo teleports the player, used when restoring a save.
func (w *World) MoveTo(id int) error {
	if _, ok := w.chambers[id]; !ok {
		return fmt.Errorf("chamber %d: %w", id, ErrUnknownChamber)
	}
	w.currentID = id
	return nil
}

// Move walks the player through an exit of the current chamber and
// returns the chamber entered.
func (w *World) Move(direction string) (*Chamber, error) {
	direction = strings.ToLower(strings.TrimSpace(direction))
	current := w.Current()
	if current == nil {
		return nil, ErrUnknownChamber
	}
	targetID, ok := current.ConnectionTo(direction)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoExit, direction)
	}
	target, ok := w.chambers[targetID]
	if !ok {
		return nil, fmt.Errorf("exit %s: %w", direction, ErrBrokenConnector)
	}
	w.currentID = targetID
	return target, nil
}

// Connect links two chambers in one direction.
func (w *World) Connect(fromID int, direction string, toID int) error {
	from, ok := w.chambers[fromID]
	if !ok {
		return fmt.Errorf("chamber %d: %w", fromID, ErrUnknownChamber)
	}
	if _, ok := w.chambers[toID]; !ok {
		return fmt.Errorf("chamber %d: %w", toID, ErrUnknownChamber)
	}
	return from.Connect(direction, toID)
}

// Count returns how many chambers the labyrinth has.
func (w *World) Count() int { return len(w.chambers) }

// CompletedCount returns how many chambers have cleared challenges.
func (w *World) CompletedCount() int {
	n := 0
	for _, c := range w.chambers {
		if c.Completed {
			n++
		}
	}
	return n
}

// ChamberIDs returns every chamber id in ascending order.
func (w *World) ChamberIDs() []int {
	ids := make([]int, 0, len(w.chambers))
	for id := range w.chambers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks the graph is playable: non-empty, the start exists,
// every connection lands on a real chamber, and every chamber is
// reachable from the start.
func (w *World) Validate() error {
	if len(w.chambers) == 0 {
		return ErrEmptyLabyrinth
	}
	if _, ok := w.chambers[w.startingID]; !ok {
		return fmt.Errorf("starting chamber %d: %w", w.startingID, ErrUnknownChamber)
	}
	for id, c := range w.chambers {
		for dir, target := range c.Connections {
			if _, ok := w.chambers[target]; !ok {
				return fmt.Errorf("chamber %d exit %s -> %d: %w", id, dir, target, ErrBrokenConnector)
			}
		}
	}

	reachable := w.reachableFrom(w.startingID)
	if len(reachable) != len(w.chambers) {
		var missing []int
		for id := range w.chambers {
			if !reachable[id] {
				missing = append(missing, id)
			}
		}
		sort.Ints(missing)
		return fmt.Errorf("%w: %v", ErrUnreachable, missing)
	}
	return nil
}

// reachableFrom runs a BFS over the connection graph.
func (w *World) reachableFrom(start int) map[int]bool {
	visited := make(map[int]bool)
	queue := []int{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		if c, ok := w.chambers[id]; ok {
			for _, target := range c.Connections {
				if !visited[target] {
					queue = append(queue, target)
				}
			}
		}
	}
	return visited
}
