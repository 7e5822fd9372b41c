// Package world models the labyrinth: chambers, the connections between
// them, the loader for labyrinth files and a generator for fresh layouts.
package world

import (
	"fmt"
	"strings"

	"labyrinth-terminal/internal/challenge"
	"labyrinth-terminal/internal/player"
)

// Directions a chamber connection may use.
var validDirections = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
	"up": true, "down": true,
}

// oppositeDirection is used for bidirectional links; the generator only
// works with the four cardinal points.
var oppositeDirection = map[string]string{
	"north": "south",
	"south": "north",
	"east":  "west",
	"west":  "east",
}

// IsValidDirection reports whether a direction name is one the game
// recognises.
func IsValidDirection(direction string) bool {
	return validDirections[strings.ToLower(strings.TrimSpace(direction))]
}

// Chamber is one room of the labyrinth.
type Chamber struct {
	ID          int
	Name        string
	Description string
	Challenge   challenge.Challenge
	Completed   bool
	Connections map[string]int
	Items       []player.Item
}

// NewChamber validates the basics and returns an empty chamber.
func NewChamber(id int, name, description string) (*Chamber, error) {
	if id < 1 {
		return nil, fmt.Errorf("chamber id must be a positive integer, got %d", id)
	}
	if name == "" {
		return nil, fmt.Errorf("chamber %d has no name", id)
	}
	if description == "" {
		return nil, fmt.Errorf("chamber %d (%s) has no description", id, name)
	}
	return &Chamber{
		ID:          id,
		Name:        name,
		Description: description,
		Connections: make(map[string]int),
	}, nil
}

// FullDescription renders the chamber text with completion status and
// any items on the floor.
func (c *Chamber) FullDescription() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString("\n\n")
	b.WriteString(c.Description)
	if c.Completed {
		b.WriteString("\n\n[This chamber has been completed.]")
	}
	if len(c.Items) > 0 {
		names := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			names = append(names, item.Name)
		}
		b.WriteString("\n\nItems here: ")
		b.WriteString(strings.Join(names, ", "))
	}
	return b.String()
}

// Connect adds an exit. The direction must be a recognised one and the
// target a positive chamber id.
func (c *Chamber) Connect(direction string, targetID int) error {
	direction = strings.ToLower(strings.TrimSpace(direction))
	if !validDirections[direction] {
		return fmt.Errorf("chamber %d: invalid direction %q", c.ID, direction)
	}
	if targetID < 1 {
		return fmt.Errorf("chamber %d: connection target must be a positive chamber id, got %d", c.ID, targetID)
	}
	c.Connections[direction] = targetID
	return nil
}

// Disconnect removes an exit, reporting whether it existed.
func (c *Chamber) Disconnect(direction string) bool {
	direction = strings.ToLower(strings.TrimSpace(direction))
	if _, ok := c.Connections[direction]; !ok {
		return false
	}
	delete(c.Connections, direction)
	return true
}

// ConnectionTo returns the chamber id behind a direction, if any.
func (c *Chamber) ConnectionTo(direction string) (int, bool) {
	id, ok := c.Connections[strings.ToLower(strings.TrimSpace(direction))]
	return id, ok
}

// Exits lists the available directions.
func (c *Chamber) Exits() []string {
	exits := make([]string, 0, len(c.Connections))
	for dir := range c.Connections {
		exits = append(exits, dir)
	}
	return exits
}

// AddItem drops an item onto the chamber floor.
func (c *Chamber) AddItem(item player.Item) {
	c.Items = append(c.Items, item)
}

// RemoveItem takes the named item off the floor.
func (c *Chamber) RemoveItem(name string) (player.Item, bool) {
	for i, item := range c.Items {
		if strings.EqualFold(item.Name, name) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return item, true
		}
	}
	return player.Item{}, false
}

// FindItem looks up an item on the floor without removing it.
func (c *Chamber) FindItem(name string) (player.Item, bool) {
	for _, item := range c.Items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return player.Item{}, false
}
