package world

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"labyrinth-terminal/internal/challenge"
	"labyrinth-terminal/internal/player"
)

// ChamberDef is one chamber in a labyrinth file.
type ChamberDef struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Connections   map[string]int `json:"connections,omitempty"`
	ChallengeType string         `json:"challenge_type,omitempty"`
	Difficulty    int            `json:"difficulty,omitempty"`
	Items         []player.Item  `json:"items,omitempty"`
}

// GenerationInfo records how a generated labyrinth was produced, so a
// file can be reproduced from its own metadata.
type GenerationInfo struct {
	Layout       string  `json:"layout"`
	ChamberCount int     `json:"chamber_count"`
	Connectivity float64 `json:"connectivity"`
	Seed         int64   `json:"seed"`
}

// Definition is the on-disk labyrinth format: chambers keyed by their id
// rendered as a string, plus the starting chamber.
type Definition struct {
	Chambers        map[string]ChamberDef `json:"chambers"`
	StartingChamber int                   `json:"starting_chamber"`
	GenerationInfo  *GenerationInfo       `json:"generation_info,omitempty"`
}

// LoadDefinition reads a labyrinth file. Unknown fields are rejected so
// typos in hand-edited files surface instead of silently disappearing.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labyrinth file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse labyrinth file %s: %w", path, err)
	}
	return &def, nil
}

// Save writes the definition as indented JSON.
func (d *Definition) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode labyrinth: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write labyrinth file: %w", err)
	}
	return nil
}

// Build assembles a validated World from the definition. Challenges are
// created through the factory; a chamber with no challenge_type is a
// rest chamber.
func (d *Definition) Build(factory *challenge.Factory) (*World, error) {
	if len(d.Chambers) == 0 {
		return nil, fmt.Errorf("labyrinth definition has no chambers")
	}

	w := New()
	defs := make(map[int]ChamberDef, len(d.Chambers))

	for idStr, def := range d.Chambers {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid chamber id %q", idStr)
		}
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("Chamber %d", id)
		}
		description := def.Description
		if description == "" {
			description = "An empty chamber."
		}
		chamber, err := NewChamber(id, name, description)
		if err != nil {
			return nil, err
		}
		chamber.Items = append(chamber.Items, def.Items...)
		w.AddChamber(chamber)
		defs[id] = def
	}

	// Connections and challenges in a second pass, once every chamber
	// exists.
	for id, def := range defs {
		chamber, _ := w.Chamber(id)
		for direction, target := range def.Connections {
			if err := chamber.Connect(direction, target); err != nil {
				return nil, err
			}
		}
		if def.ChallengeType != "" {
			difficulty := def.Difficulty
			if difficulty == 0 {
				difficulty = 5
			}
			ch, err := factory.New(def.ChallengeType, difficulty)
			if err != nil {
				return nil, fmt.Errorf("chamber %d: %w", id, err)
			}
			chamber.Challenge = ch
		}
	}

	start := d.StartingChamber
	if start == 0 {
		start = 1
	}
	if err := w.SetStart(start); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid labyrinth: %w", err)
	}
	return w, nil
}

// DefaultDefinition is the built-in three-chamber labyrinth used when no
// labyrinth file can be found.
func DefaultDefinition() *Definition {
	return &Definition{
		StartingChamber: 1,
		Chambers: map[string]ChamberDef{
			"1": {
				Name:          "Entrance Hall",
				Description:   "A dimly lit stone chamber with ancient carvings on the walls.",
				Connections:   map[string]int{"north": 2},
				ChallengeType: challenge.TypeRiddle,
				Difficulty:    3,
			},
			"2": {
				Name:          "Crystal Cavern",
				Description:   "A sparkling chamber filled with glowing crystals.",
				Connections:   map[string]int{"south": 1, "east": 3},
				ChallengeType: challenge.TypePuzzle,
				Difficulty:    4,
			},
			"3": {
				Name:          "Exit Chamber",
				Description:   "The final chamber with a heavy wooden door leading outside.",
				Connections:   map[string]int{"west": 2},
				ChallengeType: challenge.TypeSkill,
				Difficulty:    5,
			},
		},
	}
}
