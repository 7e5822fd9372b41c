package world

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth-terminal/internal/challenge"
	"labyrinth-terminal/internal/player"
)

func testFactory() *challenge.Factory {
	return challenge.NewFactory(nil, rand.New(rand.NewSource(7)))
}

func buildTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := DefaultDefinition().Build(testFactory())
	require.NoError(t, err)
	return w
}

func TestChamberValidation(t *testing.T) {
	_, err := NewChamber(0, "Hall", "A hall.")
	assert.Error(t, err)
	_, err = NewChamber(1, "", "A hall.")
	assert.Error(t, err)
	_, err = NewChamber(1, "Hall", "")
	assert.Error(t, err)

	c, err := NewChamber(1, "Hall", "A hall.")
	require.NoError(t, err)
	assert.Error(t, c.Connect("sideways", 2))
	assert.Error(t, c.Connect("north", 0))
	require.NoError(t, c.Connect(" NORTH ", 2))
	id, ok := c.ConnectionTo("north")
	assert.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestChamberDescriptionIncludesItemsAndStatus(t *testing.T) {
	c, err := NewChamber(4, "Treasure Vault", "Gold glitters in every corner.")
	require.NoError(t, err)
	c.AddItem(player.Item{Name: "Golden Idol"})

	desc := c.FullDescription()
	assert.Contains(t, desc, "Treasure Vault")
	assert.Contains(t, desc, "Items here: Golden Idol")
	assert.NotContains(t, desc, "completed")

	c.Completed = true
	assert.Contains(t, c.FullDescription(), "[This chamber has been completed.]")
}

func TestMoveThroughDefaultLabyrinth(t *testing.T) {
	w := buildTestWorld(t)
	assert.Equal(t, 1, w.CurrentID())

	chamber, err := w.Move("north")
	require.NoError(t, err)
	assert.Equal(t, 2, chamber.ID)

	chamber, err = w.Move("east")
	require.NoError(t, err)
	assert.Equal(t, 3, chamber.ID)

	_, err = w.Move("north")
	assert.ErrorIs(t, err, ErrNoExit)
	assert.Equal(t, 3, w.CurrentID(), "failed moves must not move the player")
}

func TestValidateCatchesUnreachableChambers(t *testing.T) {
	w := New()
	for id, name := range map[int]string{1: "A", 2: "B", 3: "Island"} {
		c, err := NewChamber(id, name, "desc")
		require.NoError(t, err)
		w.AddChamber(c)
	}
	require.NoError(t, w.Connect(1, "north", 2))
	require.NoError(t, w.Connect(2, "south", 1))

	err := w.Validate()
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Contains(t, err.Error(), "3")
}

func TestValidateCatchesBrokenConnections(t *testing.T) {
	w := New()
	c, err := NewChamber(1, "A", "desc")
	require.NoError(t, err)
	require.NoError(t, c.Connect("east", 99))
	w.AddChamber(c)

	assert.ErrorIs(t, w.Validate(), ErrBrokenConnector)
}

func TestDefinitionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labyrinth.json")
	require.NoError(t, DefaultDefinition().Save(path))

	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Len(t, def.Chambers, 3)

	w, err := def.Build(testFactory())
	require.NoError(t, err)
	assert.Equal(t, 3, w.Count())

	entrance, ok := w.Chamber(1)
	require.True(t, ok)
	assert.NotNil(t, entrance.Challenge)
}

func TestLoadDefinitionRejectsUnknownFields(t *testing.T) {
	raw := `{"chambers": {"1": {"name": "A", "description": "d", "colour": "red"}}, "starting_chamber": 1}`
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := LoadDefinition(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestBuildRejectsBadDefinitions(t *testing.T) {
	cases := map[string]*Definition{
		"no chambers": {StartingChamber: 1},
		"bad id": {Chambers: map[string]ChamberDef{
			"one": {Name: "A", Description: "d"},
		}},
		"bad direction": {Chambers: map[string]ChamberDef{
			"1": {Name: "A", Description: "d", Connections: map[string]int{"sideways": 1}},
		}},
		"missing start": {StartingChamber: 9, Chambers: map[string]ChamberDef{
			"1": {Name: "A", Description: "d"},
		}},
		"unknown challenge": {StartingChamber: 1, Chambers: map[string]ChamberDef{
			"1": {Name: "A", Description: "d", ChallengeType: "karaoke"},
		}},
	}
	for name, def := range cases {
		_, err := def.Build(testFactory())
		assert.Error(t, err, name)
	}
}

func TestGeneratorProducesSolvableLayouts(t *testing.T) {
	for _, layout := range Layouts() {
		cfg := DefaultGenerationConfig()
		cfg.Layout = layout
		cfg.Seed = 99

		gen, err := NewGenerator(cfg)
		require.NoError(t, err, layout)

		def, err := gen.Generate()
		require.NoError(t, err, layout)
		assert.Len(t, def.Chambers, cfg.ChamberCount, layout)
		require.NotNil(t, def.GenerationInfo, layout)
		assert.Equal(t, layout, def.GenerationInfo.Layout)

		w, err := def.Build(testFactory())
		require.NoError(t, err, layout)
		require.NoError(t, w.Validate(), layout)
	}
}

func TestGeneratorIsDeterministicWithSeed(t *testing.T) {
	build := func() *Definition {
		cfg := DefaultGenerationConfig()
		cfg.Layout = LayoutTree
		cfg.Seed = 1234
		gen, err := NewGenerator(cfg)
		require.NoError(t, err)
		def, err := gen.Generate()
		require.NoError(t, err)
		return def
	}

	first, second := build(), build()
	assert.Equal(t, first.Chambers, second.Chambers)
}

func TestGeneratorRejectsBadConfig(t *testing.T) {
	_, err := NewGenerator(GenerationConfig{ChamberCount: 2, Layout: LayoutLinear})
	assert.Error(t, err)

	_, err = NewGenerator(GenerationConfig{ChamberCount: 5, Layout: "spiral"})
	assert.Error(t, err)

	_, err = NewGenerator(GenerationConfig{ChamberCount: 5, Layout: LayoutGrid, Connectivity: 1.5})
	assert.Error(t, err)
}
