package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalAndAliases(t *testing.T) {
	p := NewParser()

	cmd, err := p.Parse("go north")
	require.NoError(t, err)
	assert.Equal(t, "go", cmd.Name)
	assert.Equal(t, []string{"north"}, cmd.Args)

	cmd, err = p.Parse("walk N")
	require.NoError(t, err)
	assert.Equal(t, "go", cmd.Name)
	assert.Equal(t, []string{"north"}, cmd.Args, "direction shorthand expands")

	cmd, err = p.Parse("i")
	require.NoError(t, err)
	assert.Equal(t, "inventory", cmd.Name)

	cmd, err = p.Parse("solve an echo")
	require.NoError(t, err)
	assert.Equal(t, "answer", cmd.Name)
	assert.Equal(t, "an echo", cmd.Arg())
}

func TestParseBareDirections(t *testing.T) {
	p := NewParser()
	for input, want := range map[string]string{
		"north": "north", "sw": "southwest", "u": "up", "DOWN": "down",
	} {
		cmd, err := p.Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, "go", cmd.Name)
		assert.Equal(t, []string{want}, cmd.Args)
	}
}

func TestParseRejectsBadDirection(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("go sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a direction")
}

func TestParseArgCounts(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("take")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: take <item>")

	_, err = p.Parse("go north fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: go <direction>")

	cmd, err := p.Parse("take rusty iron sword")
	require.NoError(t, err)
	assert.Equal(t, "rusty iron sword", cmd.Arg())
}

func TestParseQuotedArgs(t *testing.T) {
	p := NewParser()
	cmd, err := p.Parse(`take "Ancient Key"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ancient Key"}, cmd.Args)
}

func TestParseSuggestsNearMisses(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("inventry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"inventory"`)

	_, err = p.Parse("stauts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"status"`)

	_, err = p.Parse("xyzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "try 'help'")
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("   ")
	assert.Error(t, err)
}

func TestHelpListsEveryCommand(t *testing.T) {
	p := NewParser()
	help := p.Help()
	for _, def := range commandTable {
		assert.Contains(t, help, def.usage)
	}
}
