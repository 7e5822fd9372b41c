package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultsWhenNoFile(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

	assert.Equal(t, "FLAG{LABYRINTH_MASTER_2024}", c.VictoryFlag())
	assert.Empty(t, c.Source())
	assert.False(t, c.ReadOnly())
	assert.Empty(t, c.Validate())
}

func TestFileValuesMergeOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	raw := `{"victory": {"flag_content": "CTF_2026"}, "display": {"width": 120}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c := Load(path, zap.NewNop())

	assert.Equal(t, "FLAG{CTF_2026}", c.VictoryFlag(), "file content wins")
	assert.Equal(t, 120, c.GetInt("display.width", 0), "file width wins")
	assert.Equal(t, "}", c.GetString("victory.flag_suffix", ""), "untouched defaults survive the merge")
	assert.True(t, c.GetBool("display.show_map", false))
	assert.Equal(t, path, c.Source())
}

func TestInvalidJSONFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := Load(path, zap.NewNop())
	assert.Equal(t, "FLAG{LABYRINTH_MASTER_2024}", c.VictoryFlag())
	assert.Empty(t, c.Source())
}

func TestEmptyFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	c := Load(path, zap.NewNop())
	assert.Equal(t, "FLAG{LABYRINTH_MASTER_2024}", c.VictoryFlag())
}

func TestDotNotationGetSet(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "none.json"), zap.NewNop())

	v, ok := c.Get("victory.flag_prefix")
	require.True(t, ok)
	assert.Equal(t, "FLAG{", v)

	_, ok = c.Get("victory.missing.deeper")
	assert.False(t, ok)

	c.Set("event.ctf.round", 2)
	assert.Equal(t, 2, c.GetInt("event.ctf.round", 0), "set must create intermediate maps")

	c.Set("victory.flag_prefix", "CTF{")
	assert.Equal(t, "CTF{", c.GetString("victory.flag_prefix", ""))
}

func TestSaveIsAtomicAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game_config.json")
	c := Load(path, zap.NewNop())

	c.Set("victory.flag_content", "ROUND_TWO")
	require.NoError(t, c.Save())

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not linger")

	reloaded := Load(path, zap.NewNop())
	assert.Equal(t, "FLAG{ROUND_TWO}", reloaded.VictoryFlag())
}

func TestUpdateFlagContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	c := Load(path, zap.NewNop())

	require.NoError(t, c.UpdateFlagContent("  SPRING_EVENT  "))
	assert.Equal(t, "FLAG{SPRING_EVENT}", c.VictoryFlag(), "content is trimmed")

	assert.ErrorIs(t, c.UpdateFlagContent("   "), ErrEmptyContent)

	reloaded := Load(path, zap.NewNop())
	assert.Equal(t, "FLAG{SPRING_EVENT}", reloaded.VictoryFlag())
}

func TestVictoryMessageRendersFlag(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "none.json"), zap.NewNop())

	c.Set("victory.prize_message", "Well done! Your flag: {flag}")
	assert.Equal(t, "Well done! Your flag: FLAG{LABYRINTH_MASTER_2024}", c.VictoryMessage())

	// A template without the placeholder would swallow the flag; the
	// fallback template keeps it visible.
	c.Set("victory.prize_message", "no placeholder here")
	assert.Contains(t, c.VictoryMessage(), "FLAG{LABYRINTH_MASTER_2024}")
}

func TestValidateReportsIssues(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "none.json"), zap.NewNop())

	c.Set("victory.flag_content", "")
	c.Set("victory.prize_message", "no placeholder")
	issues := c.Validate()
	assert.Contains(t, issues, "missing or empty 'victory.flag_content'")
	assert.Contains(t, issues, "prize message template missing {flag} placeholder")
}

func TestSearchPathPicksFirstMatch(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, os.MkdirAll("config", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("config", FileName), []byte(`{"victory":{"flag_content":"FROM_CONFIG_DIR"}}`), 0o644))

	c := Load("", zap.NewNop())
	assert.Equal(t, "FLAG{FROM_CONFIG_DIR}", c.VictoryFlag())

	// A file in the working directory outranks the config directory.
	require.NoError(t, os.WriteFile(FileName, []byte(`{"victory":{"flag_content":"FROM_CWD"}}`), 0o644))
	c.Reload()
	assert.Equal(t, "FLAG{FROM_CWD}", c.VictoryFlag())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LABYRINTH_CONFIG", "/tmp/custom.json")
	t.Setenv("LABYRINTH_FLAG_CONTENT", "ENV_FLAG")
	t.Setenv("LABYRINTH_LOG_LEVEL", "warn")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", e.ConfigPath)
	assert.Equal(t, "warn", e.LogLevel)

	c := Load(filepath.Join(t.TempDir(), "none.json"), zap.NewNop())
	e.Apply(c)
	assert.Equal(t, "FLAG{ENV_FLAG}", c.VictoryFlag())
}
