package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"labyrinth-terminal/internal/world"
)

func testSaveState(name string) *SaveState {
	return &SaveState{
		PlayerName:     name,
		CurrentChamber: 1,
		Health:         80,
		MaxHealth:      100,
		Level:          2,
		Score:          120,
		Completed:      []int{1, 3},
		World:          world.DefaultDefinition(),
	}
}

func newTestSaveManager(t *testing.T) *SaveManager {
	t.Helper()
	m, err := NewSaveManager(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return m
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m := newTestSaveManager(t)

	require.NoError(t, m.Save("hero", testSaveState("Hero")))

	state, err := m.Load("hero")
	require.NoError(t, err)
	assert.Equal(t, "Hero", state.PlayerName)
	assert.Equal(t, 80, state.Health)
	assert.Equal(t, FormatVersion, state.Metadata.FormatVersion)
	assert.NotEmpty(t, state.Metadata.SessionID)
	assert.False(t, state.Metadata.SaveTime.IsZero())
	require.NotNil(t, state.World)
	assert.Len(t, state.World.Chambers, 3)
}

func TestLoadMissingSlot(t *testing.T) {
	m := newTestSaveManager(t)
	_, err := m.Load("nope")
	assert.ErrorIs(t, err, ErrSaveNotFound)
}

func TestLoadCorruptSave(t *testing.T) {
	m := newTestSaveManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "broken.json"), []byte("{oops"), 0o644))

	_, err := m.Load("broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSaveNotFound, "corruption is not the same as absence")
	assert.Contains(t, err.Error(), "corrupt")
}

func TestSlotNamesAreRestricted(t *testing.T) {
	m := newTestSaveManager(t)
	for _, slot := range []string{"../escape", "a/b", "", "sp ace"} {
		err := m.Save(slot, testSaveState("X"))
		assert.ErrorIs(t, err, ErrBadSlotName, slot)
	}
	assert.NoError(t, m.Save("ok_slot-1", testSaveState("X")))
}

func TestListSkipsBackupsAndGarbage(t *testing.T) {
	m := newTestSaveManager(t)
	require.NoError(t, m.Save("alpha", testSaveState("Alpha")))
	require.NoError(t, m.Save("beta", testSaveState("Beta")))
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "alpha_backup_20240101_000000.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "notes.txt"), []byte("hi"), 0o644))

	infos, err := m.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	slots := []string{infos[0].Slot, infos[1].Slot}
	assert.Contains(t, slots, "alpha")
	assert.Contains(t, slots, "beta")
}

func TestInfoReadsHeadlineFields(t *testing.T) {
	m := newTestSaveManager(t)
	require.NoError(t, m.Save("hero", testSaveState("Hero")))

	info, err := m.Info("hero")
	require.NoError(t, err)
	assert.Equal(t, "hero", info.Slot)
	assert.Equal(t, "Hero", info.PlayerName)
	assert.Equal(t, 2, info.Level)
	assert.Equal(t, 120, info.Score)
	assert.Equal(t, 2, info.Completed)
}

func TestDeleteSlot(t *testing.T) {
	m := newTestSaveManager(t)
	require.NoError(t, m.Save("gone", testSaveState("X")))
	require.NoError(t, m.Delete("gone"))

	_, err := m.Load("gone")
	assert.ErrorIs(t, err, ErrSaveNotFound)
	assert.ErrorIs(t, m.Delete("gone"), ErrSaveNotFound)
}

func TestOverwriteCreatesBackup(t *testing.T) {
	m := newTestSaveManager(t)
	require.NoError(t, m.Save("hero", testSaveState("First")))
	require.NoError(t, m.Save("hero", testSaveState("Second")))

	backups, err := filepath.Glob(filepath.Join(m.Dir(), "hero_backup_*.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, backups)

	state, err := m.Load("hero")
	require.NoError(t, err)
	assert.Equal(t, "Second", state.PlayerName)
}

func TestSessionIDSurvivesResave(t *testing.T) {
	m := newTestSaveManager(t)
	require.NoError(t, m.Save("hero", testSaveState("Hero")))

	state, err := m.Load("hero")
	require.NoError(t, err)
	first := state.Metadata.SessionID

	require.NoError(t, m.Save("hero", state))
	state, err = m.Load("hero")
	require.NoError(t, err)
	assert.Equal(t, first, state.Metadata.SessionID)
}
