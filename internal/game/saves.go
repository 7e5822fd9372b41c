// Package game ties the world, the player and the challenges together:
// command parsing, the engine loop, the map view, and save files.
package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"labyrinth-terminal/internal/player"
	"labyrinth-terminal/internal/world"
)

// FormatVersion is stamped into every save so older builds can refuse
// files they do not understand.
const FormatVersion = "1.0"

// maxBackups is how many backup files are kept per slot.
const maxBackups = 5

var (
	ErrSaveNotFound = errors.New("save not found")
	ErrBadSlotName  = errors.New("invalid save name")
)

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SaveMetadata describes a save file without its payload.
type SaveMetadata struct {
	SaveTime      time.Time `json:"save_time"`
	GameVersion   string    `json:"game_version"`
	FormatVersion string    `json:"save_format_version"`
	SessionID     string    `json:"session_id"`
}

// SaveState is everything needed to resume a game: the player, where
// they stand, and the labyrinth itself so generated worlds come back
// identical.
type SaveState struct {
	Metadata       SaveMetadata              `json:"metadata"`
	PlayerName     string                    `json:"player_name"`
	CurrentChamber int                       `json:"current_chamber"`
	Health         int                       `json:"health"`
	MaxHealth      int                       `json:"max_health"`
	Stats          player.Stats              `json:"stats"`
	XP             int                       `json:"xp"`
	Level          int                       `json:"level"`
	Items          []player.Item             `json:"items"`
	Capacity       int                       `json:"capacity"`
	Visited        []int                     `json:"visited"`
	Completed      []int                     `json:"completed"`
	Connections    map[string]map[string]int `json:"discovered_connections"`
	Score          int                       `json:"score"`
	PlayTime       int                       `json:"play_time_seconds"`
	HardMode       bool                      `json:"hard_mode"`
	World          *world.Definition         `json:"world"`
}

// SaveInfo is a listing entry: the slot plus its metadata and a few
// headline fields.
type SaveInfo struct {
	Slot       string
	Path       string
	Metadata   SaveMetadata
	PlayerName string
	Level      int
	Score      int
	Completed  int
}

// SaveManager reads and writes save slots in one directory.
type SaveManager struct {
	dir string
	log *zap.Logger
}

// DefaultSaveDir returns the per-user save directory, creating it if
// needed.
func DefaultSaveDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	dir := filepath.Join(configDir, "labyrinth-terminal", "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create save dir: %w", err)
	}
	return dir, nil
}

// NewSaveManager stores saves under dir. An empty dir means the default
// per-user location.
func NewSaveManager(dir string, log *zap.Logger) (*SaveManager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir == "" {
		var err error
		dir, err = DefaultSaveDir()
		if err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	return &SaveManager{dir: dir, log: log}, nil
}

// Dir returns the directory saves live in.
func (m *SaveManager) Dir() string { return m.dir }

// path validates the slot name and maps it to a file. Slot names are
// restricted so a save name can never escape the save directory.
func (m *SaveManager) path(slot string) (string, error) {
	slot = strings.TrimSuffix(slot, ".json")
	if !slotPattern.MatchString(slot) {
		return "", fmt.Errorf("%q: %w", slot, ErrBadSlotName)
	}
	return filepath.Join(m.dir, slot+".json"), nil
}

// Save writes the state into the named slot. An existing file in the
// slot is backed up first.
func (m *SaveManager) Save(slot string, state *SaveState) error {
	path, err := m.path(slot)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		if err := m.backup(path); err != nil {
			m.log.Warn("failed to back up existing save", zap.String("slot", slot), zap.Error(err))
		}
	}

	state.Metadata.SaveTime = time.Now()
	state.Metadata.FormatVersion = FormatVersion
	if state.Metadata.SessionID == "" {
		state.Metadata.SessionID = uuid.NewString()
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(state); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}

	m.log.Info("game saved", zap.String("slot", slot), zap.String("file", path))
	return nil
}

// Load reads the named slot. A missing slot is ErrSaveNotFound; a
// corrupt file is a plain error so the caller can tell the two apart.
func (m *SaveManager) Load(slot string) (*SaveState, error) {
	path, err := m.path(slot)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", slot, ErrSaveNotFound)
		}
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer file.Close()

	var state SaveState
	if err := json.NewDecoder(file).Decode(&state); err != nil {
		return nil, fmt.Errorf("save file %s is corrupt: %w", path, err)
	}
	if state.Metadata.FormatVersion != "" && state.Metadata.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("save file %s uses format %s, this build reads %s",
			path, state.Metadata.FormatVersion, FormatVersion)
	}
	return &state, nil
}

// List returns the save slots on disk, newest first. Backup files are
// not slots and are skipped.
func (m *SaveManager) List() ([]SaveInfo, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save dir: %w", err)
	}

	var infos []SaveInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.Contains(name, "_backup_") {
			continue
		}
		slot := strings.TrimSuffix(name, ".json")
		info, err := m.Info(slot)
		if err != nil {
			m.log.Warn("skipping unreadable save", zap.String("file", name), zap.Error(err))
			continue
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Metadata.SaveTime.After(infos[j].Metadata.SaveTime)
	})
	return infos, nil
}

// Info reads a slot's headline fields without resuming it.
func (m *SaveManager) Info(slot string) (SaveInfo, error) {
	state, err := m.Load(slot)
	if err != nil {
		return SaveInfo{}, err
	}
	path, _ := m.path(slot)
	return SaveInfo{
		Slot:       strings.TrimSuffix(slot, ".json"),
		Path:       path,
		Metadata:   state.Metadata,
		PlayerName: state.PlayerName,
		Level:      state.Level,
		Score:      state.Score,
		Completed:  len(state.Completed),
	}, nil
}

// Delete removes a slot. Its backups stay.
func (m *SaveManager) Delete(slot string) error {
	path, err := m.path(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%q: %w", slot, ErrSaveNotFound)
		}
		return fmt.Errorf("failed to delete save: %w", err)
	}
	m.log.Info("save deleted", zap.String("slot", slot))
	return nil
}

// backup copies the current file in a slot aside before it is
// overwritten, then prunes old backups beyond maxBackups.
func (m *SaveManager) backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	stem := strings.TrimSuffix(filepath.Base(path), ".json")
	stamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(m.dir, fmt.Sprintf("%s_backup_%s.json", stem, stamp))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return err
	}
	return m.pruneBackups(stem)
}

// pruneBackups keeps the newest maxBackups backups for a slot.
func (m *SaveManager) pruneBackups(stem string) error {
	pattern := filepath.Join(m.dir, stem+"_backup_*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) <= maxBackups {
		return nil
	}

	type stamped struct {
		path string
		mod  time.Time
	}
	files := make([]stamped, 0, len(matches))
	for _, match := range matches {
		fi, err := os.Stat(match)
		if err != nil {
			continue
		}
		files = append(files, stamped{match, fi.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod.After(files[j].mod) })

	for _, old := range files[maxBackups:] {
		if err := os.Remove(old.path); err != nil {
			m.log.Warn("failed to prune backup", zap.String("file", old.path), zap.Error(err))
		}
	}
	return nil
}
