package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labyrinth-terminal/internal/challenge"
	"labyrinth-terminal/internal/config"
	"labyrinth-terminal/internal/game"
	"labyrinth-terminal/internal/logging"
	"labyrinth-terminal/internal/ui"
	"labyrinth-terminal/internal/world"
)

var (
	// Global flags
	gameConfigPath string
	verbose        bool
	debug          bool

	// Play flags
	labyrinthPath string
	contentPath   string
	loadSlot      string
	playerName    string
	seed          int64
	hardMode      bool
	noColor       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "A terminal labyrinth adventure",
	Long: `Labyrinth Terminal is a single-player text adventure: explore a
labyrinth of chambers, clear the challenge guarding each one, and win
the prize the operator configured.

Run without arguments to play. The flag, saves and generate
subcommands are the operator surface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := config.ParseEnv()
		if err != nil {
			return err
		}
		logger, err = logging.New(env.LogLevel, verbose || debug)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gameConfigPath, "game-config", "", "victory configuration file (default: search path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	rootCmd.Flags().StringVarP(&labyrinthPath, "config", "c", "", "labyrinth file to play (default: generate one)")
	rootCmd.Flags().StringVar(&contentPath, "content", "", "challenge content pack (YAML)")
	rootCmd.Flags().StringVarP(&loadSlot, "load", "l", "", "save slot to resume")
	rootCmd.Flags().StringVarP(&playerName, "name", "n", "Adventurer", "player name")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 means random)")
	rootCmd.Flags().BoolVar(&hardMode, "hard", false, "hard mode: challenge damage is increased")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colours")

	rootCmd.AddCommand(flagCmd, savesCmd, generateCmd)
}

// loadGameConfig resolves the victory configuration: explicit flag,
// then environment, then the search path.
func loadGameConfig() (*config.Config, config.Env, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return nil, config.Env{}, err
	}
	path := gameConfigPath
	if path == "" {
		path = env.ConfigPath
	}
	cfg := config.Load(path, logger)
	env.Apply(cfg)
	return cfg, env, nil
}

// loadContent builds the challenge material, with an optional pack
// merged over the built-in set.
func loadContent() (*challenge.Content, error) {
	content := challenge.DefaultContent()
	if contentPath == "" {
		return content, nil
	}
	pack, err := challenge.LoadContent(contentPath)
	if err != nil {
		return nil, err
	}
	content.Merge(pack)
	return content, nil
}

// loadDefinition picks the labyrinth: an explicit file, or a freshly
// generated layout.
func loadDefinition() (*world.Definition, error) {
	if labyrinthPath != "" {
		return world.LoadDefinition(labyrinthPath)
	}
	cfg := world.DefaultGenerationConfig()
	cfg.Seed = seed
	gen, err := world.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}

func runPlay() error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	if issues := cfg.Validate(); len(issues) > 0 {
		for _, issue := range issues {
			logger.Warn("configuration issue", zap.String("issue", issue))
		}
	}

	content, err := loadContent()
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	factory := challenge.NewFactory(content, rng)

	definition, err := loadDefinition()
	if err != nil {
		return err
	}

	saves, err := game.NewSaveManager("", logger)
	if err != nil {
		return err
	}

	engine, err := game.NewEngine(game.Options{
		Definition: definition,
		Config:     cfg,
		Saves:      saves,
		Factory:    factory,
		PlayerName: playerName,
		Hard:       hardMode,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if loadSlot != "" {
		state, err := saves.Load(loadSlot)
		if err != nil {
			return err
		}
		if err := engine.Restore(state); err != nil {
			return err
		}
	}

	// Pick up operator flag rotations while the game runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Source() != "" {
		go func() {
			if err := cfg.Watch(ctx, nil); err != nil && ctx.Err() == nil {
				logger.Warn("configuration watch ended", zap.Error(err))
			}
		}()
	}

	return ui.Run(engine, noColor, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
