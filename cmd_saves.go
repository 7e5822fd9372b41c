package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labyrinth-terminal/internal/game"
)

// savesCmd inspects the save directory
var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage saved games",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := game.NewSaveManager("", logger)
		if err != nil {
			return err
		}
		infos, err := manager.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No saved games in", manager.Dir())
			return nil
		}
		fmt.Printf("%-20s %-16s %6s %6s %10s\n", "SLOT", "PLAYER", "LEVEL", "SCORE", "SAVED")
		for _, info := range infos {
			fmt.Printf("%-20s %-16s %6d %6d %10s\n",
				info.Slot, info.PlayerName, info.Level, info.Score,
				info.Metadata.SaveTime.Format("2006-01-02"))
		}
		return nil
	},
}

var savesInfoCmd = &cobra.Command{
	Use:   "info <slot>",
	Short: "Show one save in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := game.NewSaveManager("", logger)
		if err != nil {
			return err
		}
		info, err := manager.Info(args[0])
		if err != nil {
			return err
		}
		fmt.Println("Slot:      ", info.Slot)
		fmt.Println("File:      ", info.Path)
		fmt.Println("Player:    ", info.PlayerName)
		fmt.Println("Level:     ", info.Level)
		fmt.Println("Score:     ", info.Score)
		fmt.Println("Cleared:   ", info.Completed, "chambers")
		fmt.Println("Saved:     ", info.Metadata.SaveTime.Format("2006-01-02 15:04:05"))
		fmt.Println("Session:   ", info.Metadata.SessionID)
		fmt.Println("Format:    ", info.Metadata.FormatVersion)
		return nil
	},
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := game.NewSaveManager("", logger)
		if err != nil {
			return err
		}
		if err := manager.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted save", args[0])
		return nil
	},
}

func init() {
	savesCmd.AddCommand(savesListCmd, savesInfoCmd, savesDeleteCmd)
}
