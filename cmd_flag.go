package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"labyrinth-terminal/internal/config"
)

var (
	flagPrefix  string
	flagSuffix  string
	sampleOut   string
	sampleForce bool
)

// flagCmd manages the victory flag operators hand out at events
var flagCmd = &cobra.Command{
	Use:   "flag",
	Short: "Manage the victory flag and prize message",
	Long: `Inspect and edit the victory configuration without opening the
JSON file by hand. Changes are written back to the file the
configuration was loaded from.`,
}

var flagShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current flag and prize message",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadGameConfig()
		if err != nil {
			return err
		}

		source := cfg.Source()
		if source == "" {
			source = "built-in defaults (no file found)"
		}
		fmt.Println("Flag:   ", cfg.VictoryFlag())
		fmt.Println("Source: ", source)
		if cfg.ReadOnly() {
			fmt.Println("Note:    configuration is read-only; set commands will fail")
		}
		fmt.Println("\nPrize message preview:")
		fmt.Println(cfg.VictoryMessage())
		return nil
	},
}

var flagSetCmd = &cobra.Command{
	Use:   "set <content>",
	Short: "Set the flag content between prefix and suffix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadGameConfig()
		if err != nil {
			return err
		}
		if err := cfg.UpdateFlagContent(args[0]); err != nil {
			return err
		}
		fmt.Println("Flag updated:", cfg.VictoryFlag())
		return nil
	},
}

var flagFormatCmd = &cobra.Command{
	Use:     "format",
	Short:   "Set the flag prefix and suffix",
	Example: `  labyrinth flag format --prefix "CTF{" --suffix "}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("prefix") && !cmd.Flags().Changed("suffix") {
			return fmt.Errorf("nothing to change: pass --prefix and/or --suffix")
		}
		cfg, _, err := loadGameConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("prefix") {
			cfg.Set("victory.flag_prefix", flagPrefix)
		}
		if cmd.Flags().Changed("suffix") {
			cfg.Set("victory.flag_suffix", flagSuffix)
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("Flag format updated:", cfg.VictoryFlag())
		return nil
	},
}

var flagMessageCmd = &cobra.Command{
	Use:   "message <template>",
	Short: "Set the prize message template",
	Long: `Sets the message shown on victory. The template should contain the
{flag} placeholder; without it the game falls back to the stock
message so the flag stays visible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadGameConfig()
		if err != nil {
			return err
		}
		template := args[0]
		if !strings.Contains(template, "{flag}") {
			fmt.Fprintln(os.Stderr, "warning: template has no {flag} placeholder; the fallback message will be used instead")
		}
		cfg.Set("victory.prize_message", template)
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("Prize message updated. Preview:")
		fmt.Println(cfg.VictoryMessage())
		return nil
	},
}

var flagSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(sampleOut); err == nil && !sampleForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", sampleOut)
		}
		data, err := json.MarshalIndent(config.Defaults(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode sample configuration: %w", err)
		}
		if err := os.WriteFile(sampleOut, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write sample configuration: %w", err)
		}
		fmt.Println("Sample configuration written to", sampleOut)
		return nil
	},
}

var flagCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadGameConfig()
		if err != nil {
			return err
		}

		source := cfg.Source()
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Println("Checking:", source)

		issues := cfg.Validate()
		if len(issues) == 0 {
			fmt.Println("OK: configuration is valid")
			fmt.Println("Flag:", cfg.VictoryFlag())
			return nil
		}
		for _, issue := range issues {
			fmt.Println("  problem:", issue)
		}
		return fmt.Errorf("%d issue(s) found", len(issues))
	},
}

func init() {
	flagFormatCmd.Flags().StringVar(&flagPrefix, "prefix", "FLAG{", "flag prefix")
	flagFormatCmd.Flags().StringVar(&flagSuffix, "suffix", "}", "flag suffix")
	flagSampleCmd.Flags().StringVarP(&sampleOut, "output", "o", config.FileName, "output file")
	flagSampleCmd.Flags().BoolVar(&sampleForce, "force", false, "overwrite an existing file")

	flagCmd.AddCommand(flagShowCmd, flagSetCmd, flagFormatCmd, flagMessageCmd, flagSampleCmd, flagCheckCmd)
}
