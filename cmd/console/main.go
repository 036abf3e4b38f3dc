// cmd/console/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tahcohcat/cluequest/config"
	"github.com/tahcohcat/cluequest/internal/catalog"
	"github.com/tahcohcat/cluequest/internal/console"
	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/logger"
)

var (
	configPath string
	caseFile   string
	caseID     string
)

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func engineFor(cfg *config.Config) (*game.Engine, error) {
	cases, err := catalog.Load(cfg.Game.CasesDir)
	if err != nil {
		return nil, err
	}
	cases = catalog.WithBuiltin(cases)

	if caseFile != "" {
		c, err := game.LoadCaseFile(caseFile)
		if err != nil {
			return nil, err
		}
		// an explicit file takes precedence over everything else
		cases = append([]*game.Case{c}, cases...)
		caseID = c.ID
	}
	return game.NewEngine(cfg, cases...), nil
}

var rootCmd = &cobra.Command{
	Use:   "cluequest",
	Short: "Walk the mansion, collect clues and accuse a suspect",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.GlobalLogLevel = logger.LogLevel(cfg.Log.Level)
		logger.SetOutput(cmd.ErrOrStderr())

		engine, err := engineFor(cfg)
		if err != nil {
			return err
		}
		if caseID == "" {
			caseID = cfg.Game.DefaultCase
		}

		session, err := engine.Start(caseID)
		if err != nil {
			return err
		}

		if err := console.New(cmd.InOrStdin(), cmd.OutOrStdout()).Run(session); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nThanks for playing!")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the cases that can be played",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.SetOutput(cmd.ErrOrStderr())

		engine, err := engineFor(cfg)
		if err != nil {
			return err
		}
		for _, c := range engine.Cases() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", c.ID, c.Title)
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml)")
	rootCmd.Flags().StringVar(&caseFile, "case-file", "", "play a case from a JSON or YAML file")
	rootCmd.Flags().StringVar(&caseID, "case", "", "id of the case to play (default from config)")
	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
