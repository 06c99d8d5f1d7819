package main

import (
	"fmt"
	"os"

	"skim/internal/config"
	"skim/internal/log"
	"skim/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command. Running skim with no subcommand
// opens the browser.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile    string
		debug      bool
		showHidden bool
	)

	rootCmd := &cobra.Command{
		Use:     "skim [directory]",
		Short:   "A keyboard-driven file manager for the terminal",
		Long:    `Skim lets you browse, search, sort and manage files without leaving the terminal.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("debug") {
				cfg.General.Debug = debug
			}
			if cfg.General.Debug {
				log.SetDebug(true)
			}
			if cmd.Flags().Changed("hidden") {
				cfg.General.ShowHidden = showHidden
			}
			if len(args) > 0 {
				cfg.General.StartDir = args[0]
			}

			// Interactive mode owns the terminal; logs go to a file
			if logPath, err := log.InitFile(); err != nil {
				log.Warnf("file logging unavailable: %v", err)
			} else {
				log.Debugf("logging to %s", logPath)
			}

			m, err := tui.New(cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running browser: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/skim/config.yaml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&showHidden, "hidden", false, "show hidden files")

	rootCmd.AddCommand(NewConfigCmd(&cfgFile))
	rootCmd.AddCommand(NewThemesCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the skim version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("skim %s\n", version)
		},
	})

	return rootCmd
}

func loadConfig(cfgFile string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\nUsing default settings.\n", err)
		cfg = config.New()
	}
	return cfg, nil
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfgFile *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage skim configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *cfgFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("failed to determine home directory: %w", err)
				}
				path = home + "/.config/skim/config.yaml"
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}

			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Printf("Wrote default configuration to %s\n", path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("start directory: %s\n", displayDir(cfg.General.StartDir))
			fmt.Printf("show hidden:     %t\n", cfg.General.ShowHidden)
			fmt.Printf("confirm delete:  %t\n", cfg.General.ConfirmDelete)
			fmt.Printf("view:            %s, sort by %s %s\n", cfg.View.Mode, cfg.View.Sort, cfg.View.Order)
			fmt.Printf("theme:           %s\n", cfg.Theme.Name)
			if len(cfg.Ignore) > 0 {
				fmt.Printf("ignored:         %v\n", cfg.Ignore)
			}
			return nil
		},
	})

	return configCmd
}

func displayDir(dir string) string {
	if dir == "" {
		return "(working directory)"
	}
	return dir
}

// NewThemesCmd creates the themes command.
func NewThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				fmt.Println(name)
			}
		},
	}
}
