package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/depeter/scrollnav/assets/icon"
	"github.com/depeter/scrollnav/internal/app"
	"github.com/depeter/scrollnav/internal/config"
	"github.com/depeter/scrollnav/internal/term"
	"github.com/depeter/scrollnav/internal/ui"
)

var (
	configPath string
	tolerance  float64
)

var rootCmd = &cobra.Command{
	Use:   "scrollnav",
	Short: "Demo of a navigation bar that hides as its content scrolls",
	Long:  `scrollnav opens a window with a long feed under a navigation bar. Scrolling down past the tolerance slides the bar away, scrolling up brings it back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runWindow(cfg)
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the demo in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return term.Run(cfg)
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if configPath != "" {
			if err := cfg.SaveTo(configPath); err != nil {
				return fmt.Errorf("error writing config: %w", err)
			}
			return nil
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/scrollnav/config.toml)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", 0, "override the bar's scroll tolerance")
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(initConfigCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Bar.Tolerance = tolerance
	}
	return cfg, nil
}

func runWindow(cfg *config.Config) error {
	if err := ui.InitFonts(nil); err != nil {
		return fmt.Errorf("error loading fonts: %w", err)
	}

	game := app.NewGame(cfg)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("scrollnav")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	log.Printf("scrollnav: tolerance %.0f, bar height %.0f", cfg.Bar.Tolerance, cfg.Bar.Height)
	return ebiten.RunGame(game)
}
