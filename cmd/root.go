// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"tikgrab/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON      bool
	flagDownload  bool
	flagPlay      bool
	flagPlayer    string
	flagUserAgent string
	flagNoHistory bool
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tikgrab <url>",
	Short: "Grab TikTok videos from the terminal",
	Long: `Tikgrab fetches a public TikTok video page, pulls the embedded video
metadata out of it, and prints the direct video URL along with the
thumbnail, title, and author. Extracted videos can be downloaded or
handed straight to mpv/vlc.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              getRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output the extracted record as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDownload, "download", "d", false, "Download the video to the download directory")
	rootCmd.PersistentFlags().BoolVarP(&flagPlay, "play", "p", false, "Play the video after extraction")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Media player: mpv | vlc | iina | celluloid")
	rootCmd.PersistentFlags().StringVarP(&flagUserAgent, "user-agent", "a", "", "Override the outbound User-Agent")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Don't record this extraction in history")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	if flagUserAgent != "" {
		cfg.UserAgent = flagUserAgent
	}
	if flagNoHistory {
		cfg.History = false
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		log.SetOutput(os.Stderr)
		log.SetPrefix("[tikgrab] ")
	} else {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tikgrab version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tikgrab", Version)
	},
}
