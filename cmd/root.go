// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-profile-card/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "github-profile-card",
	Short: "Renders GitHub stats and profile text into an SVG card.",
	Long: `github-profile-card collects a user's repository and commit stats from the
GitHub GraphQL API, merges them into a profile template and renders the
result next to an ASCII-art block as an SVG card. The card is written to the
working directory and the README is replaced with an image tag pointing at it.

The token is read from GH_TOKEN or GITHUB_TOKEN. A .env file and a
.profile-card.yaml file in the working directory are loaded when present.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCard,
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"user":     "user",
	"verbose":  "verbose",
	"output":   "output",
	"readme":   "readme",
	"scheme":   "scheme",
	"template": "template",
	"ascii":    "ascii",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("user", "u", "", "GitHub login to collect stats for (default: the token owner)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./.profile-card.yaml)")

	rootCmd.Flags().StringP("output", "o", config.DefaultOutput, "Path of the SVG card to write")
	rootCmd.Flags().String("readme", config.DefaultReadme, "Path of the README to overwrite")
	rootCmd.Flags().Int("scheme", config.RandomScheme, "Index of the colour scheme to use (-1 picks one at random)")
	rootCmd.Flags().String("template", "", "YAML profile template (default: built-in)")
	rootCmd.Flags().String("ascii", "", "Text file with the ASCII art (default: built-in)")
}

// loadConfig binds the command's flags over the file and environment settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	configPath, _ := cmd.Flags().GetString("config")
	return config.Load(v, configPath)
}

// newLogger returns a logger that only reports warnings unless verbose is set.
func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
