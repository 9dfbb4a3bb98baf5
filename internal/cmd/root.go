/*
Package cmd provides the CLI commands for mailmerge.
*/
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge/internal/config"
)

var (
	cfgFile string
	verbose bool
	debug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mailmerge",
	Short: "Personalized bulk email from reusable templates",
	Long: `Mailmerge renders a reusable message template with per-recipient
placeholder values and dispatches one personalized multipart email per
recipient over an authenticated transport, pacing sends and reporting
each recipient's outcome as it happens.

Example:
  mailmerge templates list           # List stored templates
  mailmerge placeholders <id>        # Show a template's placeholders
  mailmerge preview <id> --index 0   # Render for the first recipient
  mailmerge send <id>                # Dispatch the whole batch
  mailmerge send <id> --index 2      # Resend a single failed recipient`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is mailmerge.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(placeholdersCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sendCmd)
}

func initLogging() {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else if verbose {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// loadConfig resolves the configuration for the current invocation. When no
// file is given explicitly, mailmerge.yaml in the working directory is used
// if it exists.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if fileExists("mailmerge.yaml") {
			path = "mailmerge.yaml"
		}
	}
	return config.Load(path)
}
