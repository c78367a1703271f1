package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/moneyreport/internal/buildinfo"
	"github.com/cleared-dev/moneyreport/internal/config"
	"github.com/cleared-dev/moneyreport/internal/logger"
)

// globalOptions carries the persistent flags and the logger built from them.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	log        zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:     "moneyreport",
		Short:   "Categorize bank statement exports into a single spending report",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			switch g.logFormat {
			case "json":
				g.log, err = logger.NewJSON(cmd.ErrOrStderr(), g.logLevel)
			case "console":
				g.log, err = logger.New(cmd.ErrOrStderr(), g.logLevel)
			default:
				err = fmt.Errorf("unknown log format %q (want console or json)", g.logFormat)
			}
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "path to config file (default ./"+config.FileName+" if present)")
	flags.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&g.logFormat, "log-format", "console", "log format: console or json")

	rootCmd.AddCommand(newRunCommand(g))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newLookupCommand(g))

	return rootCmd
}
