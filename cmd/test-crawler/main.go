package main

import (
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/dapr/test-crawler/internal/config"
	"github.com/dapr/test-crawler/internal/utils/logutils"
	"github.com/kr/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug      bool
	ConfigDirs []string
}

// cmdConfig is the configuration loaded by the root command's setup hook.
// Subcommands run after PersistentPreRunE, so they can rely on it being
// non-nil and fully validated.
var cmdConfig *config.Config

var RootCmd = &cobra.Command{
	Use:   "test-crawler",
	Short: "Crawl the results of the Dapr end-to-end test workflow",

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("crawler_version", config.Version).Debug("enabled debug logging")
		}

		// A malformed configuration (even a defective default) must stop the
		// process here, before any subcommand gets a chance to run.
		cfg, err := config.Load(rootFlags.ConfigDirs...)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		cmdConfig = cfg
		logrus.WithFields(logrus.Fields{
			"repository": cmdConfig.Repository(),
			"workflow":   cmdConfig.WorkflowName(),
			"parameters": logutils.Format("%v", cmdConfig.RequestParameters()),
		}).Debug("loaded crawler configuration")

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().StringArrayVar(
		&rootFlags.ConfigDirs, "config-dir", nil,
		"additional directory to search for the crawler config file",
	)
	RootCmd.AddCommand(
		authCmd,
		configCmd,
		versionCmd,
	)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		// Commands that already rendered their own failure just need the
		// exit code propagated.
		var exitSilently errExitSilently
		if errors.As(err, &exitSilently) {
			os.Exit(exitSilently.ExitCode)
		}

		// In debug mode, show more detailed information about the error
		// (including the stack trace if using pkg/errors).
		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, text.Indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}

		os.Exit(1)
	}
}
