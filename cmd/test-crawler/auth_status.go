package main

import (
	"fmt"
	"os"

	"github.com/dapr/test-crawler/internal/config"
	"github.com/dapr/test-crawler/internal/utils/colors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var authStatusCmd = &cobra.Command{
	Use:          "status",
	Short:        "Check whether a GitHub access token is configured",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ok := cmdConfig.AccessToken()

		// Exits zero iff a token is configured, so CI scripts can gate
		// authenticated crawls on it. No network verification happens here;
		// whether the token is actually valid is between the crawler and the
		// API.
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			// Terse, stable output for scripts.
			if !ok {
				fmt.Println("token: none")
				return errExitSilently{ExitCode: 1}
			}
			fmt.Println("token: present")
			return nil
		}

		if !ok {
			_, _ = fmt.Fprint(
				os.Stderr,
				colors.Failure(
					"No GitHub access token is configured. Set ",
					"$"+config.EnvGitHubToken,
					" to enable authenticated crawls.\n",
				),
			)
			return errExitSilently{ExitCode: 1}
		}

		_, _ = fmt.Fprint(
			os.Stderr,
			"A GitHub access token is configured via ",
			colors.UserInput("$"+config.EnvGitHubToken),
			".\n",
		)
		return nil
	},
}
