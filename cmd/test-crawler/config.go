package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"emperror.dev/errors"
	"github.com/dapr/test-crawler/internal/config"
	"github.com/dapr/test-crawler/internal/utils/colors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

// String, Set, and Type implement pflag.Value so that --format rejects
// unknown values at parse time instead of falling back to a default.
func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(value string) error {
	switch outputFormat(value) {
	case formatText, formatJSON:
		*f = outputFormat(value)
		return nil
	}
	return errors.Errorf("invalid format %q (must be %q or %q)", value, formatText, formatJSON)
}

func (f *outputFormat) Type() string {
	return "text|json"
}

var configFlags = struct {
	Format outputFormat
}{
	Format: formatText,
}

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Print the effective crawler configuration",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configFlags.Format == formatJSON {
			return printConfigJSON(os.Stdout, cmdConfig)
		}
		printConfigText(os.Stdout, cmdConfig)
		return nil
	},
}

func init() {
	configCmd.Flags().Var(
		&configFlags.Format, "format",
		"output format (text or json)",
	)
}

// printConfigJSON emits the effective configuration for machine consumption.
// The token itself is never part of the output, only its presence.
func printConfigJSON(w io.Writer, cfg *config.Config) error {
	_, tokenPresent := cfg.AccessToken()
	payload := struct {
		Repository   string            `json:"repository"`
		Workflow     string            `json:"workflow"`
		Parameters   map[string]string `json:"parameters"`
		Output       string            `json:"output"`
		TokenPresent bool              `json:"token_present"`
	}{
		Repository:   cfg.Repository().String(),
		Workflow:     cfg.WorkflowName(),
		Parameters:   cfg.RequestParameters(),
		Output:       cfg.OutputTarget(),
		TokenPresent: tokenPresent,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&payload)
}

func printConfigText(w io.Writer, cfg *config.Config) {
	token := colors.Warning("none (set $" + config.EnvGitHubToken + ")")
	if _, ok := cfg.AccessToken(); ok {
		token = colors.Success("present (from $" + config.EnvGitHubToken + ")")
	}

	params := cfg.RequestParameters()
	names := maps.Keys(params)
	slices.Sort(names)

	_, _ = fmt.Fprintln(w, colors.Faint("repository:   ")+cfg.Repository().String())
	_, _ = fmt.Fprintln(w, colors.Faint("workflow:     ")+cfg.WorkflowName())
	_, _ = fmt.Fprintln(w, colors.Faint("parameters:"))
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", name, params[name])
	}
	_, _ = fmt.Fprintln(w, colors.Faint("output:       ")+cfg.OutputTarget())
	_, _ = fmt.Fprintln(w, colors.Faint("access token: ")+token)
}
