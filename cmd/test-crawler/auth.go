package main

import (
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect the GitHub credential configured for crawls",
}

func init() {
	authCmd.AddCommand(
		authStatusCmd,
	)
}
