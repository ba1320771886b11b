// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program vjson reports syntax problems in JSON text embedded in the string
// literals of Go source files, from the command line or as a language server.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("vjson")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "vjson",
		Short: "Inspect JSON embedded in Go string literals",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
