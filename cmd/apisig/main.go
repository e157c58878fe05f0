package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "apisig",
		Short: "Inspect and sign API codebase models",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	rootCmd.AddCommand(newSignCmd())
	rootCmd.AddCommand(newClassesCmd())
	rootCmd.AddCommand(newInheritedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
