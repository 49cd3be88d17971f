package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "exprlex",
	Short: "Tokenizer for arithmetic and logical expression text",
	Long: `exprlex tokenizes expression strings such as "1 + 2 * SUM(a, b)"
against a configurable dictionary of operators, functions, and
constants, and prints the resulting token stream.

It exists to exercise and debug the tokenizer in isolation from any
downstream parser or evaluator.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
