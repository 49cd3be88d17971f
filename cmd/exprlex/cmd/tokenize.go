package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yinsong19/expressions/pkg/expr"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var tokenizeCmd = &cobra.Command{
	Use:     "tokenize [file]",
	Aliases: []string{"lex"},
	Short:   "Tokenize an expression and print the resulting tokens",
	Long: `Tokenize reads expression text and prints the token stream the
standard Configuration produces for it.

Examples:
  # Tokenize an inline expression
  exprlex tokenize -e "1 + SUM(a, b) * 2"

  # Tokenize a file
  exprlex tokenize expr.txt

  # Tokenize stdin
  echo "a && b" | exprlex tokenize

  # Show token types and positions
  exprlex tokenize --show-type --show-pos -e "1+2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline text instead of reading from a file/stdin")
	tokenizeCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's start column")
	tokenizeCmd.Flags().BoolVar(&showType, "show-type", false, "show each token's type name")
	tokenizeCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "print nothing on success, only the parse error if any")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	var input string
	var source string

	switch {
	case evalExpr != "":
		input = evalExpr
		source = "<eval>"
	case len(args) == 1:
		source = args[0]
		content, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", source, err)
		}
		input = string(content)
	default:
		source = "<stdin>"
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(content)
	}

	out := cmd.OutOrStdout()

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose && !onlyErrors {
		fmt.Fprintf(out, "Tokenizing: %s\n", source)
		fmt.Fprintf(out, "Input length: %d bytes\n", len(input))
		fmt.Fprintln(out, "---")
	}

	cfg := expr.NewConfiguration()
	tokens, err := expr.Tokenize(cfg, input)
	if err != nil {
		return err
	}

	if !onlyErrors {
		for _, tok := range tokens {
			printToken(out, tok)
		}
		if verbose {
			fmt.Fprintln(out, "---")
			fmt.Fprintf(out, "Total tokens: %d\n", len(tokens))
		}
	}

	return nil
}

func printToken(out io.Writer, tok expr.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-20s]", tok.Type)
	}
	output += fmt.Sprintf(" %q", tok.Value)
	if showPos {
		output += fmt.Sprintf(" @%d", tok.StartColumn)
	}
	fmt.Fprintln(out, output)
}
