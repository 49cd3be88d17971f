// Command exprlex tokenizes arithmetic/logical expression text and
// prints the resulting token stream, for debugging the tokenizer and
// inspecting how a given Configuration resolves a piece of text.
package main

import (
	"fmt"
	"os"

	"github.com/yinsong19/expressions/cmd/exprlex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
