// Package tsfunc registers the two time-series function names
// spec.md §4.3's default function set names: MOVE and MA. Their bodies
// are an explicit non-goal ("the time-series domain specifics", spec.md
// §1) — only the registration (name + arity metadata) lives here.
package tsfunc

import "github.com/yinsong19/expressions/internal/function"

// Definition extends function.Definition with the arity metadata a
// downstream evaluator needs to validate a call; the tokenizer only ever
// reads Name().
type Definition struct {
	name  string
	arity int
}

// Name implements function.Definition.
func (d Definition) Name() string { return d.name }

// Arity returns the fixed argument count the function expects, or -1 if
// variadic.
func (d Definition) Arity() int { return d.arity }

// Move is the MOVE(series, offset) time-series shift function.
func Move() function.Definition { return Definition{name: "MOVE", arity: 2} }

// MA is the MA(series, window) moving-average function.
func MA() function.Definition { return Definition{name: "MA", arity: 2} }
