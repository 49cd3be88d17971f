package tokenizer

import "github.com/yinsong19/expressions/internal/token"

// The context predicates of spec.md §4.5.5. Each reads only the previous
// emitted token; a missing previous token (nil) counts as "none".

func prefixOperatorAllowed(prev *token.Token) bool {
	if prev == nil {
		return true
	}
	switch prev.Type {
	case token.BraceOpen, token.InfixOperator, token.Comma, token.PrefixOperator:
		return true
	default:
		return false
	}
}

func postfixOperatorAllowed(prev *token.Token) bool {
	if prev == nil {
		return false
	}
	switch prev.Type {
	case token.BraceClose, token.NumberLiteral, token.VariableOrConstant, token.StringLiteral:
		return true
	default:
		return false
	}
}

func arrayCloseAllowed(prev *token.Token) bool {
	if prev == nil {
		return false
	}
	switch prev.Type {
	case token.BraceOpen, token.InfixOperator, token.PrefixOperator, token.Function, token.Comma, token.ArrayOpen:
		return false
	default:
		return true
	}
}
