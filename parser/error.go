package parser

import "fmt"

// SyntaxError is the fatal, positional error raised for any grammar
// mismatch, per spec.md §7's "Syntactic" category. Grounded on
// informatter-nilan/parser.SyntaxError's {Line, Column, Message} shape.
type SyntaxError struct {
	Line, Column int
	Message      string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}
