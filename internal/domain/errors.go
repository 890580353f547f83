package domain

import "fmt"

// SymbolKind names the alphabet a token was expected to belong to.
type SymbolKind string

const (
	SymbolStem   SymbolKind = "stem"
	SymbolBranch SymbolKind = "branch"
)

// InvalidSymbolError reports a token outside the stem or branch alphabet.
type InvalidSymbolError struct {
	Token    string
	Position Position
	Kind     SymbolKind
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid %s %q in %s pillar", e.Kind, e.Token, e.Position)
}

// MalformedInputError reports input that is not exactly four stem/branch pairs.
type MalformedInputError struct {
	Tokens int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("expected 4 stem/branch pairs (8 tokens), got %d tokens", e.Tokens)
}
