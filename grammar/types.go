package grammar

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUndefinedRule indicates that a right-hand side references a rule ID
	// that was never minted by this Grammar.
	ErrUndefinedRule = errors.New("grammar: reference to undefined rule")

	// ErrCycleDetected indicates that the rule graph contains a cycle, so the
	// grammar does not derive a finite string.
	ErrCycleDetected = errors.New("grammar: cycle detected")

	// ErrNoStartSymbol indicates that the Grammar has no start symbol
	// although it has rules (a strategy that does not define one).
	ErrNoStartSymbol = errors.New("grammar: no start symbol")

	// ErrInvalidInput indicates an input string that is not valid UTF-8.
	// Terminals are runes, so such a string could not be derived back.
	ErrInvalidInput = errors.New("grammar: input is not valid UTF-8")
)

// ID identifies a rule (nonterminal) of a Grammar. IDs are minted densely
// from zero and never reused.
type ID int

// String renders the ID the way rules are conventionally named: A0, A1, ...
func (id ID) String() string {
	return "A" + strconv.Itoa(int(id))
}

// Symbol is one element of a right-hand side.
//
// Non-negative values are terminals and hold the rune of an input character.
// Negative values are nonterminals: rule k is encoded as -(k+1).
type Symbol int32

// Terminal returns the terminal symbol for rune r.
func Terminal(r rune) Symbol {
	return Symbol(r)
}

// NonTerminal returns the symbol referencing rule id.
func NonTerminal(id ID) Symbol {
	return Symbol(-int32(id) - 1)
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool { return s >= 0 }

// Rune returns the character of a terminal symbol.
func (s Symbol) Rune() rune { return rune(s) }

// ID returns the rule referenced by a nonterminal symbol.
func (s Symbol) ID() ID { return ID(-int32(s) - 1) }

// String renders a terminal as its character and a nonterminal as its rule name.
func (s Symbol) String() string {
	if s.IsTerminal() {
		return string(s.Rune())
	}
	return s.ID().String()
}

// Value is a right-hand side: an ordered sequence of terminals and nonterminals.
type Value []Symbol

// ParseTerminals is Terminals for untrusted input: it returns
// ErrInvalidInput when s is not valid UTF-8.
func ParseTerminals(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidInput
	}
	return Terminals(s), nil
}

// Terminals converts s into a sequence of terminal symbols, one per rune.
// Invalid UTF-8 bytes become utf8.RuneError; use ParseTerminals to reject them.
func Terminals(s string) Value {
	v := make(Value, 0, len(s))
	for _, r := range s {
		v = append(v, Terminal(r))
	}
	return v
}

// Key returns a string that is equal for two Values iff the Values are equal.
// It is used as a map key by reuse indices.
func (v Value) Key() string {
	buf := make([]byte, 0, 4*len(v))
	for _, s := range v {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(s))
	}
	return string(buf)
}

// Equal reports whether v and w hold the same symbols in the same order.
func (v Value) Equal(w Value) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// String renders v by concatenating the rendering of each symbol, e.g. "A0bA3".
// The rendering is for display only; it is ambiguous when terminals are digits.
func (v Value) String() string {
	var sb strings.Builder
	for _, s := range v {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Rule pairs a rule ID with its right-hand side.
type Rule struct {
	ID    ID
	Value Value
}
