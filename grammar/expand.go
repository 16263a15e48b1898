package grammar

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultExpanderCacheSize is the number of rule expansions an Expander
// keeps when NewExpander is called with a non-positive size.
const DefaultExpanderCacheSize = 4096

// Expander decompresses rules, memoizing the expansion of recently used
// rules in a bounded LRU cache. Repeated nonterminals (the whole point of a
// small grammar) are then expanded once instead of once per reference.
//
// An Expander is bound to one Grammar and must not be used after that
// Grammar gains new rules.
type Expander struct {
	g     *Grammar
	cache *lru.Cache[ID, Value]
}

// NewExpander returns an Expander over g caching up to size expansions.
func NewExpander(g *Grammar, size int) *Expander {
	if size <= 0 {
		size = DefaultExpanderCacheSize
	}
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New[ID, Value](size)
	return &Expander{g: g, cache: cache}
}

// Expand returns the terminal sequence derived from rule id.
func (e *Expander) Expand(id ID) (Value, error) {
	return e.appendRule(nil, id, make(map[ID]struct{}))
}

// ExpandValue returns the terminal sequence derived from v, expanding every
// nonterminal in place.
func (e *Expander) ExpandValue(v Value) (Value, error) {
	var (
		out    Value
		err    error
		active = make(map[ID]struct{})
	)
	for _, sym := range v {
		if sym.IsTerminal() {
			out = append(out, sym)
			continue
		}
		if out, err = e.appendRule(out, sym.ID(), active); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// appendRule appends the expansion of id to dst. active holds the rules on
// the current derivation path and detects cycles.
func (e *Expander) appendRule(dst Value, id ID, active map[ID]struct{}) (Value, error) {
	if v, ok := e.cache.Get(id); ok {
		return append(dst, v...), nil
	}
	rhs, ok := e.g.Rule(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedRule, id)
	}
	if _, on := active[id]; on {
		return nil, fmt.Errorf("%w: through %s", ErrCycleDetected, id)
	}
	active[id] = struct{}{}

	var err error
	from := len(dst)
	for _, sym := range rhs {
		if sym.IsTerminal() {
			dst = append(dst, sym)
			continue
		}
		if dst, err = e.appendRule(dst, sym.ID(), active); err != nil {
			return nil, err
		}
	}

	delete(active, id)
	e.cache.Add(id, slices.Clone(dst[from:]))

	return dst, nil
}

// Expand returns the terminal sequence derived from rule id.
func (g *Grammar) Expand(id ID) (Value, error) {
	return NewExpander(g, 0).Expand(id)
}

// ExpandString returns the text derived from rule id.
func (g *Grammar) ExpandString(id ID) (string, error) {
	v, err := g.Expand(id)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Text returns the text derived from the start symbol. A Grammar built
// from the empty string has no rules and yields "".
func (g *Grammar) Text() (string, error) {
	id, ok := g.Start()
	if !ok {
		if len(g.rules) == 0 {
			return "", nil
		}
		return "", ErrNoStartSymbol
	}
	return g.ExpandString(id)
}
