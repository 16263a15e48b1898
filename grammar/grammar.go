package grammar

import "slices"

// Grammar is an append-only rule table.
//
// rules[k] holds the right-hand side of rule Ak; the slice length is the
// next ID to mint. index maps Value.Key() to the first ID minted for that
// value, which is what a scan over rules in mint order would find.
type Grammar struct {
	rules    [][]Symbol    // right-hand sides, indexed by ID
	index    map[string]ID // reverse index: value key → first ID
	size     int           // running sum of len(rules[k])
	start    ID            // start symbol, valid iff hasStart
	hasStart bool
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{index: make(map[string]ID)}
}

// AddRule mints a new rule with right-hand side v and returns its ID.
// v is copied. Size grows by len(v).
func (g *Grammar) AddRule(v Value) ID {
	id := ID(len(g.rules))
	cp := make([]Symbol, len(v))
	copy(cp, v)
	g.rules = append(g.rules, cp)
	g.size += len(cp)

	key := v.Key()
	if _, ok := g.index[key]; !ok {
		g.index[key] = id
	}

	return id
}

// Lookup returns the first-minted rule whose right-hand side equals v.
func (g *Grammar) Lookup(v Value) (ID, bool) {
	id, ok := g.index[v.Key()]
	return id, ok
}

// Size returns the sum of the lengths of all right-hand sides.
func (g *Grammar) Size() int { return g.size }

// Len returns the number of rules.
func (g *Grammar) Len() int { return len(g.rules) }

// NextID returns the ID the next AddRule call will mint.
func (g *Grammar) NextID() ID { return ID(len(g.rules)) }

// Rule returns the right-hand side of rule id. The returned Value must not
// be modified.
func (g *Grammar) Rule(id ID) (Value, bool) {
	if id < 0 || int(id) >= len(g.rules) {
		return nil, false
	}
	return g.rules[id], true
}

// Rules returns all rules in mint order. Each Value is a copy, so callers
// may modify it without affecting g.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	for k, v := range g.rules {
		out[k] = Rule{ID: ID(k), Value: slices.Clone(Value(v))}
	}
	return out
}

// SetStart marks rule id as the start symbol.
func (g *Grammar) SetStart(id ID) {
	g.start = id
	g.hasStart = true
}

// Start returns the start symbol, if the strategy that built g defined one.
func (g *Grammar) Start() (ID, bool) {
	return g.start, g.hasStart
}
