package bisection

import (
	"github.com/katalvlaran/smallgrammar/grammar"
)

// Build returns a grammar for input built by recursive bisection.
//
// The start symbol is the rule covering the whole input. A one-character
// input gets a single rule holding that character so that it too has a
// start symbol. The empty input yields an empty grammar.
//
// Errors: grammar.ErrInvalidInput for input that is not valid UTF-8, and
// the context's error when it is cancelled mid-recursion.
func Build(input string, opts ...Option) (*grammar.Grammar, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seq, err := grammar.ParseTerminals(input)
	if err != nil {
		return nil, err
	}

	g := grammar.New()
	d := NewDecomposer(g, o)
	root, ok, err := d.Decompose(seq)
	if err != nil {
		return nil, err
	}
	if !ok {
		return g, nil
	}

	if root.IsTerminal() {
		g.SetStart(d.mint(grammar.Value{root}))
	} else {
		g.SetStart(root.ID())
	}

	return g, nil
}

// Decomposer bisects symbol sequences into a Grammar, reusing existing
// rules by exact right-hand-side match.
type Decomposer struct {
	g      *grammar.Grammar
	opts   Options
	seq    grammar.Value
	reused int
	minted int
}

// NewDecomposer returns a Decomposer minting into g. Rules already in g
// take part in reuse.
func NewDecomposer(g *grammar.Grammar, o Options) *Decomposer {
	if o.Ctx == nil {
		o.Ctx = DefaultOptions().Ctx
	}
	return &Decomposer{g: g, opts: o}
}

// Decompose bisects seq and returns the symbol covering all of it: a rule
// reference, or seq[0] itself when len(seq) == 1. ok is false for an empty
// sequence.
func (d *Decomposer) Decompose(seq grammar.Value) (root grammar.Symbol, ok bool, err error) {
	if len(seq) == 0 {
		return 0, false, nil
	}
	d.seq = seq
	defer func() { d.seq = nil }()

	if root, err = d.recurse(0, len(seq)); err != nil {
		return 0, false, err
	}
	return root, true, nil
}

// Reused returns how many concatenations were satisfied by an existing rule.
func (d *Decomposer) Reused() int { return d.reused }

// Minted returns how many rules the Decomposer has added.
func (d *Decomposer) Minted() int { return d.minted }

// recurse solves d.seq[start:end], end-start >= 1.
func (d *Decomposer) recurse(start, end int) (grammar.Symbol, error) {
	// 1. Cancellation check at every node
	select {
	case <-d.opts.Ctx.Done():
		return 0, d.opts.Ctx.Err()
	default:
	}
	// 2. Leaf: a single symbol stands for itself
	if end-start == 1 {
		return d.seq[start], nil
	}
	// 3. Left half strictly before right half
	mid := (start + end) / 2
	left, err := d.recurse(start, mid)
	if err != nil {
		return 0, err
	}
	right, err := d.recurse(mid, end)
	if err != nil {
		return 0, err
	}
	// 4. Exact-value reuse, else mint
	concat := grammar.Value{left, right}
	if id, ok := d.g.Lookup(concat); ok {
		d.reused++
		return grammar.NonTerminal(id), nil
	}
	return grammar.NonTerminal(d.mint(concat)), nil
}

func (d *Decomposer) mint(v grammar.Value) grammar.ID {
	id := d.g.AddRule(v)
	d.minted++
	if d.opts.OnRule != nil {
		d.opts.OnRule(id, v)
	}
	return id
}
