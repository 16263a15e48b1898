// TopologicalOrder and Validate walk the rule graph, where an edge runs from
// a rule to every rule referenced in its right-hand side.
//
// Complexity:
//
//   - Time:   O(R + S) (R = #rules, S = Size())
//   - Memory: O(R)     (recursion stack and state slice)

package grammar

import (
	"context"
	"fmt"
)

// visitation states for the rule-graph DFS.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // rule and all its dependencies done
)

// OrderOption configures TopologicalOrder and Validate.
type OrderOption func(*orderOptions)

type orderOptions struct {
	ctx context.Context
}

func defaultOrderOptions() orderOptions {
	return orderOptions{ctx: context.Background()}
}

// WithContext sets the cancellation context of a traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) OrderOption {
	return func(o *orderOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// sorter holds the state of one rule-graph traversal.
type sorter struct {
	g     *Grammar
	opts  orderOptions
	state []uint8
	order []ID
}

// TopologicalOrder returns every rule ID ordered so that each rule appears
// after all rules it references (dependencies first). Rules are visited as
// DFS roots in mint order, so for grammars whose rules only reference
// earlier rules the result is simply 0..Len()-1.
//
// Returns ErrUndefinedRule if a reference points outside the table and
// ErrCycleDetected if the rule graph has a cycle.
func (g *Grammar) TopologicalOrder(options ...OrderOption) ([]ID, error) {
	// 1. Apply options
	opts := defaultOrderOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Initialize state: all rules start White
	s := &sorter{
		g:     g,
		opts:  opts,
		state: make([]uint8, len(g.rules)),
		order: make([]ID, 0, len(g.rules)),
	}
	// 3. Drive DFS from every unvisited rule
	for k := range g.rules {
		if s.state[k] == white {
			if err := s.visit(ID(k)); err != nil {
				return nil, err
			}
		}
	}
	// 4. Post-order already lists dependencies first
	return s.order, nil
}

// Validate checks that every referenced rule exists and that the rule graph
// is acyclic.
func (g *Grammar) Validate(options ...OrderOption) error {
	_, err := g.TopologicalOrder(options...)
	return err
}

func (s *sorter) visit(id ID) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Back-edge: id is already on the stack
	if s.state[id] == gray {
		return fmt.Errorf("%w: through %s", ErrCycleDetected, id)
	}
	if s.state[id] == black {
		return nil
	}
	s.state[id] = gray

	// 3. Follow every nonterminal of the right-hand side
	for _, sym := range s.g.rules[id] {
		if sym.IsTerminal() {
			continue
		}
		ref := sym.ID()
		if int(ref) >= len(s.g.rules) {
			return fmt.Errorf("%w: %s references %s", ErrUndefinedRule, id, ref)
		}
		if err := s.visit(ref); err != nil {
			return err
		}
	}

	// 4. Done: record in post-order
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
