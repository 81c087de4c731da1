package grammar

import (
	"fmt"

	verr "github.com/nihei9/gramsynth/error"
)

// Context is the textual environment surrounding a target node within a
// grammar: everything to its left, concatenated, and everything to its
// right, concatenated, per an in-order traversal of the grammar.
type Context struct {
	Left  string
	Right string
}

// ExtractContext walks root in order and returns the Context around
// target. Structural nodes (Star/Plus) contribute no text of their own;
// only their terminal-bearing leaves do. Reaching target switches the
// active side from left to right without contributing target's own label
// to either side.
//
// The generalize visitor never calls this with a target outside root, so
// a TargetMissing result is an invariant violation rather than an
// expected outcome — it is returned, not panicked, so callers can still
// decide how to surface it.
func ExtractContext(root Grammar, target *Node) (Context, error) {
	var ctx Context
	active := &ctx.Left
	found := false

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == target {
			active = &ctx.Right
			found = true
			return
		}
		if n.Kind.IsTerminalKind() {
			*active += n.Label
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range root {
		walk(n)
	}

	if !found {
		return Context{}, &verr.SynthesisError{
			Kind:  verr.TargetMissing,
			Cause: fmt.Errorf("target node not found while extracting context"),
		}
	}
	return ctx, nil
}
