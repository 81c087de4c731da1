// Package grammar implements the node model, context extractor, candidate
// memoizer, generalize visitor, synthesis driver, and pretty printer
// described by the grammar generalization algorithm: a recursive,
// oracle-bounded rewriting procedure that grows a grammar from a single
// seed string.
package grammar

import (
	"fmt"

	verr "github.com/nihei9/gramsynth/error"
)

// Kind tags the five node variants. It is a role tag only: Terminal, Rep,
// and Alt all contribute exactly their own label to the language they
// generate; the kind just tells the generalize visitor which rewrite
// strategy, if any, still applies to the node.
type Kind int

const (
	KindTerminal Kind = iota
	KindRep
	KindAlt
	KindStar
	KindPlus
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindRep:
		return "rep"
	case KindAlt:
		return "alt"
	case KindStar:
		return "star"
	case KindPlus:
		return "plus"
	default:
		return "unknown"
	}
}

// Node is a grammar tree node. Terminal, Rep, and Alt nodes carry Label and
// no Children; Star and Plus nodes carry Children and an empty Label.
//
// Node identity is the pointer itself: two nodes are "the same node" iff
// they are the same *Node value. This is the stable handle spec.md asks
// for — a Go pointer survives insertion of neighboring nodes into whatever
// slice currently holds it, so no separate arena is needed.
type Node struct {
	Kind     Kind
	Label    string
	Children []*Node
}

// Grammar is a finite ordered sequence of nodes. Its language is the
// concatenation of its nodes' languages.
type Grammar []*Node

func NewTerminal(s string) *Node { return &Node{Kind: KindTerminal, Label: s} }
func NewRep(s string) *Node      { return &Node{Kind: KindRep, Label: s} }
func NewAlt(s string) *Node      { return &Node{Kind: KindAlt, Label: s} }

// NewStar builds a Kleene-closure node. children must be non-empty.
func NewStar(children ...*Node) *Node {
	if len(children) == 0 {
		panic("grammar: a Star node requires at least one child")
	}
	return &Node{Kind: KindStar, Children: children}
}

// NewPlus builds a choice node. children must have at least two elements.
func NewPlus(children ...*Node) *Node {
	if len(children) < 2 {
		panic("grammar: a Plus node requires at least two children")
	}
	return &Node{Kind: KindPlus, Children: children}
}

// IsTerminalKind reports whether k is one of the three label-bearing kinds.
func (k Kind) IsTerminalKind() bool {
	return k == KindTerminal || k == KindRep || k == KindAlt
}

// ReplaceChild splices replacement into n's child list in place of target,
// located by identity. It is the "replace-child-by-identity" operation
// spec.md §4.1 gives to structural nodes: they own their children, so the
// rewrite happens by mutation rather than by return value.
func (n *Node) ReplaceChild(target *Node, replacement []*Node) error {
	for i, c := range n.Children {
		if c != target {
			continue
		}
		next := make([]*Node, 0, len(n.Children)-1+len(replacement))
		next = append(next, n.Children[:i]...)
		next = append(next, replacement...)
		next = append(next, n.Children[i+1:]...)
		n.Children = next
		return nil
	}
	return &verr.SynthesisError{
		Kind:  verr.TargetMissing,
		Cause: fmt.Errorf("child %v not found among %v children of a %v node", target, len(n.Children), n.Kind),
	}
}

// spliceTopLevel replaces g[i] with replacement, returning the new
// top-level sequence. Used only by the driver: top-level nodes are owned
// by the driver, not by a parent Star/Plus, so their replacement flows
// through a returned value instead of in-place mutation.
func spliceTopLevel(g Grammar, i int, replacement []*Node) Grammar {
	next := make(Grammar, 0, len(g)-1+len(replacement))
	next = append(next, g[:i]...)
	next = append(next, replacement...)
	next = append(next, g[i+1:]...)
	return next
}
