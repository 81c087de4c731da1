package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// fingerprint is the value-only, pointer-free shadow of a Node that
// structhash can walk: hashing a *Node directly would hash its address,
// not its shape, which is useless for dedup.
type fingerprint struct {
	Kind     Kind
	Label    string
	Children []fingerprint
}

func fingerprintOf(n *Node) fingerprint {
	var children []fingerprint
	if len(n.Children) > 0 {
		children = make([]fingerprint, len(n.Children))
		for i, c := range n.Children {
			children[i] = fingerprintOf(c)
		}
	}
	return fingerprint{Kind: n.Kind, Label: n.Label, Children: children}
}

// Memo is the candidate memoizer (spec.md §4.4): a set of previously
// proposed candidate grammars, keyed by a structural hash over
// (kind, label, children-hashes) rather than node identity, so that two
// syntactically identical proposals collide even if built from different
// Node pointers.
type Memo struct {
	seen *treeset.Set
}

// NewMemo returns an empty memoizer.
func NewMemo() *Memo {
	return &Memo{seen: treeset.NewWith(utils.StringComparator)}
}

// key computes the structural hash of a candidate sequence of nodes.
// structhash.Hash never fails on the plain value type built here; a
// non-nil error would indicate a structhash bug, not bad input, so it is
// folded into a degenerate key instead of propagated.
func key(nodes []*Node) string {
	fs := make([]fingerprint, len(nodes))
	for i, n := range nodes {
		fs[i] = fingerprintOf(n)
	}
	h, err := structhash.Hash(fs, 1)
	if err != nil {
		return fmt.Sprintf("unhashable:%v", fs)
	}
	return h
}

// Seen reports whether a structurally identical candidate has already
// been considered at any earlier point in the synthesis run.
func (m *Memo) Seen(nodes []*Node) bool {
	return m.seen.Contains(key(nodes))
}

// Add records nodes as considered.
func (m *Memo) Add(nodes []*Node) {
	m.seen.Add(key(nodes))
}
