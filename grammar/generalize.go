package grammar

import "github.com/nihei9/gramsynth/oracle"

// Visitor is the generalize visitor (spec.md §4.5): a single polymorphic
// operation, one method per node kind, closed over the ambient context of
// a synthesis pass (the current top-level grammar, the oracle, the
// memoizer, and the generalized flag).
//
// A Visitor is reused across passes so its Memo persists for the lifetime
// of a synthesis run, but root and generalized are reset at the start of
// every pass by beginPass.
type Visitor struct {
	oracle      oracle.Oracle
	memo        *Memo
	root        Grammar
	generalized bool
}

// NewVisitor returns a Visitor backed by o and an empty memoizer.
func NewVisitor(o oracle.Oracle) *Visitor {
	return &Visitor{oracle: o, memo: NewMemo()}
}

func (v *Visitor) beginPass(root Grammar) {
	v.root = root
	v.generalized = false
}

// generalizedThisPass reports whether any node visited so far this pass
// has committed to a rewrite (including a last-resort one).
func (v *Visitor) generalizedThisPass() bool {
	return v.generalized
}

// Generalize dispatches on n's kind. Terminal nodes are inert and return
// nil unconditionally. Rep and Alt nodes return their rewrite as a
// sequence for the caller (driver, or an ancestor Star/Plus mutating its
// own child list) to splice in. Star and Plus nodes recurse into their
// children and always return nil themselves — any rewrite found inside
// them is applied in place via ReplaceChild, not returned.
func (v *Visitor) Generalize(n *Node) []*Node {
	switch n.Kind {
	case KindTerminal:
		return nil
	case KindRep:
		return v.generalizeRep(n)
	case KindAlt:
		return v.generalizeAlt(n)
	case KindStar, KindPlus:
		return v.generalizeStructural(n)
	default:
		return nil
	}
}

// generalizeRep implements the Rep node strategy of spec.md §4.5: the
// engine of the system. It enumerates sub1/sub2/sub3 decompositions of
// the Rep's label, ascending sub1 length first and descending sub2 length
// second, and accepts the first decomposition whose zero-pump and
// double-pump residuals are both oracle-accepted in context and whose
// rewrite hasn't been proposed before.
func (v *Visitor) generalizeRep(n *Node) []*Node {
	if v.generalized {
		return nil
	}
	v.generalized = true

	ctx, err := ExtractContext(v.root, n)
	if err != nil {
		// The extractor only fails when the target isn't in the current
		// pass's grammar, which the driver never lets happen. Treat it
		// as "no decomposition could be checked" and fall through to the
		// same last-resort rewrite a failed search produces.
		return []*Node{NewTerminal(n.Label)}
	}

	alpha := n.Label
	length := len(alpha)
	for i := 0; i <= length; i++ {
		for j := length; j > i; j-- {
			sub1 := alpha[0:i]
			sub2 := alpha[i:j]
			sub3 := alpha[j:length]

			r0 := sub1 + sub3                // (sub2)^0
			r2 := sub1 + sub2 + sub2 + sub3  // (sub2)^2

			if !v.oracle.Query(ctx.Left+r0+ctx.Right) {
				continue
			}
			if !v.oracle.Query(ctx.Left+r2+ctx.Right) {
				continue
			}

			var candidate []*Node
			if sub1 != "" {
				candidate = append(candidate, NewTerminal(sub1))
			}
			candidate = append(candidate, NewStar(NewAlt(sub2)))
			if sub3 != "" {
				candidate = append(candidate, NewRep(sub3))
			}

			if v.memo.Seen(candidate) {
				continue
			}
			v.memo.Add(candidate)
			return candidate
		}
	}

	// Last resort: freeze alpha as an inert literal. This strictly
	// reduces the number of Rep/Alt nodes in the grammar, which is one of
	// the two ways a pass can make progress (spec.md §8, termination).
	return []*Node{NewTerminal(alpha)}
}

// generalizeAlt implements the Alt node strategy of spec.md §4.5: binary
// splits of the Alt's label, ascending sub1 length, accepting the first
// split whose two halves are both independently oracle-accepted in
// context.
func (v *Visitor) generalizeAlt(n *Node) []*Node {
	if v.generalized {
		return nil
	}
	v.generalized = true

	ctx, err := ExtractContext(v.root, n)
	if err != nil {
		return []*Node{NewRep(n.Label)}
	}

	alpha := n.Label
	length := len(alpha)
	for i := 1; i < length; i++ {
		sub1 := alpha[0:i]
		sub2 := alpha[i:length]

		if !v.oracle.Query(ctx.Left+sub1+ctx.Right) {
			continue
		}
		if !v.oracle.Query(ctx.Left+sub2+ctx.Right) {
			continue
		}

		candidate := []*Node{NewPlus(NewRep(sub1), NewAlt(sub2))}
		if v.memo.Seen(candidate) {
			continue
		}
		v.memo.Add(candidate)
		return candidate
	}

	// Last resort: retag as Rep, giving the other rewrite family a turn.
	// The retag is neither checked against nor recorded in the memo. It
	// cannot oscillate: the resulting Rep either yields a new, memoized
	// candidate or falls back to an inert Terminal.
	return []*Node{NewRep(alpha)}
}

// generalizeStructural implements the Star/Plus strategy of spec.md
// §4.5: recurse into children in reverse order, and on the first child
// whose recursive call commits to a rewrite, splice that rewrite into n's
// own child list in place and stop. The frame itself is never replaced,
// so this always returns nil to its caller.
func (v *Visitor) generalizeStructural(n *Node) []*Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		child := n.Children[i]
		rewrite := v.Generalize(child)
		if !v.generalized {
			continue
		}
		if len(rewrite) > 0 {
			if err := n.ReplaceChild(child, rewrite); err != nil {
				// child was read from n.Children one line above; it
				// cannot have gone missing in between.
				panic(err)
			}
		}
		break
	}
	return nil
}
