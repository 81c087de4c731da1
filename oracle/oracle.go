// Package oracle provides the black-box membership predicate the
// synthesizer probes, plus a handful of stock implementations.
package oracle

// Oracle is a pure membership predicate. Implementations must be
// deterministic and idempotent, and must never let an internal failure
// (a parse error, a panic) escape Query: the contract requires failures
// to be translated to false, since the synthesizer treats the oracle as
// total and has no timeout or retry of its own.
type Oracle interface {
	Query(s string) bool
}

// Func adapts a plain function to the Oracle interface.
type Func func(s string) bool

func (f Func) Query(s string) bool { return f(s) }

// AcceptAll is an oracle that accepts every string. It is useful for
// exercising the synthesizer's own search behavior independent of any
// real target language (spec.md §8, "all-accepting oracle").
var AcceptAll Oracle = Func(func(string) bool { return true })

// Equals accepts exactly one fixed string and rejects everything else. It
// is the simplest oracle that still forces the synthesizer through its
// last-resort rewrites (spec.md §8 scenario 2, "reject-all").
func Equals(want string) Oracle {
	return Func(func(s string) bool { return s == want })
}
