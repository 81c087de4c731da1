package grammar

import (
	verr "github.com/nihei9/gramsynth/error"
	"github.com/nihei9/gramsynth/oracle"
)

// Report carries statistics about a synthesis run, the way
// vartan's `compile` command reports the number of conflicts it resolved.
type Report struct {
	// Passes is the number of passes the driver ran, including the
	// final pass that found no further generalization.
	Passes int
}

// DefaultMaxPasses returns the defensive pass cap spec.md §9 recommends
// for a seed of the given length: 1 + len(seed)*(len(seed)+1).
func DefaultMaxPasses(seedLen int) int {
	return 1 + seedLen*(seedLen+1)
}

// Synthesize grows a grammar generalizing seed, guided by o, until one
// full right-to-left pass over the top-level grammar performs no
// generalization. maxPasses bounds the number of passes as a defensive
// measure; spec.md's termination argument (property 4) guarantees the
// loop converges well before any reasonable seed reaches it.
func Synthesize(seed string, o oracle.Oracle, maxPasses int) (Grammar, *Report, error) {
	g := Grammar{NewRep(seed)}
	v := NewVisitor(o)

	for pass := 0; pass < maxPasses; pass++ {
		v.beginPass(g)

		progressed := false
		for i := len(g) - 1; i >= 0; i-- {
			rewrite := v.Generalize(g[i])
			if !v.generalizedThisPass() {
				continue
			}
			if len(rewrite) > 0 {
				g = spliceTopLevel(g, i, rewrite)
			}
			progressed = true
			break
		}

		if !progressed {
			return g, &Report{Passes: pass + 1}, nil
		}
	}

	return g, &Report{Passes: maxPasses}, &verr.SynthesisError{
		Kind: verr.MaxPassesExceeded,
		Pass: maxPasses,
	}
}
