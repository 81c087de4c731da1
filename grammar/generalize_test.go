package grammar

import (
	"testing"

	"github.com/nihei9/gramsynth/oracle"
)

func TestGeneralizeRepLastResortWhenNothingIsAdmissible(t *testing.T) {
	v := NewVisitor(oracle.Equals("abc"))
	rep := NewRep("abc")
	v.beginPass(Grammar{rep})

	got := v.Generalize(rep)
	if !v.generalizedThisPass() {
		t.Fatal("expected the Rep node to commit to a rewrite")
	}
	if len(got) != 1 || got[0].Kind != KindTerminal || got[0].Label != "abc" {
		t.Fatalf("expected a last-resort [Terminal(abc)], got: %+v", got)
	}
}

func TestGeneralizeRepFindsStarDecomposition(t *testing.T) {
	// Accept the empty string and any doubling of "a" between fixed
	// "<" "/>" delimiters, e.g. "<a/>" generalizing to zero-or-more "a".
	o := oracle.Func(func(s string) bool {
		switch s {
		case "</>", "<a/>", "<aa/>":
			return true
		default:
			return false
		}
	})
	v := NewVisitor(o)
	left := NewTerminal("<")
	rep := NewRep("a")
	right := NewTerminal("/>")
	root := Grammar{left, rep, right}
	v.beginPass(root)

	got := v.Generalize(rep)
	if !v.generalizedThisPass() {
		t.Fatal("expected the Rep node to commit to a rewrite")
	}
	if len(got) != 1 {
		t.Fatalf("expected a single Star node, got: %+v", got)
	}
	if got[0].Kind != KindStar {
		t.Fatalf("expected a Star node, got kind %v", got[0].Kind)
	}
	if Print(got) != "( [ a ]alt )*" {
		t.Fatalf("unexpected rewrite; got: %v", Print(got))
	}
}

func TestGeneralizeAltSplits(t *testing.T) {
	// "a"/"bcd" is rejected, forcing the search to the next candidate
	// split, "ab"/"cd", which is accepted.
	o := oracle.Func(func(s string) bool {
		switch s {
		case "ab", "cd":
			return true
		default:
			return false
		}
	})
	v := NewVisitor(o)
	alt := NewAlt("abcd")
	v.beginPass(Grammar{alt})

	got := v.Generalize(alt)
	if !v.generalizedThisPass() {
		t.Fatal("expected the Alt node to commit to a rewrite")
	}
	if Print(got) != "( [ ab ]rep + [ cd ]alt )" {
		t.Fatalf("unexpected rewrite; got: %v", Print(got))
	}
}

func TestGeneralizeAltLastResortRetagsToRep(t *testing.T) {
	v := NewVisitor(oracle.Equals("xy"))
	alt := NewAlt("xy")
	v.beginPass(Grammar{alt})

	got := v.Generalize(alt)
	if len(got) != 1 || got[0].Kind != KindRep || got[0].Label != "xy" {
		t.Fatalf("expected a last-resort [Rep(xy)], got: %+v", got)
	}
}

func TestGeneralizeStopsAfterOneRewritePerPass(t *testing.T) {
	v := NewVisitor(oracle.AcceptAll)
	a := NewRep("a")
	b := NewRep("b")
	v.beginPass(Grammar{a, b})

	// Simulate the driver's right-to-left scan: b first.
	rewrite := v.Generalize(b)
	if !v.generalizedThisPass() || len(rewrite) == 0 {
		t.Fatal("expected b to generalize")
	}

	// a must now be left untouched for the rest of this pass: the
	// visitor's "at most one rewrite per pass" flag should already be
	// set and further calls return nil immediately.
	again := v.Generalize(a)
	if again != nil {
		t.Fatalf("expected no further rewrite once the pass has generalized, got: %+v", again)
	}
}

func TestGeneralizeTerminalIsInert(t *testing.T) {
	v := NewVisitor(oracle.AcceptAll)
	v.beginPass(Grammar{NewTerminal("a")})
	if got := v.Generalize(NewTerminal("a")); got != nil {
		t.Fatalf("expected nil from a Terminal node, got: %+v", got)
	}
	if v.generalizedThisPass() {
		t.Fatal("a Terminal node must never set the generalized flag")
	}
}

func TestGeneralizeStructuralMutatesChildInPlace(t *testing.T) {
	v := NewVisitor(oracle.Equals("ab"))
	child := NewAlt("ab")
	star := NewStar(child)
	v.beginPass(Grammar{star})

	rewrite := v.Generalize(star)
	if rewrite != nil {
		t.Fatalf("a Star node must return nil even when a rewrite occurred inside it, got: %+v", rewrite)
	}
	if !v.generalizedThisPass() {
		t.Fatal("expected the nested Alt to have committed to a rewrite")
	}
	if len(star.Children) != 1 || star.Children[0].Kind != KindRep {
		t.Fatalf("expected the Alt child to have been retagged to Rep in place, got: %+v", star.Children)
	}
}
