package grammar

import "strings"

// Print renders g in the canonical grammar:
//
//	Terminal(s)             -> s
//	Rep(s)                  -> "[ " s " ]rep"
//	Alt(s)                  -> "[ " s " ]alt"
//	Star([c1..cm])          -> "( " print(c1) print(c2) ... print(cm) " )*"
//	Plus([x, y, ...])       -> "( " print(x) " + " print(y) " + " ... " )"
//
// This is the human-readable form of a grammar. The candidate memoizer
// (memo.go) dedups on a separate structural fingerprint instead, so that
// dedup doesn't depend on this function's exact formatting.
func Print(g Grammar) string {
	var b strings.Builder
	for _, n := range g {
		b.WriteString(printNode(n))
	}
	return b.String()
}

func printNode(n *Node) string {
	switch n.Kind {
	case KindTerminal:
		return n.Label
	case KindRep:
		return "[ " + n.Label + " ]rep"
	case KindAlt:
		return "[ " + n.Label + " ]alt"
	case KindStar:
		var b strings.Builder
		b.WriteString("( ")
		for _, c := range n.Children {
			b.WriteString(printNode(c))
		}
		b.WriteString(" )*")
		return b.String()
	case KindPlus:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = printNode(c)
		}
		return "( " + strings.Join(parts, " + ") + " )"
	default:
		return "?"
	}
}
