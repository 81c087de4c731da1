package main

import (
	"os"

	"github.com/nihei9/gramsynth/grammar"
	"github.com/pterm/pterm"
)

// renderTree prints g as a pterm tree, grounded in gorgo's
// terex/terexlang/trepl REPL command, which renders parse results the
// same way: build a pterm.TreeNode by hand, then
// pterm.DefaultTree.WithRoot(root).Render().
func renderTree(g grammar.Grammar) {
	root := pterm.TreeNode{Text: "grammar"}
	for _, n := range g {
		root.Children = append(root.Children, treeNode(n))
	}
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func treeNode(n *grammar.Node) pterm.TreeNode {
	switch n.Kind {
	case grammar.KindTerminal:
		return pterm.TreeNode{Text: n.Label}
	case grammar.KindRep:
		return pterm.TreeNode{Text: "rep: " + n.Label}
	case grammar.KindAlt:
		return pterm.TreeNode{Text: "alt: " + n.Label}
	case grammar.KindStar:
		node := pterm.TreeNode{Text: "star"}
		for _, c := range n.Children {
			node.Children = append(node.Children, treeNode(c))
		}
		return node
	case grammar.KindPlus:
		node := pterm.TreeNode{Text: "plus"}
		for _, c := range n.Children {
			node.Children = append(node.Children, treeNode(c))
		}
		return node
	default:
		return pterm.TreeNode{Text: "?"}
	}
}
