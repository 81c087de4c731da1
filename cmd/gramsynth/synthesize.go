package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/nihei9/gramsynth/grammar"
	"github.com/nihei9/gramsynth/oracle"
	"github.com/spf13/cobra"
)

var synthesizeFlags = struct {
	oracle    *string
	tree      *bool
	maxPasses *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "synthesize [seed]",
		Short:   "Synthesize a grammar generalizing a seed string",
		Example: `  gramsynth synthesize "<a>hi</a>" --oracle xml`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runSynthesize,
	}
	synthesizeFlags.oracle = cmd.Flags().StringP("oracle", "o", "xml", "membership oracle: xml, json, or equals=<literal>")
	synthesizeFlags.tree = cmd.Flags().Bool("tree", false, "also render the result as a tree")
	synthesizeFlags.maxPasses = cmd.Flags().Int("max-passes", 0, "override the defensive pass cap (default: derived from the seed length)")
	rootCmd.AddCommand(cmd)
}

func runSynthesize(cmd *cobra.Command, args []string) error {
	seed, err := readSeed(args)
	if err != nil {
		return fmt.Errorf("cannot read seed: %w", err)
	}

	o, err := parseOracle(*synthesizeFlags.oracle)
	if err != nil {
		return err
	}

	maxPasses := *synthesizeFlags.maxPasses
	if maxPasses <= 0 {
		maxPasses = grammar.DefaultMaxPasses(len(seed))
	}

	g, report, err := grammar.Synthesize(seed, o, maxPasses)
	if err != nil {
		return fmt.Errorf("synthesis did not converge: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%v passes\n", report.Passes)
	fmt.Fprintln(os.Stdout, grammar.Print(g))

	if *synthesizeFlags.tree {
		renderTree(g)
	}

	return nil
}

func readSeed(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	src, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(src), "\n"), nil
}

func parseOracle(spec string) (oracle.Oracle, error) {
	switch {
	case spec == "xml":
		return oracle.XML, nil
	case spec == "json":
		return oracle.JSON, nil
	case strings.HasPrefix(spec, "equals="):
		return oracle.Equals(strings.TrimPrefix(spec, "equals=")), nil
	default:
		return nil, fmt.Errorf("unknown oracle %q: want xml, json, or equals=<literal>", spec)
	}
}
