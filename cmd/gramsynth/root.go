package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gramsynth",
	Short: "Synthesize a grammar that generalizes a seed string",
	Long: `gramsynth grows a context-free grammar from a single example string,
guided by a membership oracle: given a seed the oracle accepts, it searches
for a superset grammar whose every production the oracle still accepts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
