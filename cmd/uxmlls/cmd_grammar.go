package main

import (
	"fmt"
	"sort"

	"github.com/dhamidi/uxmlls/uxml/parser"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of UXML accepted by the parser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parser.Grammar()
			if err != nil {
				return err
			}
			if !list {
				fmt.Fprint(cmd.OutOrStdout(), parser.GrammarSource())
				return nil
			}

			names := make([]string, 0, len(g))
			for name := range g {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, g[name].Pos())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list production names with their positions")

	return cmd
}
