package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/uxmlls/uxml/underscore"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [name...]",
		Short: "Escape class names with the underscore encoding",
		Long:  "Escape each argument, or each line of standard input when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mapNames(cmd.OutOrStdout(), args, underscore.Encode)
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [name...]",
		Short: "Reverse the underscore encoding of class names",
		Long:  "Decode each argument, or each line of standard input when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mapNames(cmd.OutOrStdout(), args, underscore.Decode)
		},
	}
}

func mapNames(w io.Writer, names []string, fn func(string) string) error {
	if len(names) > 0 {
		for _, name := range names {
			fmt.Fprintln(w, fn(name))
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Fprintln(w, fn(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
