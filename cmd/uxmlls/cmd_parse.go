package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/uxmlls/format"
	"github.com/dhamidi/uxmlls/uxml/parser"
	"github.com/spf13/cobra"
)

var errProblems = errors.New("problems found")

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a UXML document and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			enc, err := format.NewTreeEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			p := parser.Parse(src, parser.WithFile(args[0]))
			if err := enc.Encode(p); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if len(p.Errors()) > 0 {
				cmd.SilenceUsage = true
				return errProblems
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}

// readSource reads the named file, or standard input for "-".
func readSource(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
