package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/uxmlls/format"
	"github.com/dhamidi/uxmlls/uxml/codebase"
	"github.com/dhamidi/uxmlls/uxml/lint"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Report class names that need underscore encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			files, err := analyzePaths(args)
			if err != nil {
				return err
			}

			found := false
			for _, f := range files {
				if len(f.Warnings) == 0 {
					continue
				}
				if fix {
					if err := fixFile(f); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: fixed %d class names\n", f.Path, len(f.Warnings))
					continue
				}
				found = true
				if err := reportWarnings(cmd, f); err != nil {
					return err
				}
			}
			if found {
				cmd.SilenceUsage = true
				return errProblems
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "rewrite files with the suggested encodings")

	return cmd
}

func reportWarnings(cmd *cobra.Command, f *codebase.FileInfo) error {
	return format.NewReportEncoder(cmd.OutOrStdout(), true).EncodeWarnings(f)
}

func fixFile(f *codebase.FileInfo) error {
	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.Path, err)
	}
	fixed := lint.Fix(f.Content, f.Warnings)
	if err := os.WriteFile(f.Path, []byte(fixed), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
