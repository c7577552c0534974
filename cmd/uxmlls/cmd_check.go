package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dhamidi/uxmlls/format"
	"github.com/dhamidi/uxmlls/uxml/codebase"
	"github.com/spf13/cobra"
)

type fileReporter interface {
	Encode(f *codebase.FileInfo) error
}

func newReporter(name string, w io.Writer, warnings bool) (fileReporter, error) {
	switch name {
	case "text":
		return format.NewReportEncoder(w, warnings), nil
	case "json":
		return format.NewReportJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

func newCheckCmd() *cobra.Command {
	var outputFormat string
	var warnings bool
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report errors and warnings for UXML files and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			reporter, err := newReporter(outputFormat, cmd.OutOrStdout(), warnings)
			if err != nil {
				return err
			}

			if watch {
				if len(args) != 1 {
					return fmt.Errorf("check: --watch takes exactly one directory")
				}
				return runWatch(cmd, args[0], interval, reporter)
			}

			files, err := analyzePaths(args)
			if err != nil {
				return err
			}
			failed := false
			for _, f := range files {
				if err := reporter.Encode(f); err != nil {
					return fmt.Errorf("check: %w", err)
				}
				if len(f.Errors()) > 0 {
					failed = true
				}
			}
			if failed {
				cmd.SilenceUsage = true
				return errProblems
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVarP(&warnings, "warnings", "w", true, "include lint warnings in text output")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and re-check files when they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval for --watch")

	return cmd
}

// analyzePaths analyzes every named file and every UXML file below every
// named directory.
func analyzePaths(paths []string) ([]*codebase.FileInfo, error) {
	c := codebase.New(".")
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			if err := c.ScanDir(path); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := c.ScanFile(path); err != nil {
			return nil, err
		}
	}
	return c.Files(), nil
}

func runWatch(cmd *cobra.Command, dir string, interval time.Duration, reporter fileReporter) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w := codebase.NewFileWatcher(codebase.New(dir), interval)
	w.OnChange = func(path string, f *codebase.FileInfo) {
		if f == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: removed\n", path)
			return
		}
		if err := reporter.Encode(f); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, err)
		}
	}
	w.Start()
	defer w.Stop()

	<-ctx.Done()
	return nil
}
