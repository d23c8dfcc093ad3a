package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/automoto/citygen/lint"
)

var strictLint bool

func runLint(cmd *cobra.Command, args []string) error {
	cfg := newConfig()
	layout, err := loadLayout()
	if err != nil {
		return err
	}

	r := lint.Run(layout, cfg)
	out := cmd.OutOrStdout()
	for _, f := range r.Findings {
		fmt.Fprintln(out, f.String())
	}
	errs, warns := r.Count(lint.Error), r.Count(lint.Warning)
	fmt.Fprintf(out, "%d errors, %d warnings\n", errs, warns)

	logger.Debug("Lint finished", zap.Int("errors", errs), zap.Int("warnings", warns), zap.Bool("strict", strictLint))
	if r.Failed(strictLint) {
		return fmt.Errorf("lint failed: %d errors, %d warnings", errs, warns)
	}
	return nil
}
