package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/automoto/citygen/factory"
	"github.com/automoto/citygen/persistence"
	"github.com/automoto/citygen/report"
)

// openHistory is replaced in tests to keep them out of the user data directory.
var openHistory = persistence.Open

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := newConfig()
	layout, err := loadLayout()
	if err != nil {
		return err
	}

	city := factory.CreateCity(layout, cfg)

	subPath := filepath.Join(outDir, cfg.Output.SubResourcesFile)
	if err := city.SubResources.WriteFile(subPath); err != nil {
		return fmt.Errorf("sub-resources: %w", err)
	}
	logger.Debug("Wrote sub-resources", zap.String("path", subPath), zap.Int("lines", city.SubResources.LineCount()))

	nodesPath := filepath.Join(outDir, cfg.Output.NodesFile)
	nodes := city.Nodes()
	if err := nodes.WriteFile(nodesPath); err != nil {
		return fmt.Errorf("nodes: %w", err)
	}
	logger.Debug("Wrote nodes", zap.String("path", nodesPath), zap.Int("lines", nodes.LineCount()))

	if err := report.Write(cmd.OutOrStdout(), layout, city, cfg); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	if !history {
		return nil
	}
	h, err := openHistory(cfg.History)
	if err != nil {
		logger.Warn("Could not open checkpoint history", zap.Error(err))
		return nil
	}
	checkDrift(h, persistence.Records(factory.CheckpointPositions(layout, cfg)))
	return nil
}

// checkDrift warns about checkpoints whose respawn position changed since the
// previous run, then records the current ones. History problems never fail a
// run.
func checkDrift(history *persistence.History, current []persistence.Record) []persistence.Drift {
	prev, err := history.Load()
	if err != nil {
		logger.Warn("Could not load checkpoint history", zap.Error(err))
	}

	var drift []persistence.Drift
	if prev != nil {
		drift = persistence.Diff(prev, current)
	}
	for _, d := range drift {
		fields := []zap.Field{zap.Int("checkpoint", d.Number), zap.String("change", string(d.Kind))}
		if d.Before != nil {
			fields = append(fields, zap.String("was", d.Before.Building))
		}
		if d.After != nil {
			fields = append(fields, zap.String("now", d.After.Building))
		}
		logger.Warn("Checkpoint respawn position changed, update the checkpoint manager", fields...)
	}

	if err := history.Save(current); err != nil {
		logger.Warn("Could not save checkpoint history", zap.Error(err))
	}
	return drift
}
