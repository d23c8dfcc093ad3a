package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/citygen/citydata"
)

func runLayoutDump(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}
	data, err := citydata.MarshalYAML(layout)
	if err != nil {
		return fmt.Errorf("dump layout: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}
