// Package report prints the console summary of a generator run: the checkpoint
// respawn positions, ready to paste into the checkpoint manager, followed by
// element and line counts.
package report

import (
	"fmt"
	"io"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/factory"
	"github.com/automoto/citygen/tscn"
)

// Summary holds the counts printed after the checkpoint block.
type Summary struct {
	Sizes            int
	Buildings        int
	Decorations      int
	HookTargets      int
	Platforms        int
	SubResourceLines int
	NodeLines        int
}

// Summarize counts the elements of a layout and the lines of its generated city.
func Summarize(layout *citydata.Layout, city *factory.City) Summary {
	return Summary{
		Sizes:            city.Sizes.Len(),
		Buildings:        len(layout.Buildings),
		Decorations:      len(layout.Decorations),
		HookTargets:      len(layout.HookTargets),
		Platforms:        len(layout.Platforms),
		SubResourceLines: city.SubResources.LineCount(),
		NodeLines:        city.BuildingNodes.LineCount() + city.HookNodes.LineCount() + city.PlatformNodes.LineCount(),
	}
}

// CheckpointLine formats one respawn point as a C# constructor literal.
func CheckpointLine(p factory.CheckpointPosition) string {
	return fmt.Sprintf("  Checkpoint %d: new(%sf, %sf, %sf),", p.Number, tscn.Num(p.X), tscn.Float(p.Y), tscn.Num(p.Z))
}

// Write prints the full report.
func Write(w io.Writer, layout *citydata.Layout, city *factory.City, cfg *config.Config) error {
	p := &printer{w: w}

	p.println("=== CHECKPOINT POSITIONS ===")
	for _, pos := range factory.CheckpointPositions(layout, cfg) {
		p.println(CheckpointLine(pos))
	}

	s := Summarize(layout, city)
	p.println("")
	p.printf("Generated %d unique building sizes\n", s.Sizes)
	p.printf("Generated %d main buildings + %d decoration buildings\n", s.Buildings, s.Decorations)
	p.printf("Generated %d hookable targets\n", s.HookTargets)
	p.printf("Generated %d moving platforms\n", s.Platforms)
	p.printf("Sub-resources: %d lines\n", s.SubResourceLines)
	p.printf("Nodes: %d lines\n", s.NodeLines)
	return p.err
}

// printer remembers the first write error so the report reads top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}
