// Package lint checks a city layout for mistakes the generator itself happily
// turns into scene text: clashing checkpoint numbers, duplicate node names,
// overlapping buildings, hook targets buried in walls or out of grapple range,
// and platforms that drive through buildings.
package lint

import (
	"fmt"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Check names
const (
	CheckCheckpoints = "checkpoints"
	CheckNames       = "names"
	CheckMaterials   = "materials"
	CheckOverlap     = "overlap"
	CheckHooks       = "hooks"
	CheckGrapple     = "grapple"
	CheckPlatforms   = "platforms"
)

// Finding is one problem in a layout.
type Finding struct {
	Severity Severity
	Check    string
	Subject  string // Name of the element at fault
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", f.Severity, f.Check, f.Subject, f.Message)
}

// Report holds the findings of one lint run, in check order.
type Report struct {
	Findings []Finding
}

func (r *Report) add(sev Severity, check, subject, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: sev,
		Check:    check,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Count returns the number of findings of the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Report) HasErrors() bool {
	return r.Count(Error) > 0
}

// Failed reports whether the run should fail. In strict mode warnings fail too.
func (r *Report) Failed(strict bool) bool {
	if strict {
		return len(r.Findings) > 0
	}
	return r.HasErrors()
}

// ByCheck returns the findings produced by one check.
func (r *Report) ByCheck(check string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

// Run performs every check against layout.
func Run(layout *citydata.Layout, cfg *config.Config) *Report {
	r := &Report{}
	checkCheckpoints(r, layout)
	checkNames(r, layout, cfg)
	checkMaterials(r, layout, cfg)

	space := newLayoutSpace(layout, cfg.Lint)
	checkOverlap(r, space)
	checkHooks(r, layout, space)
	checkGrappleRange(r, layout, cfg.Grapple)
	checkPlatforms(r, layout, space, cfg.Platform)
	return r
}
