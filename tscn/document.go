package tscn

import (
	"fmt"
	"strings"

	"github.com/automoto/citygen/fileutil"
)

// Property is one "key = value" line. Value is already formatted.
type Property struct {
	Key   string
	Value string
}

// Prop builds a Property.
func Prop(key, value string) Property {
	return Property{Key: key, Value: value}
}

// Node describes a [node] block header. Type is omitted for scene instances,
// Instance is empty for plain nodes.
type Node struct {
	Name     string
	Type     string
	Parent   string
	Groups   []string
	Instance string // formatted ExtResource reference
}

func (n Node) header() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[node name=%q", n.Name)
	if n.Type != "" {
		fmt.Fprintf(&b, " type=%q", n.Type)
	}
	fmt.Fprintf(&b, " parent=%q", n.Parent)
	if n.Instance != "" {
		fmt.Fprintf(&b, " instance=%s", n.Instance)
	}
	if len(n.Groups) > 0 {
		quoted := make([]string, len(n.Groups))
		for i, g := range n.Groups {
			quoted[i] = fmt.Sprintf("%q", g)
		}
		fmt.Fprintf(&b, " groups=[%s]", strings.Join(quoted, ", "))
	}
	b.WriteString("]")
	return b.String()
}

// Document accumulates fragment lines. Every block is followed by one blank
// line; the fragment is the lines joined by "\n".
type Document struct {
	lines []string
}

// Blank appends an empty line.
func (d *Document) Blank() {
	d.lines = append(d.lines, "")
}

// SubResource appends a [sub_resource] block.
func (d *Document) SubResource(typ, id string, props ...Property) {
	d.block(fmt.Sprintf("[sub_resource type=%q id=%q]", typ, id), props)
}

// Node appends a [node] block.
func (d *Document) Node(n Node, props ...Property) {
	d.block(n.header(), props)
}

// Append copies the lines of other onto the end of d.
func (d *Document) Append(other *Document) {
	d.lines = append(d.lines, other.lines...)
}

func (d *Document) block(header string, props []Property) {
	d.lines = append(d.lines, header)
	for _, p := range props {
		d.lines = append(d.lines, p.Key+" = "+p.Value)
	}
	d.Blank()
}

// Lines returns a copy of the accumulated lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// LineCount is the number of lines, counting blank separators.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// String joins the lines with "\n", without a trailing terminator.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// WriteFile writes the fragment to path atomically.
func (d *Document) WriteFile(path string) error {
	return fileutil.WriteAtomic(path, []byte(d.String()))
}
