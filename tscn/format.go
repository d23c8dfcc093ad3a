// Package tscn writes fragments of Godot's text scene format: bracketed block
// headers, "key = value" property lines and blank-line separated blocks.
package tscn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Num formats a table value in its shortest form: 10, 5.5, 0.32. Magnitudes
// of at least 1e16 or below 1e-4 switch to exponent form (1e+16, 1e-05) and
// negative zero keeps its sign, matching the numbers in the hand-written scene.
func Num(v float64) string {
	abs := math.Abs(v)
	switch {
	case v == 0 && math.Signbit(v):
		return "-0.0"
	case !math.IsInf(v, 0) && (abs >= 1e16 || (abs != 0 && abs < 1e-4)):
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Float formats a computed value so it always carries a decimal point or an
// exponent: 7.5, 15.0, 1e+16.
func Float(v float64) string {
	s := Num(v)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Transform3D is a translation-only transform: identity basis, then origin.
// Components are preformatted so callers pick Num or Float per axis.
func Transform3D(x, y, z string) string {
	return fmt.Sprintf("Transform3D(1, 0, 0, 0, 1, 0, 0, 0, 1, %s, %s, %s)", x, y, z)
}

// Vector3 formats three preformatted components.
func Vector3(x, y, z string) string {
	return fmt.Sprintf("Vector3(%s, %s, %s)", x, y, z)
}

// Color formats an RGBA color from table values.
func Color(r, g, b, a float64) string {
	return fmt.Sprintf("Color(%s, %s, %s, %s)", Num(r), Num(g), Num(b), Num(a))
}

// SubResource references a resource declared in the same scene.
func SubResource(id string) string {
	return fmt.Sprintf("SubResource(%q)", id)
}

// ExtResource references a resource loaded from another file.
func ExtResource(id string) string {
	return fmt.Sprintf("ExtResource(%q)", id)
}

// Int formats an integer property value.
func Int(v int) string {
	return strconv.Itoa(v)
}
