// Package signal decides whether a piece of source formatting marks a choice as correct.
package signal

import "strings"

// NoFill is the spreadsheet sentinel color meaning "no fill".
const NoFill = "00000000"

// Detector reports whether a formatting descriptor marks a choice as correct.
type Detector[D any] interface {
	Marked(descriptor D) bool
}

// CellFill is the resolved fill of a spreadsheet cell.
type CellFill struct {
	Background string
	Foreground string
}

// Shading is an explicit shading property attached to a document run.
type Shading struct {
	Val   string
	Fill  string
	Color string
}

// RunFormat is the formatting snapshot of a document run.
type RunFormat struct {
	Highlight string
	Shading   *Shading
}

// FillDetector marks cells whose background or foreground differs from the sentinel.
type FillDetector struct {
	// NoFill overrides the sentinel; empty means NoFill.
	NoFill string
}

// Marked reports whether either fill color is set.
func (d FillDetector) Marked(fill CellFill) bool {
	return !d.isSentinel(fill.Background) || !d.isSentinel(fill.Foreground)
}

func (d FillDetector) isSentinel(color string) bool {
	color = strings.TrimSpace(color)
	if color == "" {
		return true
	}
	sentinel := d.NoFill
	if sentinel == "" {
		sentinel = NoFill
	}
	return strings.EqualFold(color, sentinel)
}

// RunDetector marks runs carrying a highlight or a shading element.
type RunDetector struct{}

// Marked reports whether the run is highlighted or shaded.
func (RunDetector) Marked(format RunFormat) bool {
	if format.Shading != nil {
		return true
	}
	highlight := strings.TrimSpace(format.Highlight)
	return highlight != "" && !strings.EqualFold(highlight, "none")
}

// Func adapts a plain predicate to a Detector.
type Func[D any] func(D) bool

// Marked calls the predicate.
func (f Func[D]) Marked(descriptor D) bool {
	return f(descriptor)
}
