// Package gauge maps a 0-100 risk score onto the circular risk gauge shown
// next to an analysis report.
package gauge

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level is the qualitative risk band of a score.
type Level int

const (
	Low Level = iota
	Medium
	High
)

const (
	HighThreshold   = 70
	MediumThreshold = 40

	// Radius of the ring in SVG user units (viewBox 0 0 100 100).
	Radius = 45.0
)

// Circumference of the ring.
var Circumference = 2 * math.Pi * Radius

// LevelFor returns the band for score.
func LevelFor(score int) Level {
	switch {
	case score >= HighThreshold:
		return High
	case score >= MediumThreshold:
		return Medium
	default:
		return Low
	}
}

func (l Level) String() string {
	switch l {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Label is the caption rendered under the gauge, e.g. "HIGH RISK".
func (l Level) Label() string {
	return l.String() + " RISK"
}

// Palette holds the colour tokens for one level.
type Palette struct {
	Text   string // tailwind text colour
	Bg     string
	Border string
	Term   lipgloss.Color
}

var palettes = map[Level]Palette{
	Low:    {Text: "text-green-400", Bg: "bg-green-500/20", Border: "border-green-500/50", Term: lipgloss.Color("42")},
	Medium: {Text: "text-yellow-400", Bg: "bg-yellow-500/20", Border: "border-yellow-500/50", Term: lipgloss.Color("220")},
	High:   {Text: "text-red-400", Bg: "bg-red-500/20", Border: "border-red-500/50", Term: lipgloss.Color("203")},
}

func (l Level) Palette() Palette {
	return palettes[l]
}

// Gauge is the render-ready view of a score.
type Gauge struct {
	Score         int
	Level         Level
	Fraction      float64
	Circumference float64
	DashOffset    float64
}

// New builds the gauge for score. Scores outside 0-100 are clamped.
func New(score int) Gauge {
	score = max(0, min(100, score))
	fraction := float64(score) / 100
	return Gauge{
		Score:         score,
		Level:         LevelFor(score),
		Fraction:      fraction,
		Circumference: Circumference,
		DashOffset:    Circumference - fraction*Circumference,
	}
}

func (g Gauge) Label() string {
	return g.Level.Label()
}

func (g Gauge) Palette() Palette {
	return g.Level.Palette()
}

// Bar renders the filled portion of the ring as a text bar of the given width,
// rounding to the nearest cell.
func (g Gauge) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(g.Fraction * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
