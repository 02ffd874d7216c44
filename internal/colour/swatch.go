package colour

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultSwatchWidth = 8

// Painter renders colour swatches for a terminal.
// With the Ascii profile it degrades to plain padded text.
type Painter struct {
	profile termenv.Profile
}

// NewPainter returns a true-colour painter when enabled and w is a terminal,
// and a plain-text painter otherwise.
func NewPainter(w io.Writer, enabled bool) *Painter {
	if !enabled {
		return NewPainterWithProfile(termenv.Ascii)
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewPainterWithProfile(termenv.TrueColor)
	}
	return NewPainterWithProfile(termenv.Ascii)
}

// NewPainterWithProfile returns a painter fixed to profile.
func NewPainterWithProfile(profile termenv.Profile) *Painter {
	return &Painter{profile: profile}
}

// Enabled reports whether the painter emits escape sequences.
func (p *Painter) Enabled() bool {
	return p.profile != termenv.Ascii
}

// Swatch renders text centred in a block of width cells filled with c.
// The text colour is chosen with TextColour.
func (p *Painter) Swatch(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	cell := centre(text, width)
	if !p.Enabled() {
		return cell
	}
	return p.profile.String(cell).
		Background(p.profile.Color(c.Hex())).
		Foreground(p.profile.Color(TextColour(c).Hex())).
		String()
}

// Block renders a solid block of width cells.
func (p *Painter) Block(c RGB, width int) string {
	if !p.Enabled() {
		return ""
	}
	return p.Swatch(c, "", width)
}

// Label renders "<block> #rrggbb".
func (p *Painter) Label(c RGB, width int) string {
	if !p.Enabled() {
		return c.Hex()
	}
	return p.Block(c, width) + " " + c.Hex()
}

func centre(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
