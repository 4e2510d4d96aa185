package meter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/fernandezvara/passmeter"
)

// maxBarScore is the highest score the rules can produce.
const maxBarScore = 6

var strengthColors = map[passmeter.Strength]color.Attribute{
	passmeter.VeryWeak:   color.FgRed,
	passmeter.Weak:       color.FgHiRed,
	passmeter.Medium:     color.FgYellow,
	passmeter.Strong:     color.FgGreen,
	passmeter.VeryStrong: color.FgHiGreen,
}

// Terminal renders meter state as text, one block per update.
type Terminal struct {
	w     io.Writer
	color bool
}

// NewTerminal writes to w. useColor enables ANSI colours.
func NewTerminal(w io.Writer, useColor bool) *Terminal {
	return &Terminal{w: w, color: useColor}
}

func (t *Terminal) paint(s passmeter.Strength, text string) string {
	attr, ok := strengthColors[s]
	if !ok {
		return text
	}
	c := color.New(attr, color.Bold)
	if t.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Analyzing prints the loading line.
func (t *Terminal) Analyzing() {
	fmt.Fprintln(t.w, "Analyzing...")
}

// Error prints a scoring failure.
func (t *Terminal) Error(err error) {
	fmt.Fprintf(t.w, "error: %v\n", err)
}

// Render prints the label, the bar and the suggestions.
func (t *Terminal) Render(r passmeter.Result) {
	var b strings.Builder

	if r.Strength == passmeter.Unrated {
		b.WriteString(r.Strength.String())
		b.WriteByte('\n')
	} else {
		fmt.Fprintf(&b, "%s %s (%d/%d)\n",
			t.paint(r.Strength, Bar(r.Score)),
			t.paint(r.Strength, r.Strength.String()),
			r.Score, maxBarScore)
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s:\n", SuggestionsTitle(r))
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	fmt.Fprint(t.w, b.String())
}

// Bar draws score as a fixed-width gauge.
func Bar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > maxBarScore {
		score = maxBarScore
	}
	return "[" + strings.Repeat("#", score) + strings.Repeat(".", maxBarScore-score) + "]"
}

// SuggestionsTitle picks the heading shown above the suggestions.
func SuggestionsTitle(r passmeter.Result) string {
	switch {
	case r.Score >= 5:
		return "Great!"
	case r.Score == 0:
		return "Tips"
	default:
		return "Suggestions"
	}
}
