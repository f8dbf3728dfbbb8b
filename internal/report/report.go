// Package report renders a batch summary as text. The summary value object is
// the real API; this is just one consumer of it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/zombor/lotto-checker/internal/batch"
	"github.com/zombor/lotto-checker/internal/drawing"
	"github.com/zombor/lotto-checker/internal/ticket"
)

// Render writes a human-readable report for one checked batch
func Render(w io.Writer, d *drawing.DrawResult, s batch.Summary) {
	fmt.Fprintf(w, "Drawing: %s\n", d.Date)
	fmt.Fprintf(w, "Numbers: %s  PB %d", joinNumbers(d.Numbers), d.Powerball)
	if d.Multiplier != "" {
		fmt.Fprintf(w, "  (Power Play %s)", d.Multiplier)
	}
	fmt.Fprintf(w, "\n\n")

	tickets := 0
	failed := 0
	for _, img := range s.Images {
		fmt.Fprintf(w, "%s\n", img.ImageID)
		if img.Failed {
			failed++
			fmt.Fprintf(w, "  FAILED: %s\n", img.Reason)
			continue
		}
		for _, outcome := range img.Outcomes {
			tickets++
			fmt.Fprintf(w, "  %s\n", outcomeLine(outcome))
		}
	}

	fmt.Fprintf(w, "\n%d images (%d failed), %d tickets, %d winners\n",
		len(s.Images), failed, tickets, s.Winners)
}

func outcomeLine(o ticket.MatchOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-2s %s PB %-2d  matched %d", o.Ticket.LineID,
		joinNumbers(o.Ticket.MainNumbers), o.Ticket.Powerball, o.MainMatchCount)
	if len(o.MatchingNumbers) > 0 {
		fmt.Fprintf(&b, " (%s)", joinNumbers(o.MatchingNumbers))
	}
	if o.PowerballMatch {
		b.WriteString(" + PB")
	}
	if o.IsWinner {
		fmt.Fprintf(&b, "  WINNER %s", o.Tier)
	} else {
		b.WriteString("  no win")
	}
	return b.String()
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}
