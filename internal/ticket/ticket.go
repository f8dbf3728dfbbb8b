package ticket

import (
	"errors"
	"fmt"

	"github.com/zombor/lotto-checker/internal/drawing"
)

// ErrInvalidTicket indicates a recognized ticket line that doesn't have the
// shape of a Powerball play. Such lines are dropped; the rest of the batch is
// unaffected.
var ErrInvalidTicket = errors.New("invalid ticket")

// Ticket is one validated play line from a receipt
type Ticket struct {
	LineID      string `json:"line_id"`      // The line's label on the ticket, usually a single letter
	MainNumbers []int  `json:"main_numbers"` // Exactly 5 distinct numbers in [1,69]
	Powerball   int    `json:"powerball"`    // In [1,26]
}

// Validate checks the ticket against Powerball play rules. Recognition output
// is loosely typed, so every candidate goes through here before it is
// classified.
func (t Ticket) Validate() error {
	if len(t.MainNumbers) != drawing.MainNumberCount {
		return fmt.Errorf("%w: expected %d main numbers, got %d", ErrInvalidTicket, drawing.MainNumberCount, len(t.MainNumbers))
	}
	seen := make(map[int]bool, drawing.MainNumberCount)
	for _, n := range t.MainNumbers {
		if n < drawing.MainNumberMin || n > drawing.MainNumberMax {
			return fmt.Errorf("%w: main number out of range: %d", ErrInvalidTicket, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: duplicate main number: %d", ErrInvalidTicket, n)
		}
		seen[n] = true
	}
	if t.Powerball < drawing.PowerballMin || t.Powerball > drawing.PowerballMax {
		return fmt.Errorf("%w: powerball out of range: %d", ErrInvalidTicket, t.Powerball)
	}
	return nil
}
