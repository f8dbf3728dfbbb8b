package drawing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDraw indicates the draw page text could not be understood as a
// drawing. There is no basis for checking tickets without a valid drawing, so
// callers must treat this as fatal for the whole run.
var ErrMalformedDraw = errors.New("malformed draw result")

// minDrawLines is the minimum text lines in a draw block: date, 5 white balls,
// powerball. The Power Play multiplier lines are optional.
const minDrawLines = 7

// ParseDrawLines converts the text lines of one draw block into a DrawResult.
//
// The expected layout, as rendered on the draw-result page:
//
//	line 0    display date
//	lines 1-5 the 5 white-ball numbers
//	line 6    the powerball
//	...       optionally a "Power Play" label followed by the multiplier
//
// Only the most recent block is ever passed in; the fetcher never hands over
// more than one drawing's worth of lines.
func ParseDrawLines(lines []string) (*DrawResult, error) {
	if len(lines) < minDrawLines {
		return nil, fmt.Errorf("%w: expected at least %d lines, got %d", ErrMalformedDraw, minDrawLines, len(lines))
	}

	numbers := make([]int, 0, MainNumberCount)
	seen := make(map[int]bool, MainNumberCount)
	for i := 1; i <= MainNumberCount; i++ {
		n, err := strconv.Atoi(lines[i])
		if err != nil {
			return nil, fmt.Errorf("%w: white ball %d: %q is not a number", ErrMalformedDraw, i, lines[i])
		}
		if n < MainNumberMin || n > MainNumberMax {
			return nil, fmt.Errorf("%w: white ball %d out of range: %d", ErrMalformedDraw, i, n)
		}
		if seen[n] {
			return nil, fmt.Errorf("%w: duplicate white ball: %d", ErrMalformedDraw, n)
		}
		seen[n] = true
		numbers = append(numbers, n)
	}

	powerball, err := strconv.Atoi(lines[6])
	if err != nil {
		return nil, fmt.Errorf("%w: powerball: %q is not a number", ErrMalformedDraw, lines[6])
	}
	if powerball < PowerballMin || powerball > PowerballMax {
		return nil, fmt.Errorf("%w: powerball out of range: %d", ErrMalformedDraw, powerball)
	}

	return &DrawResult{
		Date:       lines[0],
		Numbers:    numbers,
		Powerball:  powerball,
		Multiplier: findMultiplier(lines),
	}, nil
}

// findMultiplier scans for a "Power Play" label and returns the line after it.
// The multiplier is optional; a missing one is not an error.
func findMultiplier(lines []string) string {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "power play") && i+1 < len(lines) {
			return lines[i+1]
		}
	}
	return ""
}
