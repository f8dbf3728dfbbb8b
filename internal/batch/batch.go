package batch

import (
	"log/slog"

	"github.com/zombor/lotto-checker/internal/drawing"
	"github.com/zombor/lotto-checker/internal/scanning"
	"github.com/zombor/lotto-checker/internal/ticket"
)

// Recognition is what the recognition collaborator produced for one image:
// either a list of candidate play lines or an error.
type Recognition struct {
	Candidates []scanning.TicketCandidate
	Err        error
}

// Entry pairs an image identifier with its recognition result
type Entry struct {
	ImageID     string
	Recognition Recognition
}

// ImageResult holds the classified outcomes for one image. A failed image has
// no outcomes and a reason instead.
type ImageResult struct {
	ImageID  string                `json:"image_id"`
	Outcomes []ticket.MatchOutcome `json:"outcomes,omitempty"`
	Failed   bool                  `json:"failed"`
	Reason   string                `json:"reason,omitempty"`
}

// Summary is the result of checking a whole batch of receipt images against
// one drawing. Built once; never updated afterward.
type Summary struct {
	Images  []ImageResult `json:"images"`
	Winners int           `json:"winners"`
}

// Aggregate classifies every recognized ticket in the batch against the
// drawing. One bad image or one garbled play line never aborts the batch: a
// recognition failure (or an image with no readable play lines) becomes a
// failed marker for that image alone, and an invalid candidate is dropped
// from its image with the siblings still processed. Image order and
// within-image ticket order are preserved exactly as given.
func Aggregate(d *drawing.DrawResult, entries []Entry) Summary {
	images := make([]ImageResult, 0, len(entries))
	winners := 0

	for _, entry := range entries {
		if entry.Recognition.Err != nil {
			images = append(images, ImageResult{
				ImageID: entry.ImageID,
				Failed:  true,
				Reason:  entry.Recognition.Err.Error(),
			})
			continue
		}
		if len(entry.Recognition.Candidates) == 0 {
			images = append(images, ImageResult{
				ImageID: entry.ImageID,
				Failed:  true,
				Reason:  "no play lines recognized",
			})
			continue
		}

		outcomes := make([]ticket.MatchOutcome, 0, len(entry.Recognition.Candidates))
		for _, candidate := range entry.Recognition.Candidates {
			t := ticket.Ticket{
				LineID:      candidate.Line,
				MainNumbers: candidate.Numbers,
				Powerball:   candidate.Powerball,
			}
			if err := t.Validate(); err != nil {
				slog.Warn("Dropping unrecognizable play line",
					"image", entry.ImageID,
					"line", candidate.Line,
					"error", err,
				)
				continue
			}

			outcome := ticket.Classify(t, d)
			if outcome.IsWinner {
				winners++
			}
			outcomes = append(outcomes, outcome)
		}

		images = append(images, ImageResult{
			ImageID:  entry.ImageID,
			Outcomes: outcomes,
		})
	}

	return Summary{
		Images:  images,
		Winners: winners,
	}
}
