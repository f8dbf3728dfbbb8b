package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zombor/lotto-checker/internal/drawing"
	"github.com/zombor/lotto-checker/internal/scanning"
)

// imageContentTypes maps receipt file extensions to the content type handed to
// the scanner
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".heic": "image/heic",
	".heif": "image/heif",
	".pdf":  "application/pdf",
}

// ListImages enumerates receipt images in a directory (non-recursive), sorted
// by name so batches are reproducible.
func ListImages(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}

	paths := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if _, ok := imageContentTypes[ext]; ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Runner drives ticket recognition across a batch of receipt images
type Runner struct {
	scanner scanning.Scanner
}

// NewRunner creates a Runner around a recognition scanner. The scanner is
// always passed in; the runner never constructs one itself.
func NewRunner(scanner scanning.Scanner) *Runner {
	return &Runner{scanner: scanner}
}

// Run scans every image and classifies the recognized tickets against the
// drawing. Images are scanned sequentially, both to stay inside vision API
// rate limits and because the summary must list images in input order. A
// failed read or scan of one image becomes that image's failure marker and
// the rest of the batch continues.
func (r *Runner) Run(d *drawing.DrawResult, imagePaths []string) Summary {
	entries := make([]Entry, 0, len(imagePaths))
	for _, path := range imagePaths {
		imageID := filepath.Base(path)
		slog.Info("Scanning receipt", "image", imageID)

		data, err := os.ReadFile(path)
		if err != nil {
			entries = append(entries, Entry{
				ImageID:     imageID,
				Recognition: Recognition{Err: fmt.Errorf("reading image: %w", err)},
			})
			continue
		}

		ext := strings.ToLower(filepath.Ext(path))
		candidates, err := r.scanner.ScanTicket(data, imageContentTypes[ext])
		if err != nil {
			slog.Error("Failed to scan receipt",
				"image", imageID,
				"file_size", len(data),
				"error", err,
			)
			entries = append(entries, Entry{
				ImageID:     imageID,
				Recognition: Recognition{Err: err},
			})
			continue
		}

		entries = append(entries, Entry{
			ImageID:     imageID,
			Recognition: Recognition{Candidates: candidates},
		})
	}

	return Aggregate(d, entries)
}
