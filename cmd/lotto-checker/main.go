package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/zombor/lotto-checker/internal/batch"
	"github.com/zombor/lotto-checker/internal/drawing"
	"github.com/zombor/lotto-checker/internal/report"
	"github.com/zombor/lotto-checker/internal/scanning"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("lotto-checker")
	var (
		imagesDir   = fs.StringLong("images", "./tickets", "Directory of photographed ticket receipts")
		drawDate    = fs.StringLong("date", "", "Drawing date as MM/DD/YYYY (default: latest drawing)")
		scannerType = fs.StringLong("scanner", "gemini", "Scanner type: 'gemini' or 'ollama'")
		geminiKey   = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		ollamaURL   = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel = fs.StringLong("ollama-model", "llava", "Ollama model name (e.g., llava, qwen2-vl)")
		cachePath   = fs.StringLong("cache", "lotto-checker.db", "Drawing cache file path")
		noCache     = fs.BoolLong("no-cache", "Always fetch the drawing, even if cached")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("LOTTO_CHECKER"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Resolve the drawing first. Without valid winning numbers there is
	// nothing to check tickets against, so any failure here ends the run.
	var cache drawing.Cache
	if !*noCache {
		var err error
		cache, err = drawing.NewBoltCache(*cachePath)
		if err != nil {
			slog.Error("Failed to open drawing cache", "path", *cachePath, "error", err)
			os.Exit(1)
		}
		defer cache.Close()
	}

	draw, err := resolveDrawing(context.Background(), drawing.NewSite(), cache, *drawDate)
	if err != nil {
		slog.Error("Failed to resolve drawing", "date", *drawDate, "error", err)
		os.Exit(1)
	}
	slog.Info("Checking against drawing", "date", draw.Date, "numbers", draw.Numbers, "powerball", draw.Powerball)

	// List receipts before constructing a scanner so a bad --images path
	// fails without touching any API.
	imagePaths, err := batch.ListImages(*imagesDir)
	if err != nil {
		slog.Error("Failed to list ticket images", "dir", *imagesDir, "error", err)
		os.Exit(1)
	}
	if len(imagePaths) == 0 {
		slog.Error("No ticket images found", "dir", *imagesDir)
		os.Exit(1)
	}

	scanner, err := newScanner(*scannerType, *geminiKey, *geminiModel, *ollamaURL, *ollamaModel)
	if err != nil {
		slog.Error("Failed to initialize scanner", "type", *scannerType, "error", err)
		os.Exit(1)
	}
	defer scanner.Close()

	summary := batch.NewRunner(scanner).Run(draw, imagePaths)
	report.Render(os.Stdout, draw, summary)
}

// resolveDrawing returns the drawing for date, consulting the cache for dated
// runs. The latest drawing changes underneath us, so only runs with an
// explicit --date are cached.
func resolveDrawing(ctx context.Context, site drawing.Source, cache drawing.Cache, date string) (*drawing.DrawResult, error) {
	if date != "" && cache != nil {
		if draw, err := cache.Get(date); err == nil {
			slog.Info("Using cached drawing", "date", date)
			return draw, nil
		} else if !errors.Is(err, drawing.ErrNotCached) {
			return nil, fmt.Errorf("reading drawing cache: %w", err)
		}
	}

	lines, err := site.FetchDrawLines(ctx, date)
	if err != nil {
		return nil, err
	}

	draw, err := drawing.ParseDrawLines(lines)
	if err != nil {
		return nil, err
	}

	if date != "" && cache != nil {
		if err := cache.Put(date, draw); err != nil {
			slog.Warn("Failed to cache drawing", "date", date, "error", err)
		}
	}
	return draw, nil
}

// newScanner constructs the recognition collaborator for the run
func newScanner(scannerType, geminiKey, geminiModel, ollamaURL, ollamaModel string) (scanning.Scanner, error) {
	switch scannerType {
	case "gemini":
		apiKey := geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("gemini API key is required, set --gemini-key or GEMINI_API_KEY")
		}
		slog.Info("Initializing Gemini scanner...", "model", geminiModel)
		return scanning.NewGemini(apiKey, geminiModel)
	case "ollama":
		slog.Info("Initializing Ollama scanner...", "url", ollamaURL, "model", ollamaModel)
		return scanning.NewOllama(ollamaURL, ollamaModel)
	default:
		return nil, fmt.Errorf("invalid scanner type %q, valid: gemini or ollama", scannerType)
	}
}
