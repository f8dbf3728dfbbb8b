package drawing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Source supplies the text lines of the most recent draw block. Implemented by
// Site; tests substitute their own.
type Source interface {
	// FetchDrawLines returns the trimmed, non-empty text lines of one draw
	// block, in document order. date is MM/DD/YYYY, or empty for the latest
	// drawing.
	FetchDrawLines(ctx context.Context, date string) ([]string, error)
}

// Site fetches draw results from the official Powerball website
type Site struct {
	baseURL string
	client  *http.Client
}

// NewSite creates a Site pointed at powerball.com
func NewSite() *Site {
	return NewSiteWithURL("https://www.powerball.com")
}

// NewSiteWithURL creates a Site with a custom base URL for testing
func NewSiteWithURL(baseURL string) *Site {
	return &Site{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchDrawLines retrieves the draw-result page and returns the text lines of
// the most recent draw card. The card's own layout (date, five white balls,
// powerball, optional Power Play multiplier) is left to ParseDrawLines.
func (s *Site) FetchDrawLines(ctx context.Context, date string) ([]string, error) {
	pageURL := s.baseURL + "/"
	if date != "" {
		parsed, err := time.Parse("01/02/2006", date)
		if err != nil {
			return nil, fmt.Errorf("invalid draw date %q, expected MM/DD/YYYY: %w", date, err)
		}
		pageURL = fmt.Sprintf("%s/draw-result?gc=powerball&date=%s&oc=fl",
			s.baseURL, url.QueryEscape(parsed.Format("2006-01-02")))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// The site serves an interstitial to clients that don't look like browsers
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; lotto-checker/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching draw page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("draw page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing draw page: %w", err)
	}

	// The page lists one card per drawing, most recent first. Only the first
	// card is ever consumed; older drawings on the same page are ignored.
	card := doc.Find("div.card").First()
	if card.Length() == 0 {
		return nil, fmt.Errorf("no draw card found on %s", pageURL)
	}

	return textLines(card), nil
}

// textLines collects the trimmed, non-empty text nodes under sel in document
// order.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if t := strings.TrimSpace(c.Text()); t != "" {
					lines = append(lines, t)
				}
				return
			}
			walk(c)
		})
	}
	walk(sel)
	return lines
}
