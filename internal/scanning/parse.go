package scanning

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseTicketJSON parses the JSON array of play lines from a vision model
// response. Models wrap output in markdown fences or chat filler often enough
// that the array is located by its brackets rather than trusting the response
// to be bare JSON.
func parseTicketJSON(text string) ([]TicketCandidate, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "[")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	endIdx := strings.LastIndex(text, "]")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON array in response")
	}

	text = text[startIdx : endIdx+1]

	var candidates []TicketCandidate
	if err := json.Unmarshal([]byte(text), &candidates); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	// Normalize line labels; the numeric fields are validated downstream
	// against the game rules, not here.
	for i := range candidates {
		candidates[i].Line = strings.ToUpper(strings.TrimSpace(candidates[i].Line))
	}

	return candidates, nil
}
