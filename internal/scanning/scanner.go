package scanning

// TicketCandidate is one play line as read off a receipt by the vision model.
// The shape is whatever the model produced; nothing here is validated. The
// batch layer checks every candidate against the game rules before use.
type TicketCandidate struct {
	Line      string `json:"line"`      // Line label, usually a single letter (A, B, C...)
	Numbers   []int  `json:"numbers"`   // The 5 main numbers as recognized
	Powerball int    `json:"powerball"` // The powerball number as recognized
}

// Scanner defines the interface for ticket recognition operations
type Scanner interface {
	// ScanTicket analyzes a photographed lottery receipt and extracts the
	// play lines printed on it. An unreadable image is an error; an image
	// with no recognizable play lines is an empty slice.
	ScanTicket(imageData []byte, contentType string) ([]TicketCandidate, error)
	// Close closes the scanner and releases resources
	Close() error
}
