package drawing

// Valid ranges for Powerball plays
const (
	MainNumberMin = 1
	MainNumberMax = 69
	PowerballMin  = 1
	PowerballMax  = 26
)

// MainNumberCount is the number of white-ball numbers in a drawing or play
const MainNumberCount = 5

// DrawResult represents one official Powerball drawing
type DrawResult struct {
	Date       string `json:"date"`       // Display date as published, e.g. "Wed, Sep 3, 2025"
	Numbers    []int  `json:"numbers"`    // The 5 white-ball numbers, in drawn order
	Powerball  int    `json:"powerball"`  // The red Powerball number
	Multiplier string `json:"multiplier"` // Power Play multiplier, e.g. "2x"; empty if not published
}

// HasNumber reports whether n is one of the drawing's white-ball numbers
func (d *DrawResult) HasNumber(n int) bool {
	for _, m := range d.Numbers {
		if m == n {
			return true
		}
	}
	return false
}
