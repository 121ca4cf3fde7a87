package dom

import "strconv"

// IDPrefix starts every id Discover assigns.
const IDPrefix = "reveal-"

// IDs hands out element ids for unnamed sections.
type IDs struct {
	n int
}

// Next returns the first unused IDPrefix id that taken does not report.
// Counting continues across calls, so sections discovered after a fragment
// swap never get an id handed out earlier.
func (g *IDs) Next(taken func(id string) bool) string {
	for {
		id := IDPrefix + strconv.Itoa(g.n)
		g.n++
		if taken == nil || !taken(id) {
			return id
		}
	}
}
