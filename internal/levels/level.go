// Package levels provides the pursuit level pack: built-in maps embedded in
// the binary, a directory loader for user maps, and load-time validation.
// The simulation consumes only Level.Layout; everything else is metadata.
package levels

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Level is one playable map.
type Level struct {
	ID       string
	Name     string
	Layout   string // normalized map text, see Normalize
	Metadata map[string]string
	FilePath string // empty for built-in levels
}

// Rows returns the layout split into rows.
func (l Level) Rows() []string {
	if l.Layout == "" {
		return nil
	}
	return strings.Split(l.Layout, "\n")
}

// Size returns the layout width (first row) and height.
func (l Level) Size() (w, h int) {
	rows := l.Rows()
	if len(rows) == 0 {
		return 0, 0
	}
	return len([]rune(rows[0])), len(rows)
}

// Fingerprint identifies the layout independently of the level's name or
// file. Two files with the same map share a leaderboard.
func (l Level) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(l.Layout))
}

// Normalize strips carriage returns and trailing line breaks so that the same
// map typed on different systems yields the same layout and fingerprint.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	return strings.TrimRight(text, "\n")
}
