package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Measurement is the outcome of one sweep sample.
type Measurement struct {
	Size  int
	Edges int

	DFS time.Duration
	BFS time.Duration

	DFSReached int
	BFSReached int
}

// Report holds the measurements of a sweep in run order.
type Report []Measurement

// DFSTimes returns the DFS durations in run order.
func (r Report) DFSTimes() []time.Duration {
	out := make([]time.Duration, len(r))
	for i, m := range r {
		out[i] = m.DFS
	}
	return out
}

// BFSTimes returns the BFS durations in run order.
func (r Report) BFSTimes() []time.Duration {
	out := make([]time.Duration, len(r))
	for i, m := range r {
		out[i] = m.BFS
	}
	return out
}

// FormatSeconds renders d in seconds with six significant digits,
// switching to exponent form below 1e-4 ("1.2e-05", "0.000123", "1.5").
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', 6, 64)
}

// WriteMeasurement writes the three report lines for m.
func WriteMeasurement(w io.Writer, m Measurement) error {
	_, err := fmt.Fprintf(w, "Network Size: %d\nDFS Time: %s seconds\nBFS Time: %s seconds\n",
		m.Size, FormatSeconds(m.DFS), FormatSeconds(m.BFS))
	return err
}
