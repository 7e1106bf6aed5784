package chart

import (
	"bufio"
	"io"
	"strconv"

	"github.com/sherine-k/queuesim/pkg/simulation"
)

// FormatTimePoint renders p as one tab-separated line: clock, count, waiting
func FormatTimePoint(p simulation.TimePoint) string {
	return FormatClock(p.Clock) + "\t" + strconv.Itoa(p.Departures) + "\t" + FormatWaiting(p)
}

// WriteTable writes one line per time point to w
func WriteTable(w io.Writer, points []simulation.TimePoint) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := bw.WriteString(FormatTimePoint(p)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
