package tstep

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// PrettyPrint writes a right-aligned, tab-formatted dump of ts' recorded
// points to w. Passing (from, to) limits the printed range to
// items[from:to]; calling with no arguments prints everything.
func (ts *TimeSeries[T, V]) PrettyPrint(w io.Writer, bounds ...int) {
	items := ts.Items()
	from, to := 0, len(items)
	switch len(bounds) {
	case 1:
		to = bounds[0]
	case 2:
		from, to = bounds[0], bounds[1]
	}
	if to > len(items) {
		to = len(items)
	}
	if from < 0 {
		from = 0
	}

	fmt.Fprintf(w, "Name   : %v\n", ts.Name)
	fmt.Fprintf(w, "Comment: %v\n", ts.Comment)
	fmt.Fprintln(w, "----------------------------------------------------------------------")
	tw := tabwriter.NewWriter(w, 5, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "index\t|\tT\t|\tV\t\n")
	fmt.Fprintf(tw, "-----\t|\t---------------------------\t|\t------------\t\n")
	for i := from; i < to; i++ {
		fmt.Fprintf(tw, "%d\t|\t%v\t|\t%v\t\n", i, items[i].T, items[i].V)
	}
	tw.Flush()
}

// Print is PrettyPrint against os.Stdout, a terminal-facing convenience
// wrapper.
func (ts *TimeSeries[T, V]) Print(bounds ...int) {
	ts.PrettyPrint(os.Stdout, bounds...)
}

// PrettyPrint dumps every series in the container, one header block per
// entry, generalized from TsContainer.PrettyPrint.
func (c *TsContainer[T, V]) PrettyPrint(w io.Writer) {
	for key, ts := range c.Series {
		if ts == nil {
			continue
		}
		fmt.Fprintf(w, "Container: %v\n", c.Name)
		fmt.Fprintln(w, "=======================================================================")
		fmt.Fprintf(w, "Series: %v\n", key)
		ts.PrettyPrint(w)
		fmt.Fprintln(w)
	}
}
