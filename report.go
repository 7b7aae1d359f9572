package parsearch

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	countColor  = color.New(color.FgHiGreen, color.Bold)
	targetColor = color.New(color.FgHiCyan)
)

// WriteReport echoes the run parameters and the final count. In verbose
// mode it also lists each worker's partition and matches.
func WriteReport(w io.Writer, r *Result, verbose bool) error {
	cfg := r.Config
	_, err := fmt.Fprintf(w,
		"\nArray size: %d\nNumber to omit: %d\nNumber of threads: %d\nNumber to search for: %d\n",
		cfg.Size, cfg.Omit, cfg.Workers, cfg.Target)
	if err != nil {
		return err
	}
	if verbose {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for i, p := range r.Partitions {
			matches := 0
			if i < len(r.PerWorker) {
				matches = r.PerWorker[i]
			}
			if _, err := fmt.Fprintf(w, "worker %d: [%d, %d) %d matches\n", i, p.Offset, p.End(), matches); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "elapsed: %s\n", r.Elapsed); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\n%s was found %s times in this array.\n\n",
		targetColor.Sprint(cfg.Target), countColor.Sprint(r.Count))
	return err
}
