package codegen

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// StopWatch records coarse timing checkpoints across the generation run and
// writes them to a plain-text report. Diagnostics only; it has no effect on
// the generated output.
type StopWatch struct {
	started time.Time
	last    time.Time
	entries []stopWatchEntry
}

type stopWatchEntry struct {
	name    string
	elapsed time.Duration
}

// StartStopWatch begins timing.
func StartStopWatch() *StopWatch {
	now := time.Now()
	return &StopWatch{started: now, last: now}
}

// Record closes the current checkpoint under the given name.
func (w *StopWatch) Record(name string) {
	now := time.Now()
	elapsed := now.Sub(w.last)
	w.last = now
	w.entries = append(w.entries, stopWatchEntry{name: name, elapsed: elapsed})
	klog.V(1).Infof("%-40s %v", name, elapsed)
}

// WriteReport writes all checkpoints plus the total to path.
func (w *StopWatch) WriteReport(path string) error {
	var b strings.Builder
	b.WriteString("Code generation time breakdown:\n")
	for _, e := range w.entries {
		fmt.Fprintf(&b, "  %-40s %v\n", e.name, e.elapsed)
	}
	fmt.Fprintf(&b, "  %-40s %v\n", "total", w.last.Sub(w.started))
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, "writing stats report %s", path)
	}
	return nil
}
