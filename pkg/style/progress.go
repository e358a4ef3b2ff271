package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Progress reports copy progress at the pipeline's batch cadence
type Progress struct {
	format Format
	bar    *pterm.ProgressbarPrinter
	last   int
}

// NewProgress creates a progress reporter for total files. Plain-text
// output gets one line per report instead of a live bar.
func NewProgress(format Format, total int) *Progress {
	p := &Progress{format: format}
	if format == FormatTerminal {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("Copying").
			Start()
		if err == nil {
			p.bar = bar
		}
	}
	return p
}

// Update advances the progress display to done of total files
func (p *Progress) Update(done, total int) {
	if p.bar != nil {
		p.bar.Add(done - p.last)
		p.last = done
		return
	}
	fmt.Printf("  Progress: %d/%d (%.1f%%)\n", done, total, percentage(done, total))
}

// Stop finishes the progress display
func (p *Progress) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
	}
}
