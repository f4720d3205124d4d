package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"phenocolor/internal/logger"
)

// Mode selects what happens to rendered analysis figures.
type Mode int

const (
	// ModeOff discards figures.
	ModeOff Mode = iota
	// ModePrint writes figures as PNG files into the output directory.
	ModePrint
	// ModePlot displays figures in a window.
	ModePlot
)

// ParseMode parses a debug mode name case-insensitively. The empty string
// means off.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "off", "none":
		return ModeOff, nil
	case "print":
		return ModePrint, nil
	case "plot", "display":
		return ModePlot, nil
	default:
		return ModeOff, fmt.Errorf("unknown debug mode %q, expected off, print or plot", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModePlot:
		return "plot"
	default:
		return "off"
	}
}

// Reporter receives each analysis figure. Implementations decide whether
// to persist, display or drop it.
type Reporter interface {
	Report(plot *HistogramPlot) error
}

// DebugReporter implements Reporter with the three debug modes. Each
// reported figure gets a monotonically increasing device number used in
// the output filename, so repeated analyses in one run never clobber each
// other's output.
type DebugReporter struct {
	mode   Mode
	outDir string
	logger logger.Logger

	mu     sync.Mutex
	device int
}

func NewDebugReporter(mode Mode, outDir string, log logger.Logger) *DebugReporter {
	if outDir == "" {
		outDir = "."
	}
	return &DebugReporter{
		mode:   mode,
		outDir: outDir,
		logger: log,
	}
}

func (r *DebugReporter) nextDevice() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.device++
	return r.device
}

func (r *DebugReporter) Report(plot *HistogramPlot) error {
	device := r.nextDevice()

	switch r.mode {
	case ModeOff:
		return nil
	case ModePrint:
		return r.writeFile(plot, device)
	case ModePlot:
		return showPlot(plot)
	default:
		return fmt.Errorf("unknown report mode %d", r.mode)
	}
}

func (r *DebugReporter) writeFile(plot *HistogramPlot, device int) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("debug output directory: %w", err)
	}

	path := filepath.Join(r.outDir, fmt.Sprintf("%d_analyze_color_hist.png", device))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debug figure file: %w", err)
	}
	defer f.Close()

	if err := plot.Render(f); err != nil {
		return err
	}

	if r.logger != nil {
		r.logger.Debug("histogram figure written", map[string]interface{}{
			"path":   path,
			"device": device,
		})
	}
	return nil
}
