package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/glitchcollage/internal/model"
	"golang.org/x/term"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 60
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// TUI implements UI with styled terminal output. It renders once per call
// and never starts an event loop.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
	bar       progress.Model
}

// NewTUI creates a new TUI.
func NewTUI(output, errOutput io.Writer) *TUI {
	return &TUI{
		output:    output,
		errOutput: errOutput,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth(output)),
		),
	}
}

// DisplayRunInfo prints a title line with the run parameters.
func (t *TUI) DisplayRunInfo(cfg m.CollageConfig) {
	t.println(titleStyle.Render("Glitch Collage"))
	t.println(fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("source"), accentStyle.Render(string(cfg.InputDir)),
		labelStyle.Render("canvas"), accentStyle.Render(fmt.Sprintf("%dx%d", cfg.CanvasWidth, cfg.CanvasHeight)),
		labelStyle.Render("fragments"), accentStyle.Render(fmt.Sprintf("%d × %dpx", cfg.FragmentCount, cfg.FragmentSize)),
	))
}

// DisplayLoadError prints a load diagnostic to the error stream.
func (t *TUI) DisplayLoadError(path m.Path, err error) {
	_, _ = fmt.Fprintln(t.errOutput, warnStyle.Render(fmt.Sprintf("⚠ could not load %s: %v", path, err)))
}

// DisplayLoadSummary prints the loaded and failed file counts.
func (t *TUI) DisplayLoadSummary(report m.LoadReport) {
	t.println(fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("loaded"), accentStyle.Render(fmt.Sprintf("%d", report.Loaded)),
		labelStyle.Render("failed"), warnStyle.Render(fmt.Sprintf("%d", report.Failed)),
		labelStyle.Render("ignored"), mutedStyle.Render(fmt.Sprintf("%d", report.Skipped)),
	))
}

// DisplayComposeSummary renders the share of drawn fragments as a bar.
func (t *TUI) DisplayComposeSummary(stats m.ComposeStats) {
	t.println(fmt.Sprintf("%s %s",
		t.bar.ViewAs(stats.Coverage()),
		mutedStyle.Render(fmt.Sprintf("%d/%d drawn, %d skipped", stats.Drawn, stats.Attempted, stats.Skipped)),
	))
}

// DisplaySaved prints where the collage was written.
func (t *TUI) DisplaySaved(path m.Path) {
	t.println(okStyle.Render("✔ saved ") + accentStyle.Render(string(path)))
}

func (t *TUI) println(line string) {
	_, _ = fmt.Fprintln(t.output, line)
}

func barWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultBarWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultBarWidth
	}

	return min(width/2, maxBarWidth)
}
