package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/glitchcollage/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunInfo prints the parameters of the run.
func (s *SimpleUI) DisplayRunInfo(cfg m.CollageConfig) {
	s.printf("Scattering %d fragments of %dx%d px from %s onto a %dx%d canvas\n",
		cfg.FragmentCount, cfg.FragmentSize, cfg.FragmentSize, cfg.InputDir, cfg.CanvasWidth, cfg.CanvasHeight)
}

// DisplayLoadError prints a load diagnostic to stderr.
func (s *SimpleUI) DisplayLoadError(path m.Path, err error) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: could not load %s: %v\n", path, err)
}

// DisplayLoadSummary prints how many files were loaded from the input directory.
func (s *SimpleUI) DisplayLoadSummary(report m.LoadReport) {
	s.renderTable(
		[]string{"Directory", "Loaded", "Failed", "Ignored"},
		[]string{
			string(report.Dir),
			fmt.Sprintf("%d", report.Loaded),
			fmt.Sprintf("%d", report.Failed),
			fmt.Sprintf("%d", report.Skipped),
		},
	)
}

// DisplayComposeSummary prints how many scatter iterations drew a fragment.
func (s *SimpleUI) DisplayComposeSummary(stats m.ComposeStats) {
	s.renderTable(
		[]string{"Attempted", "Drawn", "Skipped", "Coverage"},
		[]string{
			fmt.Sprintf("%d", stats.Attempted),
			fmt.Sprintf("%d", stats.Drawn),
			fmt.Sprintf("%d", stats.Skipped),
			fmt.Sprintf("%.1f%%", stats.Coverage()*100),
		},
	)
}

// DisplaySaved prints where the collage was written.
func (s *SimpleUI) DisplaySaved(path m.Path) {
	s.printf("Collage image saved as: %s\n", path)
}

func (s *SimpleUI) renderTable(header, row []string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append(row)
	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
