// Package cmd provides the root command and CLI setup for glitchcollage.
package cmd

import (
	"os"

	"github.com/mouse-blink/glitchcollage/internal/adapter"
	"github.com/mouse-blink/glitchcollage/internal/controller"
	"github.com/mouse-blink/glitchcollage/internal/domain"
	m "github.com/mouse-blink/glitchcollage/internal/model"
	"github.com/spf13/cobra"
)

var imageFSAdapter adapter.ImageFSAdapter
var loader domain.Loader
var compositor domain.Compositor
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	imageFSAdapter = adapter.NewLocalImageFSAdapter()
	loader = domain.NewLoader(imageFSAdapter, ui)
	compositor = domain.NewCompositor(adapter.NewRandomSource())
	workflow = domain.NewWorkflow(
		imageFSAdapter,
		ui,
		loader,
		compositor,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glitchcollage",
		Short: "Scatter random image fragments into a glitch collage",
		Long: `Glitchcollage loads every PNG file in ./small-images-data, cuts 2000
random 32x32 fragments from them and pastes each one at a random position
on a black 1024x1024 canvas. Later fragments overwrite earlier ones.

The result is written to ./glitch_collage.png.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Run(m.DefaultCollageConfig())
		},
	}

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
