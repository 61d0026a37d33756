// Package main is the entrypoint of the glitchcollage CLI.
package main

import "github.com/mouse-blink/glitchcollage/cmd"

func main() {
	cmd.Execute()
}
