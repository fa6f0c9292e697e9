package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pybin/cmd/pybin"
	"github.com/arthur-debert/pybin/pkg/style"
)

func main() {
	rootCmd := pybin.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewTerminalRenderer()
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
