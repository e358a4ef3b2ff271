package main

import (
	"fmt"
	"os"

	"github.com/tracksort/tracksort/pkg/style"
)

func main() {
	if err := Execute(); err != nil {
		errStyle := style.Get("Error")
		fmt.Fprintln(os.Stderr, errStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
