package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/pomotree/internal/cli"
	"github.com/atomicstack/pomotree/internal/config"
	"github.com/atomicstack/pomotree/internal/logging"
)

func main() {
	err := cli.Execute()
	code := exitCode(os.Stderr, err)
	logging.Close()
	os.Exit(code)
}

// exitCode reports err on w and maps it to the process exit status:
// 2 for configuration problems, 1 for everything else.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(w, "Configuration error: %v\n", cfgErr)
		return 2
	}
	logging.Error(err)
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
