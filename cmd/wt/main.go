package main

import (
	"errors"
	"fmt"
	"os"

	"wt/internal/cli"
	"wt/internal/gitutil"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wt:", err)
		if errors.Is(err, gitutil.ErrNotARepository) {
			os.Exit(128)
		}
		os.Exit(1)
	}
}
