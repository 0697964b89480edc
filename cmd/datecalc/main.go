// datecalc adds or subtracts days or weeks from a date without running the server.
package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	cmd := newRootCmd(os.Stdout, time.Now)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
