package main

import (
	"fmt"
	"os"
)

func main() {
	c := &cli{}
	err := newRootCmd(c).Execute()
	if closeErr := c.close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
