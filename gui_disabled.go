//go:build !gui

package main

import (
	"fmt"
	"os"
)

func initGUI(_ config) {
	fmt.Fprintln(os.Stderr, "freetimer: built without GUI support (rebuild with -tags gui)")
	os.Exit(1)
}
