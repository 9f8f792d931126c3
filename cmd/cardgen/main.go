// Command cardgen renders the sample cards and serves them for preview.
//
//	cardgen list
//	cardgen render calendar-reminder --format html --lang de
//	cardgen schema
//	cardgen serve --addr :8080
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
