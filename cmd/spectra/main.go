// Command spectra is the command-line entry point for the Spectra
// language frontend.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
