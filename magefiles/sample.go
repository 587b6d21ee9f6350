//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	sampleIn  = "testdata/sample.c"
	sampleOut = "bin/sample.c"
)

// Sample converts testdata/sample.c with the freshly built binary and prints
// the region report next to the result.
func Sample() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, sampleIn, sampleOut); err != nil {
		return err
	}
	if err := sh.RunV(bin, "regions", sampleIn); err != nil {
		return err
	}
	data, err := os.ReadFile(sampleOut)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sampleOut, err)
	}
	fmt.Printf("\n%s", data)
	return nil
}
