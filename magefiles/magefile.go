//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

const (
	binDir      = "bin"
	coverFile   = "coverage.out"
	geomtoolPkg = "./cmd/geomtool"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles geomtool into bin/.
func Build() error {
	mg.Deps(Vet)
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", binDir+"/geomtool", geomtoolPkg), withStream())
	return err
}

// Vet runs go vet over every package.
func Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Test runs the test suite with the race detector.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Cover writes a coverage profile and prints the per-function summary.
func Cover() error {
	if _, err := executeCmd("go", withArgs("test", "-coverprofile="+coverFile, "./..."), withStream()); err != nil {
		return err
	}
	out, err := executeCmd("go", withArgs("tool", "cover", "-func="+coverFile))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// Clean removes build and coverage output.
func Clean() error {
	if err := os.RemoveAll(binDir); err != nil {
		return err
	}
	return os.RemoveAll(coverFile)
}
