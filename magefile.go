//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binDir = "bin"

// Build builds the tapem binary
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	return sh.Run("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binDir, "tapem"), "./cmd/tapem")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs all quality assurance checks
func QA() error {
	mg.SerialDeps(Lint, Test)
	return nil
}

// Install installs tapem into GOBIN
func Install() error {
	return sh.Run("go", "install", "-ldflags", ldflags(), "./cmd/tapem")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binDir)
}

func ldflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date, _ := sh.Output("date", "-u", "+%Y-%m-%dT%H:%M:%SZ")
	return fmt.Sprintf(
		"-X github.com/dkoosis/tapem/internal/version.Version=%s"+
			" -X github.com/dkoosis/tapem/internal/version.CommitHash=%s"+
			" -X github.com/dkoosis/tapem/internal/version.BuildDate=%s",
		version, commit, date)
}
