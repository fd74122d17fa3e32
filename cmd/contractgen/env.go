package main

import (
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/go-rod/rod/lib/launcher"

	contractgen "github.com/alnah/go-contractgen"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// Runner executes external converters. Nil uses the real processes.
	Runner contractgen.CommandRunner

	// Environ lists environment variables in os.Environ form.
	// Nil means no CONTRACTGEN_* overrides.
	Environ func() []string

	// LookPath and LookChrome locate tools for the doctor command.
	LookPath   func(file string) (string, error)
	LookChrome func() (string, bool)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Runner:     &contractgen.ExecRunner{},
		Environ:    os.Environ,
		LookPath:   exec.LookPath,
		LookChrome: launcher.LookPath,
	}
}
