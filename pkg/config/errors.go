package config

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned when a profile name is unknown.
var ErrProfileNotFound = errors.New("config: profile not found")

// Load stages reported by LoadError.
const (
	StageTemplate = "template"
	StageParse    = "parse"
	StageShape    = "shape"
)

// LoadError reports a document that exists but could not be turned into a
// configuration. Missing documents never produce a LoadError.
type LoadError struct {
	Path  string
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "config: load error"
	}
	return fmt.Sprintf("config: load %s: %s: %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func profileNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}
