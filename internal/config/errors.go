package config

import (
	"errors"
	"fmt"

	"github.com/dshills/tablegrid/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrSettingNotFound indicates the setting path doesn't exist.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidStyle indicates a theme entry that is not a valid style.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidPath indicates an invalid setting path format.
	ErrInvalidPath = errors.New("invalid setting path")
)

// ParseError is a settings file that could not be parsed.
type ParseError = loader.ParseError

// TypeError is returned when a setting has the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is matches ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// StyleError is a theme entry that could not be parsed.
type StyleError struct {
	Path string
	Err  error
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("theme %s: %v", e.Path, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidStyle.
func (e *StyleError) Is(target error) bool {
	return target == ErrInvalidStyle
}
