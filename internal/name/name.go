// Package name validates plugin names.
//
// A plugin name doubles as a Zsh identifier fragment and a file name stem,
// so it must start with an ASCII letter and may only contain ASCII
// letters, digits, hyphens, and underscores.
package name

import "fmt"

// Name is a validated plugin name. Construct one with Parse; the zero
// value is not valid.
type Name struct {
	raw string
}

// ErrorKind classifies why a raw string failed to parse as a Name.
type ErrorKind int

const (
	// Empty means the input had zero characters.
	Empty ErrorKind = iota
	// InvalidInitialChar means the first character was not an ASCII letter.
	InvalidInitialChar
	// InvalidChar means a later character was outside [A-Za-z0-9_-].
	InvalidChar
)

// Error reports an invalid plugin name.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	switch e.Kind {
	case Empty:
		return "plugin name cannot be empty"
	case InvalidInitialChar:
		return "plugin name must start with an ASCII letter"
	case InvalidChar:
		return "plugin name may only contain ASCII letters, digits, '-', or '_'"
	}
	return fmt.Sprintf("invalid plugin name (kind %d)", int(e.Kind))
}

// Parse validates raw and returns it wrapped as a Name, unchanged (case
// and hyphens preserved).
func Parse(raw string) (Name, error) {
	if len(raw) == 0 {
		return Name{}, &Error{Kind: Empty}
	}
	if !isASCIILetter(raw[0]) {
		return Name{}, &Error{Kind: InvalidInitialChar}
	}
	for i := 1; i < len(raw); i++ {
		if !isNameChar(raw[i]) {
			return Name{}, &Error{Kind: InvalidChar}
		}
	}
	return Name{raw: raw}, nil
}

// String returns the name exactly as it was typed.
func (n Name) String() string {
	return n.raw
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
