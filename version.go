// Package plugsmith scaffolds new Zsh plugin projects.
package plugsmith

// Version is the current plugsmith release, surfaced by the CLI's
// --version flag.
const Version = "0.1.0"
