// Package quill holds the module-wide version for the Quill CLI.
package quill

// Version is the current Quill release.
const Version = "0.1.0"
