// Package output provides styled terminal output for the Quill CLI.
//
// # Usage
//
//	output.Success("Wrote cmd/app/main.go")
//	output.Info("Next steps:")
//	output.Step("go fmt ./...")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Redirecting
//
// Messages go to stdout by default. SetWriter sends them elsewhere,
// which keeps rendered file contents on stdout clean and makes the
// package testable.
//
// Styling uses lipgloss and follows the rest of the Firebird Suite:
//
//   - Success: 🪶 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
