// Package output provides styled terminal output for the rgear CLI.
//
// # Usage
//
//	output.Info("Generating app.sh...")
//	output.Success("Complete.")
//	output.Error("The file, app.sh, already exists.")
//	output.Detail("Please check and try again.")
//
// # Styling
//
// When the configured writer is a terminal, messages are styled with
// lipgloss and prefixed with an emoji:
//
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
//
// When the writer is a pipe, file or buffer the messages are printed as
// plain text, so scripted callers see stable output.
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Resolved port: 8888")
//	output.Block("app.sh", body)
package output
