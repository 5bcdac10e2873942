// Package prompt provides simple interactive prompts.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt (defaults to no)
//   - [TextInput]: Single-line text input
//   - [Select]: Single selection from a filterable list
//
// Prompts render to stderr and refuse to run when stdin is not a terminal
// ([ErrNotTerminal]). [Terminal] bundles them behind one value for the
// interactive flows.
package prompt
