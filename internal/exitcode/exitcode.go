// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, out of range, duplicate title).
	UserError = 1

	// StorageError indicates the configured storage could not be opened.
	StorageError = 2
)
