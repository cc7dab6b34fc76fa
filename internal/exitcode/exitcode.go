// Package exitcode defines the process exit codes of todolist.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError covers bad arguments, script errors and unknown items or lists.
	UserError = 1

	// AuthError covers missing credentials and an unreadable config.toml.
	AuthError = 2

	// BackendError indicates a Google Tasks, API or network failure.
	BackendError = 3
)
