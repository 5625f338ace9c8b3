package cli

// Exit codes for CLI commands, following Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: storage failures or anything
	// that doesn't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage: missing flags,
	// invalid combinations, or a required login that isn't active.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found:
	// column, task, or label ID that doesn't exist on the board.
	ExitNotFound = 3

	// ExitValidation indicates input that fails form validation:
	// duplicate column titles, out-of-range ratings, bad colors.
	ExitValidation = 5
)
