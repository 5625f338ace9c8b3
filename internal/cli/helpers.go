package cli

import "log/slog"

// initError reports a CLI bootstrap failure through the formatter and
// returns the original error for cobra.
func initError(formatter *OutputFormatter, err error) error {
	if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
		logFormatError(fmtErr)
	}
	return err
}

func logFormatError(err error) {
	slog.Error("error formatting output", "error", err)
}

func closeCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
