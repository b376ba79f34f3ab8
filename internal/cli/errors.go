package cli

import (
	"fmt"

	"github.com/vburojevic/logpar/internal/output"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so scripts always get machine-readable failures.
func outputErrorCommon(globals *Globals, code, message string, hint ...string) error {
	h := ""
	if len(hint) > 0 {
		h = hint[0]
	}
	if globals != nil && globals.Format == "ndjson" {
		if err := output.NewNDJSONWriter(globals.Stdout).WriteError(code, message, h); err != nil {
			globals.Debug("failed to write error: %v", err)
		}
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
		if h != "" {
			fmt.Fprintf(globals.Stderr, "Hint: %s\n", h)
		}
	}
	return &CLIError{Code: code, Message: message, Hint: h}
}
