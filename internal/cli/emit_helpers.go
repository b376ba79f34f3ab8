package cli

import (
	"fmt"

	"github.com/vburojevic/logpar/internal/output"
)

// emitWarning respects format/quiet.
func emitWarning(globals *Globals, emitter output.Emitter, msg string) {
	if globals.Quiet {
		return
	}
	if globals.Format == "ndjson" && emitter != nil {
		if err := emitter.Warning(msg); err != nil {
			globals.Debug("failed to write warning: %v", err)
		}
		return
	}
	fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
}
