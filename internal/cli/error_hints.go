package cli

import (
	"errors"
	"io/fs"
	"regexp/syntax"

	"github.com/vburojevic/logpar/internal/config"
	"github.com/vburojevic/logpar/internal/engine"
)

func hintForRead(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "Check the path; generate sample logs with `logpar generate`"
	}
	if errors.Is(err, fs.ErrPermission) {
		return "The file is not readable by the current user"
	}
	return ""
}

func hintForConfig(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, config.ErrInvalidWorkers) || errors.Is(err, engine.ErrInvalidWorkers) {
		return "Pass --workers with a value of at least 1 (default 4)"
	}
	if errors.Is(err, config.ErrInvalidTopN) {
		return "Pass --top 0 to hide ranked sections, or a positive count"
	}
	return "Run `logpar config show` to see the effective configuration"
}

func hintForFilter(err error) string {
	if err == nil {
		return ""
	}
	var se *syntax.Error
	if errors.As(err, &se) {
		return "Patterns are Go regular expressions; quote them in the shell. Example: --pattern 'ERROR|WARNING' --exclude '^#'"
	}
	return "Valid keywords are INFO, ERROR, WARNING and DEBUG"
}

// errorCode maps read failures to stable machine codes
func errorCode(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "FILE_NOT_FOUND"
	}
	return "READ_ERROR"
}
