package common

import (
	"encoding/json"
	"io"
	"os"
)

// ExitFailure is the process status for a failed tool action.
const ExitFailure = 3

type CIResult struct {
	OK      bool     `json:"ok"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func WriteCIResult(w io.Writer, title string, details []string, err error) error {
	result := CIResult{OK: err == nil, Title: title, Details: details}
	if err != nil {
		result.Error = err.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// Finish prints the CI result when requested and exits non-zero on failure.
func Finish(ci bool, title string, details []string, err error) {
	if ci {
		_ = WriteCIResult(os.Stdout, title, details, err)
	}
	if err != nil {
		os.Exit(ExitFailure)
	}
}
