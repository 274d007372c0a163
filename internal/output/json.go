package output

import (
	"encoding/json"
	"io"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// JSONWriter outputs the full validation report as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *Report) error {
	if report.Issues == nil {
		// Emit [] rather than null for empty reports.
		report.Issues = []config.Issue{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
