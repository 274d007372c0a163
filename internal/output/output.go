package output

import (
	"fmt"
	"io"
	"os"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// Report is the result of validating a resolved configuration.
type Report struct {
	Environment string         `json:"environment"`
	Sources     []string       `json:"sources,omitempty"`
	Issues      []config.Issue `json:"issues"`
}

// Errors counts issues with error severity.
func (r *Report) Errors() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == config.SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts issues with warning severity.
func (r *Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}
