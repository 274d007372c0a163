package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// TextWriter outputs a human-readable validation report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}

	ew.printf("TmuxBot Configuration — %s profile\n", report.Environment)
	for _, src := range report.Sources {
		ew.printf("Source: %s\n", src)
	}
	ew.println(strings.Repeat("─", 60))

	if len(report.Issues) == 0 {
		ew.println("Configuration is valid.")
		return ew.err
	}

	ew.printf("Issues: %d (%d errors, %d warnings)\n",
		len(report.Issues), report.Errors(), report.Warnings())
	ew.println(strings.Repeat("─", 60))

	for _, sev := range []string{config.SeverityError, config.SeverityWarning} {
		issues := filterSeverity(report.Issues, sev)
		if len(issues) == 0 {
			continue
		}

		ew.printf("\n%s %s\n", severityIcon(sev), strings.ToUpper(sev))
		ew.println(strings.Repeat("─", 40))

		sort.Slice(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
		for _, issue := range issues {
			ew.printf("  %s\n      %s\n", issue.Field, issue.Message)
		}
	}

	return ew.err
}

func filterSeverity(issues []config.Issue, severity string) []config.Issue {
	var out []config.Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func severityIcon(severity string) string {
	if severity == config.SeverityError {
		return "✗"
	}
	return "⚠"
}

// errWriter accumulates the first write error so callers can print freely
// and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
