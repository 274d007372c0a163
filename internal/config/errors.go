package config

import "fmt"

// MissingKeyError reports a required key that is absent after merging every
// source and has no built-in default.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key: %s", e.Key)
}

// SyntaxError reports a configuration file that could not be parsed.
type SyntaxError struct {
	Path string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Issue kinds reported by [Validate].
const (
	IssueMissingKey        = "missing_key"
	IssueInvalidValue      = "invalid_value"
	IssueDanglingReference = "dangling_reference"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single semantic problem found by [Validate]. Issues are
// diagnostics, not errors: validation always runs to completion and reports
// everything it finds.
type Issue struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Field, i.Message)
}
