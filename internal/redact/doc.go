// Package redact masks provider credentials before configuration is shown
// to a human or written to a log.
//
// Keys keep their first six and last four characters (enough to recognize
// which key is loaded without exposing it); anything eight characters or
// shorter is replaced entirely.
package redact
