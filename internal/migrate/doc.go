// Package migrate converts legacy JSON configuration files to YAML.
//
// The conversion is a pure re-serialization: every key and value is carried
// over verbatim, legacy "_comment"/"_comments" annotation fields become YAML
// header comments, and the JSON source file is never deleted. Resolving the
// migrated file yields the same effective configuration as resolving the
// original.
package migrate
