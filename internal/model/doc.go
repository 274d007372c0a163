// Package model selects the provider and model an agent should use, applying
// the use_openrouter routing flag and cost-optimization model substitution
// from the resolved configuration.
package model
