// Package envfile manages the .env file tmuxbot reads credentials from:
// generating .env.template, creating .env from a template, and loading an
// existing .env into the process environment at startup.
package envfile
