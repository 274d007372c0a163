package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Template is the .env.template content listing every variable tmuxbot
// reads. Values are left blank except documented defaults.
const Template = `# TmuxBot environment configuration
# Copy to .env and fill in your API keys.

# Provider credentials (at least one of OPENAI_API_KEY or OPENROUTER_API_KEY
# is required for the bot to dispatch requests)
OPENAI_API_KEY=
OPENROUTER_API_KEY=
ANTHROPIC_API_KEY=

# Environment profile: development, staging, or production
TMUXBOT_ENV=development

# Default model override
TMUXBOT_MODEL=

# Cost controls (USD)
TMUXBOT_DAILY_LIMIT_USD=
TMUXBOT_PER_REQUEST_LIMIT_USD=
TMUXBOT_COST_OPTIMIZATION=

# Route OpenAI-bound agents through OpenRouter
TMUXBOT_USE_OPENROUTER=

# Conversation management
TMUXBOT_MAX_HISTORY=
TMUXBOT_CONVERSATION_TIMEOUT=
`

// WriteTemplate writes the .env.template file. An existing file is only
// replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Create copies the template file to envPath. When templatePath does not
// exist the built-in Template is used instead. An existing .env is only
// overwritten when force is set; the file is written with owner-only
// permissions since it will hold credentials.
func Create(templatePath, envPath string, force bool) error {
	if !force {
		if _, err := os.Stat(envPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", envPath)
		}
	}

	content := []byte(Template)
	if data, err := os.ReadFile(templatePath); err == nil {
		content = data
	}
	if err := os.WriteFile(envPath, content, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", envPath, err)
	}
	return nil
}

// Vars parses a .env file and returns its variables without touching the
// process environment. Used to sanity-check a .env before the bot trusts it.
func Vars(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return vars, nil
}

// Load loads .env into the process environment if it exists. Variables
// already set in the environment win, matching godotenv's default behavior.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}
