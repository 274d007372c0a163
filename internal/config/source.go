package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Partial is a nested configuration fragment produced by a single source.
// Keys mirror the YAML schema; values are scalars, []any, or nested Partials.
type Partial = map[string]any

// Source supplies one configuration fragment. Sources are composed by
// [Resolve] in priority order; a source that has nothing to contribute
// returns an empty Partial, not an error.
type Source interface {
	Name() string
	Load() (Partial, error)
}

// EnvSource reads tmuxbot settings from environment variables. It is the
// highest-priority source. Lookup defaults to os.Getenv so tests can inject
// a fake environment.
type EnvSource struct {
	Lookup func(string) string
	Log    *zap.Logger
}

func (s *EnvSource) Name() string { return "environment" }

func (s *EnvSource) getenv(key string) string {
	if s.Lookup != nil {
		return strings.TrimSpace(s.Lookup(key))
	}
	return strings.TrimSpace(os.Getenv(key))
}

func (s *EnvSource) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

// Load builds a fragment from whatever TMUXBOT_* and provider key variables
// are set. Unparseable numeric or boolean values are skipped with a warning
// rather than failing resolution, matching the loader this replaces.
func (s *EnvSource) Load() (Partial, error) {
	out := Partial{}

	if v := s.getenv("TMUXBOT_ENV"); v != "" {
		out["environment"] = v
	}
	if v := s.getenv("TMUXBOT_MODEL"); v != "" {
		out["default_model"] = v
	}

	s.setBool(out, "TMUXBOT_COST_OPTIMIZATION", "cost_optimization")
	s.setBool(out, "TMUXBOT_USE_OPENROUTER", "use_openrouter")
	s.setPositiveInt(out, "TMUXBOT_MAX_HISTORY", "max_history")
	s.setPositiveInt(out, "TMUXBOT_CONVERSATION_TIMEOUT", "conversation_timeout")

	limits := Partial{}
	s.setFloat(limits, "TMUXBOT_DAILY_LIMIT_USD", "daily_usd")
	s.setFloat(limits, "TMUXBOT_PER_REQUEST_LIMIT_USD", "per_request_usd")
	if len(limits) > 0 {
		out["cost_limits"] = limits
	}

	providers := Partial{}
	for name, envVar := range map[string]string{
		ProviderOpenAI:     "OPENAI_API_KEY",
		ProviderOpenRouter: "OPENROUTER_API_KEY",
		ProviderAnthropic:  "ANTHROPIC_API_KEY",
	} {
		if key := s.getenv(envVar); key != "" {
			providers[name] = Partial{"api_key": key}
		}
	}
	if len(providers) > 0 {
		out["providers"] = providers
	}

	return out, nil
}

func (s *EnvSource) setBool(dst Partial, envVar, key string) {
	v := s.getenv(envVar)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		s.logger().Warn("invalid boolean in environment, ignoring",
			zap.String("var", envVar), zap.String("value", v))
		return
	}
	dst[key] = b
}

func (s *EnvSource) setFloat(dst Partial, envVar, key string) {
	v := s.getenv(envVar)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		s.logger().Warn("invalid number in environment, ignoring",
			zap.String("var", envVar), zap.String("value", v))
		return
	}
	dst[key] = f
}

func (s *EnvSource) setPositiveInt(dst Partial, envVar, key string) {
	v := s.getenv(envVar)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		s.logger().Warn("invalid positive integer in environment, ignoring",
			zap.String("var", envVar), zap.String("value", v))
		return
	}
	dst[key] = n
}

// FileSource reads one YAML file. A missing file contributes nothing; a
// malformed one aborts resolution with a *SyntaxError.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) Load() (Partial, error) {
	return loadYAML(s.Path)
}

func loadYAML(path string) (Partial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Partial{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var out Partial
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, &SyntaxError{Path: path, Err: err}
	}
	if out == nil {
		out = Partial{}
	}
	return out, nil
}

// AgentsFile reads config/agents/agents.yaml. The file may either nest its
// mappings under a top-level "agents" key or list agents at the top level.
type AgentsFile struct {
	Path string
}

func (s *AgentsFile) Name() string { return s.Path }

func (s *AgentsFile) Load() (Partial, error) {
	raw, err := loadYAML(s.Path)
	if err != nil || len(raw) == 0 {
		return raw, err
	}
	if _, ok := raw["agents"]; ok {
		return raw, nil
	}
	return Partial{"agents": raw}, nil
}

// ProviderDir reads config/providers/*.yaml. Each file contributes the
// provider fragment named by its base name (openai.yaml -> providers.openai).
type ProviderDir struct {
	Dir string
}

func (s *ProviderDir) Name() string { return s.Dir }

func (s *ProviderDir) Load() (Partial, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.Dir, err)
	}
	providers := Partial{}
	for _, path := range matches {
		frag, err := loadYAML(path)
		if err != nil {
			return nil, err
		}
		if len(frag) == 0 {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		providers[name] = frag
	}
	if len(providers) == 0 {
		return Partial{}, nil
	}
	return Partial{"providers": providers}, nil
}

// MainFile reads the main configuration file: config.yaml when present,
// otherwise the legacy config.json. The two are never merged key-by-key;
// once config.yaml exists the JSON file is ignored in full.
type MainFile struct {
	YAMLPath string
	JSONPath string
}

func (s *MainFile) Name() string {
	if s.YAMLPath != "" {
		return s.YAMLPath
	}
	return s.JSONPath
}

func (s *MainFile) Load() (Partial, error) {
	if s.YAMLPath != "" {
		if _, err := os.Stat(s.YAMLPath); err == nil {
			return loadYAML(s.YAMLPath)
		}
	}
	if s.JSONPath == "" {
		return Partial{}, nil
	}
	data, err := os.ReadFile(s.JSONPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Partial{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.JSONPath, err)
	}
	var out Partial
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &SyntaxError{Path: s.JSONPath, Err: err}
	}
	stripComments(out)
	return out, nil
}

// stripComments removes the legacy "_comment"/"_comments" annotation keys so
// they never reach the merge. The migration tool turns them into real YAML
// comments instead.
func stripComments(m Partial) {
	delete(m, "_comment")
	delete(m, "_comments")
	for _, v := range m {
		if nested, ok := v.(map[string]any); ok {
			stripComments(nested)
		}
	}
}

// DefaultSources assembles the standard source stack rooted at dir, highest
// priority first: environment variables, the environment-profile file, the
// agents file, per-provider files, then the main config.yaml/config.json.
// Built-in defaults are applied by [Resolve] itself.
//
// The environment profile steering the profile-file path is peeked from
// TMUXBOT_ENV before resolution; the profile recorded in the resolved Config
// still follows normal precedence.
func DefaultSources(dir string, log *zap.Logger) []Source {
	env := &EnvSource{Log: log}
	profile := env.getenv("TMUXBOT_ENV")
	if !ValidEnvironment(profile) {
		profile = EnvDevelopment
	}
	return []Source{
		env,
		&FileSource{Path: filepath.Join(dir, "config", "environments", profile+".yaml")},
		&AgentsFile{Path: filepath.Join(dir, "config", "agents", "agents.yaml")},
		&ProviderDir{Dir: filepath.Join(dir, "config", "providers")},
		&MainFile{
			YAMLPath: filepath.Join(dir, "config.yaml"),
			JSONPath: filepath.Join(dir, "config.json"),
		},
	}
}
