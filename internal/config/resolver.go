package config

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Resolve merges the given sources into one effective Config. Sources are
// ordered highest priority first: for every key, the value from the first
// source defining it wins and lower sources only fill gaps. Built-in
// defaults for the resolved environment profile sit below all sources.
//
// Maps merge recursively; scalars and sequences are atomic. Resolution is a
// single pure pass: it fails on the first unreadable or malformed source,
// and with *MissingKeyError when an enabled provider ends up without an API
// key after the full merge.
func Resolve(sources []Source) (Config, error) {
	merged := Partial{}
	for i := len(sources) - 1; i >= 0; i-- {
		frag, err := sources[i].Load()
		if err != nil {
			return Config{}, err
		}
		merged = overlay(merged, frag)
	}

	env, _ := merged["environment"].(string)
	merged = overlay(Defaults(env), merged)

	cfg, err := decode(merged)
	if err != nil {
		return Config{}, err
	}
	if err := requireKeys(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load resolves the standard source stack rooted at dir.
func Load(dir string, log *zap.Logger) (Config, error) {
	return Resolve(DefaultSources(dir, log))
}

// overlay returns base with over layered on top: keys in over win, and
// nested maps are merged recursively. Neither input is mutated.
func overlay(base, over Partial) Partial {
	out := make(Partial, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		overMap, overIsMap := asPartial(v)
		baseMap, baseIsMap := asPartial(out[k])
		if overIsMap && baseIsMap {
			out[k] = overlay(baseMap, overMap)
			continue
		}
		out[k] = v
	}
	return out
}

func asPartial(v any) (Partial, bool) {
	switch m := v.(type) {
	case Partial:
		return m, true
	case map[any]any:
		// yaml.v2-style maps from older files; normalize string keys.
		out := make(Partial, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// decode converts the merged fragment into a typed Config by round-tripping
// through the YAML codec, reusing its scalar coercion rules.
func decode(merged Partial) (Config, error) {
	data, err := yaml.Marshal(merged)
	if err != nil {
		return Config{}, fmt.Errorf("encoding merged config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding merged config: %w", err)
	}
	return cfg, nil
}

// requireKeys enforces the hard requirements that make a Config unusable
// rather than merely suspect: every enabled provider needs an API key.
func requireKeys(cfg Config) error {
	for _, name := range KnownProviders() {
		p, ok := cfg.Providers[name]
		if !ok {
			continue
		}
		if p.Enabled && p.APIKey == "" {
			return &MissingKeyError{Key: "providers." + name + ".api_key"}
		}
	}
	return nil
}
