package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrExists is returned when the destination file already exists and the
// migration was not forced.
var ErrExists = errors.New("destination already exists")

// File converts one legacy JSON configuration file to YAML. Keys and values
// are carried over verbatim; legacy "_comment"/"_comments" annotation fields
// become YAML header comments. The JSON source is left in place.
func File(jsonPath, yamlPath string, force bool) error {
	if !force {
		if _, err := os.Stat(yamlPath); err == nil {
			return fmt.Errorf("%s: %w", yamlPath, ErrExists)
		}
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", jsonPath, err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parsing %s: %w", jsonPath, err)
	}

	out, err := Render(parsed)
	if err != nil {
		return fmt.Errorf("converting %s: %w", jsonPath, err)
	}
	if err := os.WriteFile(yamlPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", yamlPath, err)
	}
	return nil
}

// Dir converts every *.json file in dir to a sibling *.yaml file, skipping
// files whose YAML counterpart already exists. It returns the number of
// files migrated.
func Dir(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", dir, err)
	}
	migrated := 0
	for _, jsonPath := range matches {
		yamlPath := strings.TrimSuffix(jsonPath, ".json") + ".yaml"
		if err := File(jsonPath, yamlPath, false); err != nil {
			if errors.Is(err, ErrExists) {
				continue
			}
			return migrated, err
		}
		migrated++
	}
	return migrated, nil
}

// Render serializes data as YAML, hoisting "_comment"/"_comments" fields
// into leading "# key: value" comment lines. No values are transformed;
// re-parsing the output yields the same structure minus the annotations.
func Render(data map[string]any) (string, error) {
	var comments []string
	cleaned := extractComments(data, &comments)

	body, err := yaml.Marshal(cleaned)
	if err != nil {
		return "", err
	}
	if len(comments) == 0 {
		return string(body), nil
	}
	return strings.Join(comments, "\n") + "\n\n" + string(body), nil
}

func extractComments(m map[string]any, comments *[]string) map[string]any {
	cleaned := make(map[string]any, len(m))
	for _, key := range []string{"_comment", "_comments"} {
		switch c := m[key].(type) {
		case string:
			*comments = append(*comments, "# "+c)
		case map[string]any:
			for _, k := range sortedKeys(c) {
				*comments = append(*comments, fmt.Sprintf("# %s: %v", k, c[k]))
			}
		}
	}
	for k, v := range m {
		if k == "_comment" || k == "_comments" {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			cleaned[k] = extractComments(nested, comments)
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// sortedKeys keeps comment order deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
