// Package prompts synthesizes deterministic natural-language prompts from
// validated icon configurations. Fixed text blocks are stored in an embedded
// JSON template file; everything interpolated comes from the config alone,
// so identical input always yields byte-identical output.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates.json
var templateFiles embed.FS

var (
	templates map[string]string
	loadOnce  sync.Once
	loadErr   error
)

// Get retrieves a fixed template block by key.
func Get(key string) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}
	block, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt template %q not found", key)
	}
	return block, nil
}

// MustGet retrieves a template block, panicking if it is missing. The
// template file is embedded, so a miss is a build defect, not a runtime
// condition.
func MustGet(key string) string {
	block, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt template: %v", err))
	}
	return block
}

// Format replaces placeholders in the form {{.Key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func load() {
	data, err := templateFiles.ReadFile("templates.json")
	if err != nil {
		loadErr = fmt.Errorf("failed to read prompt templates: %w", err)
		return
	}
	if err := json.Unmarshal(data, &templates); err != nil {
		loadErr = fmt.Errorf("failed to parse prompt templates: %w", err)
	}
}
