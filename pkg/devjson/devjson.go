// Package devjson reads, merges and writes devcontainer JSON-with-comments
// documents as generic maps.
package devjson

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/tailscale/hujson"
)

// Load parses a JSONC file into a generic map.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Parse decodes a JSONC document into a generic map. Comments and
// trailing commas are stripped before decoding.
func Parse(raw []byte) (map[string]any, error) {
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jsonc: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(std, &data); err != nil {
		return nil, fmt.Errorf("failed to decode jsonc: %w", err)
	}
	return data, nil
}

// Save writes the document as indented JSON.
func Save(path string, data map[string]any) error {
	out, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Merge deep-merges overlay into base and returns the result. Overlay
// scalar values win, list values append so that mounts or runArgs from
// multiple templates all survive, and postCreateCommand is concatenated
// with " && " so that setup commands from multiple templates all run.
func Merge(base, overlay map[string]any) (map[string]any, error) {
	merged := map[string]any{}
	if err := mergo.Merge(&merged, base, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to copy base config: %w", err)
	}
	if err := mergo.Merge(&merged, overlay, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}

	if cmd := joinCommands(stringValue(base, "postCreateCommand"), stringValue(overlay, "postCreateCommand")); cmd != "" {
		merged["postCreateCommand"] = cmd
	}

	return merged, nil
}

// AppendCommand adds a shell command to the document's postCreateCommand.
func AppendCommand(data map[string]any, cmd string) {
	if joined := joinCommands(stringValue(data, "postCreateCommand"), cmd); joined != "" {
		data["postCreateCommand"] = joined
	}
}

func stringValue(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return strings.TrimSpace(s)
}

func joinCommands(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + " && " + b
	case a != "":
		return a
	default:
		return b
	}
}
