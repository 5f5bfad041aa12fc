// Package cucumber reads cucumber JSON reports (as written by godog and
// cucumber-jvm) into test outcomes.
package cucumber

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads and parses a cucumber JSON report file.
func LoadJSON(path string) ([]FeatureJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cucumber report: %w", err)
	}
	features, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse cucumber report %s: %w", path, err)
	}
	return features, nil
}

// ParseJSON parses raw cucumber JSON, tolerating log noise before the payload.
func ParseJSON(data []byte) ([]FeatureJSON, error) {
	data = cleanOutput(data)
	var features []FeatureJSON
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, err
	}
	return features, nil
}

// cleanOutput strips ANSI codes and anything preceding the JSON document.
func cleanOutput(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	stripped := bytes.TrimSpace(stripANSICodes(data))
	if len(stripped) == 0 {
		return stripped
	}
	if stripped[0] == '[' || stripped[0] == '{' {
		return stripped
	}
	for i, b := range stripped {
		if b == '[' || b == '{' {
			return bytes.TrimSpace(stripped[i:])
		}
	}
	return stripped
}

func stripANSICodes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] == 0x1b && i+1 < len(data) && data[i+1] == '[' {
			i += 2
			for i < len(data) {
				ch := data[i]
				i++
				if ch >= 0x40 && ch <= 0x7e {
					break
				}
			}
			continue
		}
		out = append(out, data[i])
		i++
	}
	return out
}
