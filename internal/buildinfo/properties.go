package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Properties is a flat set of driver capabilities.
type Properties map[string]string

// Keys returns the property names in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Property is a labelled build property.
type Property struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BuildProperties describes the environment a test run executed in.
type BuildProperties struct {
	General            []Property            `json:"general"`
	Drivers            []string              `json:"drivers"`
	DriverCapabilities map[string]Properties `json:"driver_capabilities"`
}

// Get returns the value recorded for label.
func (b BuildProperties) Get(label string) (string, bool) {
	for _, property := range b.General {
		if property.Label == label {
			return property.Value, true
		}
	}
	return "", false
}

// GeneralMap returns the general properties keyed by label.
func (b BuildProperties) GeneralMap() map[string]string {
	out := make(map[string]string, len(b.General))
	for _, property := range b.General {
		out[property.Label] = property.Value
	}
	return out
}

// BuildInfoFileName is written to the report output directory.
const BuildInfoFileName = "build-info.json"

// Write stores the properties as JSON in dir and returns the file path.
func (b BuildProperties) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode build info: %w", err)
	}
	path := filepath.Join(dir, BuildInfoFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write build info: %w", err)
	}
	return path, nil
}

// Read loads properties previously written with Write.
func Read(path string) (BuildProperties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildProperties{}, fmt.Errorf("read build info: %w", err)
	}
	var props BuildProperties
	if err := json.Unmarshal(data, &props); err != nil {
		return BuildProperties{}, fmt.Errorf("parse build info: %w", err)
	}
	return props, nil
}

// orderedProperties keeps first-insertion order; a repeated label
// overwrites its value in place.
type orderedProperties struct {
	items []Property
	index map[string]int
}

func newOrderedProperties() *orderedProperties {
	return &orderedProperties{index: make(map[string]int)}
}

func (o *orderedProperties) put(label, value string) {
	if i, ok := o.index[label]; ok {
		o.items[i].Value = value
		return
	}
	o.index[label] = len(o.items)
	o.items = append(o.items, Property{Label: label, Value: value})
}
