package env

import (
	"sort"
	"strings"
)

// Layered resolves properties from a stack of sources; later layers win.
type Layered struct {
	layers []Variables
}

// NewLayered builds a Layered view over layers ordered from lowest to
// highest precedence. Nil layers are skipped.
func NewLayered(layers ...Variables) *Layered {
	kept := make([]Variables, 0, len(layers))
	for _, layer := range layers {
		if layer != nil {
			kept = append(kept, layer)
		}
	}
	return &Layered{layers: kept}
}

// Property returns the value from the highest layer defining key. A
// serenity.* key also matches its thucydides.* spelling.
func (l *Layered) Property(key string) (string, bool) {
	for _, candidate := range aliases(key) {
		for i := len(l.layers) - 1; i >= 0; i-- {
			if value, ok := l.layers[i].Property(candidate); ok {
				return value, true
			}
		}
	}
	return "", false
}

// Keys returns the union of every layer's keys.
func (l *Layered) Keys() []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, layer := range l.layers {
		for _, key := range layer.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func aliases(key string) []string {
	if strings.HasPrefix(key, currentPropertyPrefix) {
		return []string{key, legacyPropertyPrefix + strings.TrimPrefix(key, currentPropertyPrefix)}
	}
	return []string{key}
}
