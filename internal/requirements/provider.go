// Package requirements derives capability, feature and story requirements
// from the layout of story and feature files.
package requirements

import "bddreport/internal/inflect"

// Provider carries the configuration shared by requirement tag providers.
type Provider struct {
	config Configuration
}

// NewProvider wraps a configuration.
func NewProvider(config Configuration) Provider {
	if len(config.Types) == 0 {
		config.Types = append([]string(nil), DefaultTypes...)
	}
	return Provider{config: config}
}

// Configuration returns the provider configuration.
func (p Provider) Configuration() Configuration {
	return p.config
}

// Types returns the configured requirement type hierarchy.
func (p Provider) Types() []string {
	return p.config.Types
}

// DefaultType maps a nesting level of a tree maxDepth levels deep onto the
// type hierarchy. The deepest level always gets the last type:
//
//	flat (maxDepth 0), [cap, feature]        level 0 -> feature
//	flat (maxDepth 0), [cap, feature, story] level 0 -> story
//	maxDepth 1,        [cap, feature, story] level 0 -> feature, 1 -> story
//	maxDepth 2,        [cap, feature, story] level 0 -> cap, 1 -> feature, 2 -> story
//
// Trees deeper than the hierarchy reuse the first type for the extra top levels.
func (p Provider) DefaultType(level, maxDepth int) string {
	types := p.config.Types
	last := len(types) - 1
	relative := last - maxDepth + level
	switch {
	case relative > last:
		return types[last]
	case relative < 0:
		return types[0]
	default:
		return types[relative]
	}
}

// DefaultTypeAt assumes a tree as deep as the type hierarchy.
func (p Provider) DefaultTypeAt(level int) string {
	return p.DefaultType(level, len(p.config.Types)-1)
}

// HumanReadable renders a directory or file name as a requirement name.
func (p Provider) HumanReadable(name string) string {
	return inflect.HumanReadable(name)
}
