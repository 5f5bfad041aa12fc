package model

import (
	"fmt"
	"strings"
)

// Standard tag types.
const (
	TypeCapability = "capability"
	TypeFeature    = "feature"
	TypeStory      = "story"
	TypePillar     = "pillar"
	TypeTag        = "tag"
)

// TestTag labels a test outcome. Two tags are equal when both name and type match.
type TestTag struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Tag builds a tag from a name and type.
func Tag(name, tagType string) TestTag {
	return TestTag{Name: strings.TrimSpace(name), Type: strings.TrimSpace(tagType)}
}

// ParseTag reads the shorthand "type:name" form. A value without a type
// becomes a plain "tag" tag. A leading "@" is ignored.
func ParseTag(value string) TestTag {
	value = strings.TrimPrefix(strings.TrimSpace(value), "@")
	tagType, name, ok := strings.Cut(value, ":")
	if !ok {
		return Tag(value, TypeTag)
	}
	if strings.TrimSpace(tagType) == "" {
		return Tag(name, TypeTag)
	}
	return Tag(name, tagType)
}

// String renders the shorthand form.
func (t TestTag) String() string {
	return fmt.Sprintf("%s:%s", t.Type, t.Name)
}

// IsZero reports whether the tag has no name.
func (t TestTag) IsZero() bool {
	return t.Name == ""
}
