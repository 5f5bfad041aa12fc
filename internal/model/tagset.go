package model

// TagSet is an insertion-ordered set of tags.
type TagSet struct {
	order []TestTag
	seen  map[TestTag]struct{}
}

// NewTagSet returns a set holding tags.
func NewTagSet(tags ...TestTag) *TagSet {
	set := &TagSet{}
	set.AddAll(tags...)
	return set
}

// Add inserts tag unless it is empty or already present.
func (s *TagSet) Add(tag TestTag) bool {
	if tag.IsZero() {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[TestTag]struct{})
	}
	if _, ok := s.seen[tag]; ok {
		return false
	}
	s.seen[tag] = struct{}{}
	s.order = append(s.order, tag)
	return true
}

// AddAll inserts each tag in order.
func (s *TagSet) AddAll(tags ...TestTag) {
	for _, tag := range tags {
		s.Add(tag)
	}
}

// Union adds every tag of other.
func (s *TagSet) Union(other *TagSet) {
	if other == nil {
		return
	}
	s.AddAll(other.order...)
}

// Contains reports whether tag is in the set.
func (s *TagSet) Contains(tag TestTag) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[tag]
	return ok
}

// Len returns the number of tags.
func (s *TagSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Slice returns a copy of the tags in insertion order.
func (s *TagSet) Slice() []TestTag {
	if s == nil {
		return nil
	}
	out := make([]TestTag, len(s.order))
	copy(out, s.order)
	return out
}

// OfType returns the tags with the given type.
func (s *TagSet) OfType(tagType string) []TestTag {
	out := make([]TestTag, 0)
	if s == nil {
		return out
	}
	for _, tag := range s.order {
		if tag.Type == tagType {
			out = append(out, tag)
		}
	}
	return out
}
