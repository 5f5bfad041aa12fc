package model

import "strings"

// Narrative is the free text describing a requirement.
type Narrative struct {
	Title      string `json:"title,omitempty"`
	Type       string `json:"type,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	Text       string `json:"text"`
}

// Requirement is a node of the capability/feature/story tree.
type Requirement struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Narrative *Narrative     `json:"narrative,omitempty"`
	Path      string         `json:"path,omitempty"`
	Parent    *Requirement   `json:"-"`
	Children  []*Requirement `json:"children,omitempty"`
}

// AddChild links child under r.
func (r *Requirement) AddChild(child *Requirement) {
	child.Parent = r
	r.Children = append(r.Children, child)
}

// QualifiedName prefixes the name with the parent's name.
func (r *Requirement) QualifiedName() string {
	if r.Parent == nil {
		return r.Name
	}
	return r.Parent.Name + "/" + r.Name
}

// AsTag returns the tag identifying the requirement.
func (r *Requirement) AsTag() TestTag {
	return Tag(r.QualifiedName(), r.Type)
}

// NarrativeText returns the narrative text or "".
func (r *Requirement) NarrativeText() string {
	if r == nil || r.Narrative == nil {
		return ""
	}
	return r.Narrative.Text
}

// Ancestry returns the chain from the root down to r.
func (r *Requirement) Ancestry() []*Requirement {
	chain := make([]*Requirement, 0)
	for node := r; node != nil; node = node.Parent {
		chain = append(chain, node)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Find returns the child whose name matches, ignoring case.
func (r *Requirement) Find(name string) (*Requirement, bool) {
	for _, child := range r.Children {
		if strings.EqualFold(child.Name, name) {
			return child, true
		}
	}
	return nil, false
}

// Walk visits r and its descendants depth first.
func (r *Requirement) Walk(visit func(node *Requirement, depth int)) {
	r.walk(visit, 0)
}

func (r *Requirement) walk(visit func(node *Requirement, depth int), depth int) {
	visit(r, depth)
	for _, child := range r.Children {
		child.walk(visit, depth+1)
	}
}
