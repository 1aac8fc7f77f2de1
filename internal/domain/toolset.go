package domain

import "context"

// Toolset is an ordered collection of tools from one source.
//
// Every source states explicitly whether it can be narrowed by tag:
// FilterByTag returns the filtered view and true, or nil and false for
// opaque sources whose tools carry no tag information.
type Toolset interface {
	Name() string
	Tools(ctx context.Context) ([]Tool, error)
	FilterByTag(tag Tag) (Toolset, bool)
}

// OpaqueToolset can be embedded by toolsets that cannot be filtered.
type OpaqueToolset struct{}

// FilterByTag implements Toolset. Opaque toolsets are never filterable.
func (OpaqueToolset) FilterByTag(Tag) (Toolset, bool) { return nil, false }

// ToolTags returns the tags of t, or nil when t is untagged.
func ToolTags(t Tool) []Tag {
	if tt, ok := t.(TaggedTool); ok {
		return tt.Tags()
	}
	return nil
}

// HasTag reports whether tags contains tag.
func HasTag(tags []Tag, tag Tag) bool {
	for _, t := range tags {
		if t.Equal(tag) {
			return true
		}
	}
	return false
}
