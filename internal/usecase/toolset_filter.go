package usecase

import (
	"log/slog"

	"arr-mcp/internal/domain"
)

// FilterToolsets narrows every filterable source to the tools tagged tag.
// Opaque sources are left out. The result keeps the order of toolsets and
// may be empty.
func FilterToolsets(toolsets []domain.Toolset, tag domain.Tag, logger *slog.Logger) []domain.Toolset {
	out := make([]domain.Toolset, 0, len(toolsets))
	for _, ts := range toolsets {
		view, ok := ts.FilterByTag(tag)
		if !ok {
			if logger != nil {
				logger.Debug("skipping opaque toolset", "toolset", ts.Name(), "tag", string(tag))
			}
			continue
		}
		out = append(out, view)
	}
	return out
}

// OpaqueCount returns how many of toolsets cannot be filtered by tag.
func OpaqueCount(toolsets []domain.Toolset) int {
	n := 0
	for _, ts := range toolsets {
		if _, ok := ts.FilterByTag(""); !ok {
			n++
		}
	}
	return n
}
