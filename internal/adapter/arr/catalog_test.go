package arr

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

var placeholder = regexp.MustCompile(`\{([^}]+)\}`)

func TestCatalogWellFormed(t *testing.T) {
	for _, svc := range Services() {
		t.Run(svc.Name, func(t *testing.T) {
			require.NotEmpty(t, svc.Operations)
			known := svc.KnownTags()
			seen := make(map[string]bool, len(svc.Operations))
			used := make(map[domain.Tag]bool)

			for _, op := range svc.Operations {
				assert.False(t, seen[op.Name], "duplicate operation %s", op.Name)
				seen[op.Name] = true

				assert.True(t, hasTag(known, op.Tag), "%s: tag %q not in tag table", op.Name, op.Tag)
				used[op.Tag] = true

				params := make(map[string]domain.Param, len(op.Params))
				for _, p := range op.Params {
					params[p.Name] = p
				}
				for _, m := range placeholder.FindAllStringSubmatch(op.Path, -1) {
					p, ok := params[m[1]]
					if assert.True(t, ok, "%s: no param for {%s}", op.Name, m[1]) {
						assert.Equal(t, domain.InPath, p.In)
					}
				}
			}
			for _, td := range svc.Tags {
				assert.True(t, used[td.Tag], "tag %s has no operations", td.Tag)
				assert.NotEmpty(t, td.Words)
			}
		})
	}
}

func TestServicePortsMatchConfigDefaults(t *testing.T) {
	require.Len(t, Services(), len(config.ServiceNames))
	for _, svc := range Services() {
		assert.Equal(t, config.ServiceNames[svc.Name], svc.DefaultPort, svc.Name)
	}
}

func TestLookup(t *testing.T) {
	svc, err := Lookup("prowlarr")
	require.NoError(t, err)
	assert.Equal(t, "Prowlarr", svc.Title)
	assert.Contains(t, svc.KnownTags(), TagIndexer)

	_, err = Lookup("plex")
	assert.ErrorIs(t, err, domain.ErrUnknownService)
}

func TestCompositesAreCataloged(t *testing.T) {
	for key := range composites {
		var found bool
		for _, svc := range Services() {
			for _, op := range svc.Operations {
				if svc.Name+"/"+op.Name == key {
					found = true
				}
			}
		}
		assert.True(t, found, key)
	}
}

func hasTag(tags []domain.Tag, t domain.Tag) bool {
	for _, k := range tags {
		if k.Equal(t) {
			return true
		}
	}
	return false
}
