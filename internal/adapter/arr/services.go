package arr

import (
	"fmt"
	"slices"

	"arr-mcp/internal/domain"
)

// Canonical tags shared by the catalogs. Each service uses a subset.
const (
	TagCatalog    domain.Tag = "Catalog"
	TagConfig     domain.Tag = "Config"
	TagDownloads  domain.Tag = "Downloads"
	TagHistory    domain.Tag = "History"
	TagIndexer    domain.Tag = "Indexer"
	TagOperations domain.Tag = "Operations"
	TagProfiles   domain.Tag = "Profiles"
	TagQueue      domain.Tag = "Queue"
	TagSearch     domain.Tag = "Search"
	TagSystem     domain.Tag = "System"
)

// tagWords is the resource phrase of each canonical tag in default prompts.
var tagWords = map[domain.Tag]string{
	TagCatalog:    "library catalog",
	TagConfig:     "configuration",
	TagDownloads:  "download client and release",
	TagHistory:    "history",
	TagIndexer:    "indexer",
	TagOperations: "command and task",
	TagProfiles:   "quality and metadata profile",
	TagQueue:      "queue",
	TagSearch:     "search",
	TagSystem:     "system",
}

var canonicalTags = []domain.Tag{
	TagCatalog, TagConfig, TagDownloads, TagHistory, TagIndexer,
	TagOperations, TagProfiles, TagQueue, TagSearch, TagSystem,
}

func tagTable(tags ...domain.Tag) []domain.TagDef {
	out := make([]domain.TagDef, len(tags))
	for i, t := range tags {
		out[i] = domain.TagDef{Tag: t, Words: tagWords[t]}
	}
	return out
}

var pvrTags = tagTable(TagCatalog, TagConfig, TagDownloads, TagHistory, TagIndexer,
	TagOperations, TagProfiles, TagQueue, TagSystem)

var services = []domain.Service{
	{
		Name:        "bazarr",
		Title:       "Bazarr",
		Description: "Agent for managing subtitles on Bazarr.",
		DefaultPort: 6767,
		Tags:        tagTable(TagCatalog, TagHistory, TagSystem),
		Operations:  bazarrOperations,
	},
	{
		Name:        "prowlarr",
		Title:       "Prowlarr",
		Description: "A multi-agent system for managing Prowlarr resources via delegated specialists.",
		DefaultPort: 9696,
		Tags: tagTable(TagConfig, TagDownloads, TagHistory, TagIndexer,
			TagOperations, TagProfiles, TagSearch, TagSystem),
		Operations: prowlarrOperations,
	},
	{
		Name:        "sonarr",
		Title:       "Sonarr",
		Description: "A multi-agent system for managing Sonarr resources via delegated specialists.",
		DefaultPort: 8989,
		Tags:        pvrTags,
		Operations:  sonarrOperations,
	},
	{
		Name:        "radarr",
		Title:       "Radarr",
		Description: "A multi-agent system for managing Radarr resources via delegated specialists.",
		DefaultPort: 7878,
		Tags:        pvrTags,
		Operations:  radarrOperations,
	},
	{
		Name:        "lidarr",
		Title:       "Lidarr",
		Description: "A multi-agent system for managing Lidarr resources via delegated specialists.",
		DefaultPort: 8686,
		Tags:        tagTable(canonicalTags...),
		Operations:  lidarrOperations,
	},
	{
		Name:        "chaptarr",
		Title:       "Chaptarr",
		Description: "A multi-agent system for managing Chaptarr resources via delegated specialists.",
		DefaultPort: 8789,
		Tags:        tagTable(canonicalTags...),
		Operations:  chaptarrOperations,
	},
	{
		Name:        "seerr",
		Title:       "Seerr",
		Description: "Agent for managing media requests and discovery on Seerr.",
		DefaultPort: 5055,
		Tags:        tagTable(TagCatalog, TagSearch, TagSystem),
		Operations:  seerrOperations,
	},
}

// Services returns every wrapped backend in display order.
func Services() []domain.Service { return slices.Clone(services) }

// Lookup returns the service named name.
func Lookup(name string) (domain.Service, error) {
	for _, s := range services {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Service{}, fmt.Errorf("%w: %q", domain.ErrUnknownService, name)
}

// Names returns the service names in display order.
func Names() []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Name
	}
	return out
}

// Catalog table helpers. They keep the generated-looking tables in
// catalog_*.go to one line per operation.

const (
	tInt  = "integer"
	tStr  = "string"
	tBool = "boolean"
	tNum  = "number"
	tObj  = "object"
	tArr  = "array"
)

func op(name string, tag domain.Tag, method, path, description string, params ...domain.Param) domain.Operation {
	return domain.Operation{
		Name:        name,
		Tag:         tag,
		Description: description,
		Method:      method,
		Path:        path,
		Params:      params,
	}
}

func inPath(name, typ string) domain.Param {
	return domain.Param{Name: name, Type: typ, In: domain.InPath, Required: true}
}

func inQuery(name, typ string) domain.Param {
	return domain.Param{Name: name, Type: typ, In: domain.InQuery}
}

func inQueryAs(name, key, typ string) domain.Param {
	return domain.Param{Name: name, Key: key, Type: typ, In: domain.InQuery}
}

func inBody(name, typ string) domain.Param {
	return domain.Param{Name: name, Type: typ, In: domain.InBody}
}

func inBodyAs(name, key, typ string) domain.Param {
	return domain.Param{Name: name, Key: key, Type: typ, In: domain.InBody}
}

func inPayload(name string) domain.Param {
	return domain.Param{Name: name, Type: tObj, In: domain.InPayload, Description: "Request body"}
}

// arg declares a param consumed by a composite handler instead of the request mapper.
func arg(name, typ string) domain.Param {
	return domain.Param{Name: name, Type: typ}
}

func required(p domain.Param) domain.Param {
	p.Required = true
	return p
}

func withDefault(p domain.Param, v any) domain.Param {
	p.Default = v
	return p
}

func describe(p domain.Param, d string) domain.Param {
	p.Description = d
	return p
}
