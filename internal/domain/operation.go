package domain

import (
	"strings"
	"unicode"
)

// Tag is a domain label partitioning operations into specialist capability sets.
// Comparison is case-insensitive: "Indexer" and "indexer" are the same tag.
type Tag string

// Equal reports whether t and other name the same tag.
func (t Tag) Equal(other Tag) bool { return strings.EqualFold(string(t), string(other)) }

// Lower returns the lower-case form used in tool and env names.
func (t Tag) Lower() string { return strings.ToLower(string(t)) }

// Words splits a PascalCase tag into lower-case words ("DownloadClient" -> "download client").
func (t Tag) Words() string {
	var b strings.Builder
	for i, r := range string(t) {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// TagDef is one row of a service's tag table.
type TagDef struct {
	Tag Tag `json:"tag" yaml:"tag"`
	// Words describes the managed resources in the default prompt.
	// Derived from Tag when empty.
	Words string `json:"words,omitempty" yaml:"words,omitempty"`
	// Prompt overrides the default specialist prompt when set.
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
}

// ParamLocation says where an operation parameter goes in the HTTP request.
type ParamLocation string

const (
	InPath  ParamLocation = "path"
	InQuery ParamLocation = "query"
	// InBody params become one field of the JSON request body.
	InBody ParamLocation = "body"
	// InPayload params are sent as the entire JSON request body.
	InPayload ParamLocation = "payload"
)

// Param is one entry of an operation's parameter schema.
type Param struct {
	Name string
	// Key is the wire name in the query string or body; Name when empty.
	Key         string
	Type        string // JSON schema type: string, integer, number, boolean, object, array
	Required    bool
	Default     any
	In          ParamLocation
	Description string
	// Hidden params are injected from configuration and never advertised.
	Hidden bool
}

// Operation is one callable unit wrapping a single backend REST endpoint.
// Operations are declared statically and never mutated after registration.
type Operation struct {
	Name        string
	Tag         Tag
	Description string
	Method      string
	Path        string
	Params      []Param
}

// WireName returns the name used on the wire.
func (p Param) WireName() string {
	if p.Key != "" {
		return p.Key
	}
	return p.Name
}

// VisibleParams returns the params advertised to callers, in declaration order.
func (o Operation) VisibleParams() []Param {
	out := make([]Param, 0, len(o.Params))
	for _, p := range o.Params {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	return out
}

// Service describes one wrapped backend: its tag table and operation catalog.
type Service struct {
	Name        string // lower-case id, e.g. "prowlarr"
	Title       string // display name, e.g. "Prowlarr"
	Description string
	DefaultPort int
	Tags        []TagDef
	Operations  []Operation
}

// KnownTags returns the service's tag table as plain tags, in table order.
func (s Service) KnownTags() []Tag {
	out := make([]Tag, len(s.Tags))
	for i, td := range s.Tags {
		out[i] = td.Tag
	}
	return out
}

// EnvPrefix returns the upper-case prefix of the service's connection env vars.
func (s Service) EnvPrefix() string { return strings.ToUpper(s.Name) }

// ConnectionParams returns the hidden parameters injected into every call to s.
func (s Service) ConnectionParams() []Param {
	return []Param{
		{Name: s.Name + "_base_url", Type: "string", Hidden: true, Description: "Base URL of the " + s.Title + " instance"},
		{Name: s.Name + "_api_key", Type: "string", Hidden: true, Description: "API key"},
		{Name: s.Name + "_verify", Type: "boolean", Hidden: true, Description: "Verify TLS certificates"},
	}
}
