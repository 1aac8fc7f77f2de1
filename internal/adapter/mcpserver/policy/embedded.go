package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/kaptinlin/jsonschema"

	"arr-mcp/internal/domain"
)

// Effects.
const (
	Allow = "allow"
	Deny  = "deny"
)

const fileSchema = `{
  "type": "object",
  "required": ["rules"],
  "properties": {
    "version": {"type": "string"},
    "default_effect": {"enum": ["allow", "deny"]},
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "effect", "tools"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "effect": {"enum": ["allow", "deny"]},
          "principals": {"type": "array", "items": {"type": "string"}},
          "tools": {"type": "array", "minItems": 1, "items": {"type": "string"}}
        }
      }
    }
  }
}`

// Rule matches principals and tool name globs.
type Rule struct {
	Name       string   `json:"name"`
	Effect     string   `json:"effect"`
	Principals []string `json:"principals,omitempty"`
	Tools      []string `json:"tools"`
}

type document struct {
	Version       string `json:"version"`
	DefaultEffect string `json:"default_effect"`
	Rules         []Rule `json:"rules"`
}

// Embedded evaluates an ordered rule list. The first matching rule decides;
// calls no rule matches get the default effect, which is deny unless the
// file says otherwise.
type Embedded struct {
	rules         []Rule
	defaultEffect string
}

// LoadFile reads and validates a policy file.
func LoadFile(file string) (*Embedded, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, domain.NewSubSystemError("mcp", "policy.LoadFile", domain.ErrInvalidInput, err.Error())
	}
	return Parse(data)
}

// Parse validates data against the policy file schema and compiles it.
func Parse(data []byte) (*Embedded, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, invalid(fmt.Sprintf("policy is not JSON: %v", err))
	}
	schema, err := jsonschema.NewCompiler().Compile([]byte(fileSchema))
	if err != nil {
		return nil, fmt.Errorf("compile policy schema: %w", err)
	}
	if res := schema.Validate(raw); !res.IsValid() {
		return nil, invalid(fmt.Sprintf("policy does not match schema: %s", res.Error()))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, invalid(err.Error())
	}
	for _, r := range doc.Rules {
		for _, pattern := range append(append([]string{}, r.Tools...), r.Principals...) {
			if _, err := path.Match(pattern, ""); err != nil {
				return nil, invalid(fmt.Sprintf("rule %s: bad pattern %q", r.Name, pattern))
			}
		}
	}
	def := doc.DefaultEffect
	if def == "" {
		def = Deny
	}
	return &Embedded{rules: doc.Rules, defaultEffect: def}, nil
}

func invalid(detail string) error {
	return domain.NewSubSystemError("mcp", "policy.Parse", domain.ErrInvalidInput, detail)
}

// Evaluate implements Evaluator.
func (e *Embedded) Evaluate(_ context.Context, req Request) (Decision, error) {
	for _, r := range e.rules {
		if !matchAny(r.Principals, req.Principal, true) || !matchAny(r.Tools, req.Tool, false) {
			continue
		}
		if r.Effect == Allow {
			return Decision{Allowed: true, Reason: "rule " + r.Name}, nil
		}
		return Decision{Reason: fmt.Sprintf("rule %s denies %s", r.Name, req.Tool)}, nil
	}
	if e.defaultEffect == Allow {
		return Decision{Allowed: true, Reason: "default"}, nil
	}
	return Decision{Reason: fmt.Sprintf("no rule allows %s", req.Tool)}, nil
}

// matchAny reports whether value matches one of patterns. An empty pattern
// list matches everything when emptyMatches is set.
func matchAny(patterns []string, value string, emptyMatches bool) bool {
	if len(patterns) == 0 {
		return emptyMatches
	}
	for _, p := range patterns {
		if ok, _ := path.Match(p, value); ok {
			return true
		}
	}
	return false
}
