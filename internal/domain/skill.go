package domain

import "context"

// Skill is a reusable instruction bundle loaded from a skills directory.
// Skills are advertised on the agent card and offered to agents as an
// untagged toolset.
type Skill struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Tags        []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	InputModes  []string          `json:"inputModes,omitempty" yaml:"input_modes,omitempty"`
	OutputModes []string          `json:"outputModes,omitempty" yaml:"output_modes,omitempty"`
	Metadata    map[string]string `json:"-" yaml:"metadata,omitempty"`
	Body        string            `json:"-" yaml:"-"`
	Path        string            `json:"-" yaml:"-"`
}

// SkillProvider loads and manages skills.
type SkillProvider interface {
	Load(ctx context.Context) ([]Skill, error)
	Get(name string) (*Skill, error)
	List() []Skill
}
