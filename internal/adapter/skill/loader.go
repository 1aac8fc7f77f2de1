// Package skill loads SKILL.md instruction bundles and exposes them to
// agents as an untagged toolset.
package skill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"arr-mcp/internal/domain"
)

// FileSkillProvider loads skills from markdown files in a directory.
type FileSkillProvider struct {
	dir    string
	mu     sync.RWMutex
	skills map[string]domain.Skill
}

// NewFileSkillProvider creates a skill provider that reads from the given directory.
func NewFileSkillProvider(dir string) *FileSkillProvider {
	return &FileSkillProvider{
		dir:    dir,
		skills: make(map[string]domain.Skill),
	}
}

// Load reads skill files from the skill directory and parses them.
// It supports two layouts:
//   - Flat: skills/*.md (one file per skill)
//   - Subdirectory: skills/<name>/SKILL.md (one directory per skill)
func (p *FileSkillProvider) Load(_ context.Context) ([]domain.Skill, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("read skill dir %s: %w", p.dir, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var skills []domain.Skill
	for _, entry := range entries {
		var path string
		if entry.IsDir() {
			candidate := filepath.Join(p.dir, entry.Name(), "SKILL.md")
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			path = candidate
		} else if strings.HasSuffix(entry.Name(), ".md") {
			path = filepath.Join(p.dir, entry.Name())
		} else {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat skill file %s: %w", path, err)
		}
		if info.Size() > maxSkillFileSize {
			return nil, fmt.Errorf("skill file %s too large (%d bytes, max %d)", path, info.Size(), maxSkillFileSize)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read skill file %s: %w", path, err)
		}

		skill, err := parseSkillFile(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse skill file %s: %w", path, err)
		}
		skill.Path = path

		if _, exists := p.skills[skill.Name]; exists {
			return nil, fmt.Errorf("%w: skill name %q in %s", domain.ErrDuplicate, skill.Name, path)
		}
		p.skills[skill.Name] = skill
		skills = append(skills, skill)
	}

	return skills, nil
}

// Get returns a skill by name.
func (p *FileSkillProvider) Get(name string) (*domain.Skill, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok := p.skills[name]
	if !ok {
		return nil, fmt.Errorf("%w: skill %s", domain.ErrNotFound, name)
	}
	return &s, nil
}

// List returns all loaded skills sorted by name.
func (p *FileSkillProvider) List() []domain.Skill {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]domain.Skill, 0, len(p.skills))
	for _, s := range p.skills {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b domain.Skill) int { return strings.Compare(a.Name, b.Name) })
	return result
}

// maxSkillFileSize is the maximum allowed skill file size (1 MiB).
const maxSkillFileSize = 1 << 20

type frontmatter struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Tags        []string          `yaml:"tags"`
	InputModes  []string          `yaml:"input_modes"`
	OutputModes []string          `yaml:"output_modes"`
	Metadata    map[string]string `yaml:"metadata"`
}

// parseSkillFile parses a markdown file with YAML frontmatter (--- delimited).
func parseSkillFile(content string) (domain.Skill, error) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "---") {
		return domain.Skill{}, fmt.Errorf("missing frontmatter delimiter")
	}

	parts := strings.SplitN(content[3:], "\n---", 2)
	if len(parts) != 2 {
		return domain.Skill{}, fmt.Errorf("missing closing frontmatter delimiter")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(parts[0]), &fm); err != nil {
		return domain.Skill{}, fmt.Errorf("frontmatter: %w", err)
	}
	if fm.Name == "" {
		return domain.Skill{}, fmt.Errorf("skill missing name in frontmatter")
	}
	if fm.ID == "" {
		fm.ID = fm.Name
	}

	body := strings.TrimSpace(parts[1])
	return domain.Skill{
		ID:          fm.ID,
		Name:        fm.Name,
		Description: fm.Description,
		Tags:        fm.Tags,
		InputModes:  fm.InputModes,
		OutputModes: fm.OutputModes,
		Metadata:    fm.Metadata,
		Body:        body,
	}, nil
}
