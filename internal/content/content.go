// Package content loads the portfolio content document.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/termfolio/internal/model"
)

//go:embed default.yaml
var defaultDocument []byte

// Content is everything the portfolio renders.
type Content struct {
	Profile        model.Profile         `yaml:"profile" json:"profile"`
	Script         []string              `yaml:"script" json:"script"`
	Skills         []model.Skill         `yaml:"skills" json:"skills"`
	TechStack      []string              `yaml:"tech_stack" json:"tech_stack"`
	Projects       []model.ProjectRecord `yaml:"projects" json:"projects"`
	Experience     []model.Experience    `yaml:"experience" json:"experience"`
	Education      []model.Education     `yaml:"education" json:"education"`
	Certifications []model.Certification `yaml:"certifications" json:"certifications"`
}

// Default returns the embedded portfolio content.
func Default() (Content, error) {
	return Parse(defaultDocument)
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Content
	if err := dec.Decode(&c); err != nil {
		return Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Validate checks the invariants the views rely on.
func (c Content) Validate() error {
	if len(c.Script) == 0 {
		return fmt.Errorf("content script must not be empty")
	}
	for i, line := range c.Script {
		if line == "" {
			return fmt.Errorf("content script line %d is empty", i+1)
		}
	}
	for _, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project title must not be empty")
		}
		if !p.Status.Valid() {
			return fmt.Errorf("project %q has unknown status %q", p.Title, p.Status)
		}
		if p.Category == "" || p.Category == model.CategoryAll {
			return fmt.Errorf("project %q has invalid category %q", p.Title, p.Category)
		}
	}
	return nil
}

// Categories returns "All" followed by each project category in first-seen order.
func (c Content) Categories() []string {
	out := []string{model.CategoryAll}
	seen := map[string]struct{}{}
	for _, p := range c.Projects {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
