// Package curriculum loads qualification definitions and weekly schedule
// templates from YAML.
package curriculum

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

type curriculumFile struct {
	ID                   string       `yaml:"id" validate:"required"`
	Name                 string       `yaml:"name" validate:"required"`
	QualificationCredits int          `yaml:"qualification_credits" validate:"gte=0"`
	RequiredCredits      int          `yaml:"required_credits" validate:"gte=0"`
	Modules              []moduleFile `yaml:"modules" validate:"required,min=1,dive"`
}

type moduleFile struct {
	Code          string     `yaml:"code" validate:"required"`
	Name          string     `yaml:"name" validate:"required"`
	Credits       int        `yaml:"credits" validate:"gt=0"`
	UnitStandards []unitFile `yaml:"unit_standards" validate:"required,min=1,dive"`
}

type unitFile struct {
	ID      string `yaml:"id" validate:"required"`
	Title   string `yaml:"title"`
	Credits int    `yaml:"credits" validate:"gt=0"`
}

// Parse decodes and validates a curriculum definition. Both the file schema
// and the domain invariants (module credits equal the sum of their unit
// standards, unique unit standard IDs) are enforced.
func Parse(data []byte) (*domain.Curriculum, error) {
	var f curriculumFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding curriculum: %w", err)
	}
	if err := validateFile(&f); err != nil {
		return nil, err
	}

	c := &domain.Curriculum{
		ID:                   f.ID,
		Name:                 f.Name,
		QualificationCredits: f.QualificationCredits,
		RequiredCredits:      f.RequiredCredits,
	}
	for _, m := range f.Modules {
		mod := domain.Module{Code: m.Code, Name: m.Name, Credits: m.Credits}
		for _, us := range m.UnitStandards {
			mod.UnitStandards = append(mod.UnitStandards, domain.UnitStandard{
				ID:      us.ID,
				Title:   us.Title,
				Credits: us.Credits,
			})
		}
		c.Modules = append(c.Modules, mod)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a curriculum definition from path.
func Load(path string) (*domain.Curriculum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curriculum %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("curriculum %s: %w", path, err)
	}
	return c, nil
}

// Default returns a fresh copy of the embedded qualification.
func Default() *domain.Curriculum {
	c, err := Parse(defaultCurriculum)
	if err != nil {
		panic(fmt.Sprintf("embedded curriculum is invalid: %v", err))
	}
	return c
}

// Source serves the process-wide curriculum. The definition is loaded once
// and treated as read-only by every consumer.
type Source struct {
	curriculum *domain.Curriculum
}

// NewSource loads the curriculum at path, or the embedded default when path
// is empty.
func NewSource(path string) (*Source, error) {
	if path == "" {
		return &Source{curriculum: Default()}, nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Source{curriculum: c}, nil
}

// StaticSource wraps an already-built curriculum.
func StaticSource(c *domain.Curriculum) *Source {
	return &Source{curriculum: c}
}

func (s *Source) Current() *domain.Curriculum {
	return s.curriculum
}
