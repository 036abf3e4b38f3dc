package game

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/schollz/closestmatch"

	"github.com/tahcohcat/cluequest/internal/mansion"
	"github.com/tahcohcat/cluequest/internal/suspects"
)

var validate = validator.New()

// Case is a mystery loaded from JSON or YAML: the mansion and who each clue points at.
type Case struct {
	ID       string             `json:"id" yaml:"id" validate:"required"`
	Title    string             `json:"title" yaml:"title" validate:"required"`
	Intro    string             `json:"introduction" yaml:"introduction"`
	Entrance mansion.Layout     `json:"entrance" yaml:"entrance"`
	Evidence []suspects.Binding `json:"evidence" yaml:"evidence" validate:"dive"`
}

func (c *Case) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid case %q: %w", c.ID, err)
	}
	return nil
}

// Build produces the room map and suspect directory for one play-through.
func (c *Case) Build(buckets int) (*mansion.Map, *suspects.Directory, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	m, err := mansion.Build(c.Entrance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build mansion for case %q: %w", c.ID, err)
	}
	return m, suspects.FromBindings(buckets, c.Evidence), nil
}

func closestSuspects(names []string) *closestmatch.ClosestMatch {
	if len(names) == 0 {
		return nil
	}
	return closestmatch.New(names, []int{2})
}
