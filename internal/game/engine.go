package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tahcohcat/cluequest/config"
	"github.com/tahcohcat/cluequest/internal/logger"
)

var ErrCaseNotFound = errors.New("case not found")

// Engine hands out new sessions for the cases it knows about.
type Engine struct {
	config *config.Config
	logger *logger.Log
	cases  map[string]*Case
}

// NewEngine registers the given cases. Later cases with a duplicate id are ignored.
func NewEngine(cfg *config.Config, cases ...*Case) *Engine {
	e := &Engine{
		config: cfg,
		logger: logger.New(),
		cases:  make(map[string]*Case),
	}
	for _, c := range cases {
		if _, dup := e.cases[c.ID]; dup {
			e.logger.Warn(fmt.Sprintf("ignoring duplicate case %q", c.ID))
			continue
		}
		e.cases[c.ID] = c
	}
	return e
}

// Cases lists the registered cases sorted by id.
func (e *Engine) Cases() []*Case {
	out := make([]*Case, 0, len(e.cases))
	for _, c := range e.cases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (e *Engine) Case(id string) (*Case, error) {
	c, ok := e.cases[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, id)
	}
	return c, nil
}

// Start opens a fresh session on the named case.
func (e *Engine) Start(caseID string) (*Session, error) {
	c, err := e.Case(caseID)
	if err != nil {
		return nil, err
	}
	s, err := NewSession(c, e.config.Game.SuspectBuckets)
	if err != nil {
		return nil, fmt.Errorf("failed to start case %q: %w", caseID, err)
	}
	e.logger.Case(c.Title, "new session started")
	return s, nil
}

// LoadCaseFile loads a case from a .json, .yaml or .yml file.
func LoadCaseFile(filename string) (*Case, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}

	var c Case
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		err = json.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("unsupported case file %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode case file %s: %w", filename, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
