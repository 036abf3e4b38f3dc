package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/logger"
)

// Load reads every case file in dirPath. Files that fail to load are skipped
// with a warning. A missing directory yields no cases.
func Load(dirPath string) ([]*game.Case, error) {
	log := logger.New()

	files, err := os.ReadDir(dirPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug(fmt.Sprintf("no case directory at %s", dirPath))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cases directory %s: %w", dirPath, err)
	}

	// Use a map to collect unique cases, keyed by id
	byID := make(map[string]*game.Case)

	for _, file := range files {
		if file.IsDir() || !isCaseFile(file.Name()) {
			continue
		}

		filePath := filepath.Join(dirPath, file.Name())
		c, err := game.LoadCaseFile(filePath)
		if err != nil {
			log.WithError(err).Warn(fmt.Sprintf("could not load case file %s", filePath))
			continue
		}

		if _, dup := byID[c.ID]; dup {
			log.Warn(fmt.Sprintf("case %q in %s already defined, skipping", c.ID, filePath))
			continue
		}
		byID[c.ID] = c
	}

	cases := make([]*game.Case, 0, len(byID))
	for _, c := range byID {
		cases = append(cases, c)
	}

	// Sort by id for consistent ordering
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].ID < cases[j].ID
	})

	return cases, nil
}

// WithBuiltin puts the built-in manor first so it wins any id clash.
func WithBuiltin(cases []*game.Case) []*game.Case {
	return append([]*game.Case{game.Manor()}, cases...)
}

func isCaseFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
