// Package analyzer extracts a structural blueprint from an existing project
// tree. Four independent passes (schemas, endpoints, frontend components,
// dependencies) accumulate into disjoint buckets which are then assembled
// into the fixed-shape blueprint document.
//
// Every pass is a best-effort heuristic over glob-matched files: a file that
// cannot be read or parsed is skipped and never fails the run.
package analyzer

import (
	"context"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"blueprint/internal/logging"
	"blueprint/internal/pysrc"
)

// Analyzer scans one project root. Buckets are disjoint per pass; the passes
// are order-insensitive.
type Analyzer struct {
	root   string
	ignore []string
	logger *logging.Logger

	parser *pysrc.Parser

	name       string
	schemas    map[string]Schema
	endpoints  map[string]Endpoint
	components map[string]Component
	routes     []string
	deps       Dependencies
}

// New creates an analyzer for the project rooted at root. ignoreDirs filters
// matched paths by their leading segment (empty = scan everything). A nil
// logger disables logging.
func New(root string, ignoreDirs []string, logger *logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Analyzer{
		root:       root,
		ignore:     ignoreDirs,
		logger:     logger,
		parser:     pysrc.NewParser(),
		schemas:    map[string]Schema{},
		endpoints:  map[string]Endpoint{},
		components: map[string]Component{},
		routes:     []string{},
	}
}

// Analyze runs all passes and assembles the blueprint. It never fails:
// unreadable or unparseable candidate files are skipped with whatever was
// extracted before them kept.
func (a *Analyzer) Analyze(ctx context.Context) Blueprint {
	a.findDatabaseSchemas(ctx)
	a.findAPIEndpoints(ctx)
	a.findFrontendComponents()
	a.findDependencies()
	a.name = a.projectName()

	return a.buildBlueprint()
}

// glob matches the given patterns relative to the project root, in pattern
// order. Matches within one pattern come back in lexical walk order, which
// keeps repeat runs byte-identical.
func (a *Analyzer) glob(patterns []string) []string {
	fsys := os.DirFS(a.root)

	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			a.logger.Debug("glob failed", logging.Fields{"pattern": pattern, "error": err.Error()})
			continue
		}
		for _, rel := range found {
			if a.ignored(rel) {
				continue
			}
			matches = append(matches, rel)
		}
	}
	return matches
}

func (a *Analyzer) ignored(rel string) bool {
	for _, dir := range a.ignore {
		if rel == dir || strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	return false
}
