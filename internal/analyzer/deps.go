package analyzer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"blueprint/internal/logging"
)

// manifestNames are checked at the project root only, in this fixed order.
// Order matters for poetry: poetry.lock is processed after pyproject.toml
// and overwrites it when both exist.
var manifestNames = []string{
	"package.json",
	"requirements.txt",
	"pyproject.toml",
	"poetry.lock",
}

type packageJSON struct {
	Name            string         `json:"name"`
	Dependencies    map[string]any `json:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies"`
}

type pyprojectTOML struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// findDependencies extracts the per-ecosystem dependency payloads from the
// root-level manifests. Missing files and per-file failures are skipped.
func (a *Analyzer) findDependencies() {
	for _, name := range manifestNames {
		data, err := os.ReadFile(filepath.Join(a.root, name))
		if err != nil {
			continue
		}

		switch name {
		case "package.json":
			var manifest packageJSON
			if err := json.Unmarshal(data, &manifest); err != nil {
				a.logger.Debug("package.json unparseable, skipping", logging.Fields{"error": err.Error()})
				continue
			}
			if manifest.Dependencies == nil {
				manifest.Dependencies = map[string]any{}
			}
			if manifest.DevDependencies == nil {
				manifest.DevDependencies = map[string]any{}
			}
			a.deps.NPM = &NPMDependencies{
				Dependencies:    manifest.Dependencies,
				DevDependencies: manifest.DevDependencies,
			}

		case "requirements.txt":
			a.deps.Pip = &PipDependencies{Dependencies: requirementLines(data)}

		default: // pyproject.toml, poetry.lock: stored verbatim
			a.deps.Poetry = &PoetryDependencies{File: name, Content: string(data)}
		}
	}
}

// requirementLines keeps the trimmed non-empty lines of requirements.txt
// that are not comments, in file order.
func requirementLines(data []byte) []string {
	lines := []string{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	return lines
}

// projectName resolves a display name for the blueprint header: the
// package.json name, then the pyproject [project] or [tool.poetry] name,
// then the directory base name. Never fails.
func (a *Analyzer) projectName() string {
	if data, err := os.ReadFile(filepath.Join(a.root, "package.json")); err == nil {
		var manifest packageJSON
		if err := json.Unmarshal(data, &manifest); err == nil && manifest.Name != "" {
			return manifest.Name
		}
	}

	if data, err := os.ReadFile(filepath.Join(a.root, "pyproject.toml")); err == nil {
		var manifest pyprojectTOML
		if err := toml.Unmarshal(data, &manifest); err == nil {
			if manifest.Project.Name != "" {
				return manifest.Project.Name
			}
			if manifest.Tool.Poetry.Name != "" {
				return manifest.Tool.Poetry.Name
			}
		}
	}

	return filepath.Base(a.root)
}
