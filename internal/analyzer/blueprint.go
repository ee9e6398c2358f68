package analyzer

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Blueprint document keys. The document always carries all five, even for a
// project where every pass came back empty.
const (
	KeyProjectDetails = "pm.details"
	KeySchemas        = "db.schemas"
	KeyOpenAPI        = "backend.specifications.openapi"
	KeySitemap        = "uxsitemap.structure"
	KeyPackages       = "settings.config.package"
)

// analyzedAtNote is a fixed marker, not a timestamp; blueprints must be
// byte-identical across runs over an unchanged tree.
const analyzedAtNote = "auto-generated from existing project"

// SectionType discriminates the payload shape of a blueprint section.
type SectionType string

const (
	// SectionYAML marks a payload rendered to a YAML string
	SectionYAML SectionType = "yaml"
	// SectionComplex marks a structured payload carried as-is
	SectionComplex SectionType = "complex"
)

// Section is one value in the blueprint document: a content-type tag plus
// the payload. Sections are only built through yamlSection and
// complexSection, keeping the set of payload shapes closed.
type Section struct {
	Type    SectionType `json:"type"`
	Content any         `json:"content"`
}

// Blueprint is the fixed-shape document handed to the project generator.
type Blueprint map[string]Section

type projectDetails struct {
	AnalyzedAt  string `yaml:"analyzed_at"`
	ProjectName string `yaml:"project_name"`
	ProjectPath string `yaml:"project_path"`
}

type sitemap struct {
	Components map[string]Component `yaml:"components"`
	Routes     []string             `yaml:"routes"`
}

type openAPIDoc struct {
	OpenAPI string                          `json:"openapi"`
	Info    openAPIInfo                     `json:"info"`
	Paths   map[string]map[string]operation `json:"paths"`
}

type openAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type operation struct {
	Summary     string                  `json:"summary"`
	OperationID string                  `json:"operationId"`
	Responses   map[string]responseStub `json:"responses"`
}

type responseStub struct {
	Description string `json:"description"`
}

// buildBlueprint assembles the five sections from the accumulated buckets.
// Pure over the analyzer's state: no I/O, no failure path.
func (a *Analyzer) buildBlueprint() Blueprint {
	return Blueprint{
		KeyProjectDetails: yamlSection(projectDetails{
			AnalyzedAt:  analyzedAtNote,
			ProjectName: a.name,
			ProjectPath: a.root,
		}),
		KeySchemas: yamlSection(a.schemas),
		KeyOpenAPI: complexSection(a.openAPIStub()),
		KeySitemap: yamlSection(sitemap{
			Components: a.components,
			Routes:     a.routes,
		}),
		KeyPackages: yamlSection(a.deps),
	}
}

// openAPIStub shapes the endpoint record as an OpenAPI 3.0.0 fragment: one
// paths entry per endpoint key, one method entry under it, a fixed 200
// response and no schemas. A structural placeholder, not an API description.
func (a *Analyzer) openAPIStub() openAPIDoc {
	paths := make(map[string]map[string]operation, len(a.endpoints))
	for key, ep := range a.endpoints {
		method, _, _ := strings.Cut(key, " ")
		paths[key] = map[string]operation{
			strings.ToLower(method): {
				Summary:     ep.Function,
				OperationID: ep.Function,
				Responses: map[string]responseStub{
					"200": {Description: "Successful response"},
				},
			},
		}
	}

	return openAPIDoc{
		OpenAPI: "3.0.0",
		Info: openAPIInfo{
			Title:   filepath.Base(a.root) + " API",
			Version: "1.0.0",
		},
		Paths: paths,
	}
}

// yamlSection renders v to YAML text. Map keys come out sorted, so section
// content is deterministic. Marshaling the closed payload shapes above
// cannot fail; the fallback exists to keep assembly total.
func yamlSection(v any) Section {
	data, err := yaml.Marshal(v)
	if err != nil {
		return Section{Type: SectionYAML, Content: ""}
	}
	return Section{Type: SectionYAML, Content: string(data)}
}

func complexSection(v any) Section {
	return Section{Type: SectionComplex, Content: v}
}
