package analyzer

// SchemaField is one annotated field on a detected model class. Type holds
// the annotation's source text, not a resolved type.
type SchemaField struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Schema describes one model class found by the schema pass.
type Schema struct {
	File   string        `yaml:"file" json:"file"`
	Fields []SchemaField `yaml:"fields" json:"fields"`
}

// Endpoint describes one decorated handler found by the endpoint pass.
type Endpoint struct {
	File     string `yaml:"file" json:"file"`
	Function string `yaml:"function" json:"function"`
}

// Component describes one frontend component found by the frontend pass.
type Component struct {
	File string `yaml:"file" json:"file"`
	Type string `yaml:"type" json:"type"`
}

// Dependencies holds the per-ecosystem dependency payloads. Only detected
// ecosystems are non-nil; each payload shape is closed rather than an
// open-ended map.
type Dependencies struct {
	NPM    *NPMDependencies    `yaml:"npm,omitempty" json:"npm,omitempty"`
	Pip    *PipDependencies    `yaml:"pip,omitempty" json:"pip,omitempty"`
	Poetry *PoetryDependencies `yaml:"poetry,omitempty" json:"poetry,omitempty"`
}

// NPMDependencies is the payload extracted from package.json. Absent blocks
// become empty maps, never nil.
type NPMDependencies struct {
	Dependencies    map[string]any `yaml:"dependencies" json:"dependencies"`
	DevDependencies map[string]any `yaml:"devDependencies" json:"devDependencies"`
}

// PipDependencies is the ordered requirement list from requirements.txt.
type PipDependencies struct {
	Dependencies []string `yaml:"dependencies" json:"dependencies"`
}

// PoetryDependencies carries a poetry manifest verbatim: file name plus raw
// content. When both pyproject.toml and poetry.lock exist, the lock file is
// processed last and wins.
type PoetryDependencies struct {
	Content string `yaml:"content" json:"content"`
	File    string `yaml:"file" json:"file"`
}
