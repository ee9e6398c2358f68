package analyzer

import (
	"os"
	"path/filepath"
	"strings"

	"blueprint/internal/logging"
)

// frontendPatterns match React/Vue component files plus the two conventional
// TypeScript router file names. The .ts router files are matched for
// completeness but fall through the extension switch untouched.
var frontendPatterns = []string{
	"**/*.tsx",
	"**/*.jsx",
	"**/*.vue",
	"**/routes.ts",
	"**/router.ts",
}

// findFrontendComponents classifies frontend files by raw substring tests;
// no markup or script parsing happens here. React files that also mention
// Route/Routes are additionally appended to the route list, independent of
// component classification.
func (a *Analyzer) findFrontendComponents() {
	for _, rel := range a.glob(frontendPatterns) {
		switch filepath.Ext(rel) {
		case ".tsx", ".jsx":
			content, err := os.ReadFile(filepath.Join(a.root, rel))
			if err != nil {
				a.logger.Debug("component file unreadable, skipping", logging.Fields{"file": rel, "error": err.Error()})
				continue
			}
			text := string(content)

			if strings.Contains(text, "export default") || strings.Contains(text, "React.FC") {
				a.components[fileStem(rel)] = Component{File: rel, Type: "component"}

				if strings.Contains(text, "Route") || strings.Contains(text, "Routes") {
					a.routes = append(a.routes, rel)
				}
			}

		case ".vue":
			content, err := os.ReadFile(filepath.Join(a.root, rel))
			if err != nil {
				a.logger.Debug("component file unreadable, skipping", logging.Fields{"file": rel, "error": err.Error()})
				continue
			}
			if strings.Contains(string(content), "<template>") {
				a.components[fileStem(rel)] = Component{File: rel, Type: "component"}
			}
		}
	}
}

// fileStem returns the base name without its extension; it is the component
// identity, so two files with the same stem collapse to one entry.
func fileStem(rel string) string {
	base := filepath.Base(rel)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
