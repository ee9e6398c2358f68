package analyzer

import (
	"context"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"

	"blueprint/internal/logging"
	"blueprint/internal/pysrc"
)

// modelFilePatterns are the conventional locations of ORM model and schema
// definitions, including one subdirectory level and migrations.
var modelFilePatterns = []string{
	"**/models.py",
	"**/models/*.py",
	"**/schemas.py",
	"**/schemas/*.py",
	"**/migrations/*.py",
}

// modelBaseNames are the base-class identifiers that mark a class as an ORM
// or pydantic model.
var modelBaseNames = []string{"Model", "BaseModel"}

// findDatabaseSchemas records every model class found under the matched
// files. A file that fails to read or parse is skipped whole, so no partial
// class is recorded from it; classes from other files are unaffected. Later
// classes overwrite earlier ones under the same name.
func (a *Analyzer) findDatabaseSchemas(ctx context.Context) {
	for _, rel := range a.glob(modelFilePatterns) {
		source, err := os.ReadFile(filepath.Join(a.root, rel))
		if err != nil {
			a.logger.Debug("model file unreadable, skipping", logging.Fields{"file": rel, "error": err.Error()})
			continue
		}

		root, err := a.parser.Parse(ctx, source)
		if err != nil {
			a.logger.Debug("model file unparseable, skipping", logging.Fields{"file": rel, "error": err.Error()})
			continue
		}

		for _, class := range pysrc.FindNodes(root, "class_definition") {
			if !hasModelBase(class, source) {
				continue
			}
			nameNode := class.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			a.schemas[pysrc.Text(nameNode, source)] = Schema{
				File:   rel,
				Fields: annotatedFields(class, source),
			}
		}
	}
}

// hasModelBase reports whether the class lists Model or BaseModel as a bare
// identifier base. Dotted bases (db.Model) deliberately do not match.
func hasModelBase(class *sitter.Node, source []byte) bool {
	supers := class.ChildByFieldName("superclasses")
	if supers == nil {
		return false
	}
	for i := uint32(0); i < supers.NamedChildCount(); i++ {
		base := supers.NamedChild(int(i))
		if base.Type() != "identifier" {
			continue
		}
		text := pysrc.Text(base, source)
		for _, want := range modelBaseNames {
			if text == want {
				return true
			}
		}
	}
	return false
}

// annotatedFields collects the directly annotated assignments in a class
// body, in source order. The recorded type is the annotation's source text.
func annotatedFields(class *sitter.Node, source []byte) []SchemaField {
	fields := []SchemaField{}

	body := class.ChildByFieldName("body")
	if body == nil {
		return fields
	}

	for i := uint32(0); i < body.NamedChildCount(); i++ {
		stmt := body.NamedChild(int(i))
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		assign := stmt.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}

		left := assign.ChildByFieldName("left")
		annotation := assign.ChildByFieldName("type")
		if left == nil || annotation == nil || left.Type() != "identifier" {
			continue
		}

		fields = append(fields, SchemaField{
			Name: pysrc.Text(left, source),
			Type: pysrc.Text(annotation, source),
		})
	}

	return fields
}
