// Package pysrc provides shallow tree-sitter helpers for the Python
// extraction passes. It exposes single-level node inspection only; nothing
// here resolves names or types.
package pysrc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrSyntax is returned when a source file does not parse cleanly. Callers
// skip the whole file so no partial structure is recorded from it.
var ErrSyntax = errors.New("source contains syntax errors")

// Parser wraps a tree-sitter parser configured for Python.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a Python parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses Python source and returns the AST root node.
func (p *Parser) Parse(ctx context.Context, source []byte) (*sitter.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrSyntax
	}
	return root, nil
}

// FindNodes returns every node in the subtree whose type matches one of the
// given types, in document order.
func FindNodes(root *sitter.Node, types ...string) []*sitter.Node {
	if len(types) == 0 {
		return nil
	}

	var result []*sitter.Node

	var walk func(*sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		for _, t := range types {
			if node.Type() == t {
				result = append(result, node)
				break
			}
		}
		for i := uint32(0); i < node.ChildCount(); i++ {
			walk(node.Child(int(i)))
		}
	}

	walk(root)
	return result
}

// Text returns the source text covered by node.
func Text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// Literal evaluates a restricted set of Python literal nodes to their textual
// value: plain strings are unquoted, numeric and keyword literals are
// returned verbatim. The second return is false for anything else
// (identifiers, calls, f-strings), matching what a literal evaluation would
// reject.
func Literal(node *sitter.Node, source []byte) (string, bool) {
	switch node.Type() {
	case "string", "concatenated_string":
		return stringLiteral(node, source)
	case "integer", "float", "true", "false", "none":
		return Text(node, source), true
	default:
		return "", false
	}
}

// stringLiteral unquotes a Python string literal. F-strings and strings with
// interpolation are rejected.
func stringLiteral(node *sitter.Node, source []byte) (string, bool) {
	if node.Type() == "concatenated_string" {
		var b strings.Builder
		for i := uint32(0); i < node.NamedChildCount(); i++ {
			part, ok := stringLiteral(node.NamedChild(int(i)), source)
			if !ok {
				return "", false
			}
			b.WriteString(part)
		}
		return b.String(), true
	}
	if node.Type() != "string" {
		return "", false
	}

	for i := uint32(0); i < node.NamedChildCount(); i++ {
		if node.NamedChild(int(i)).Type() == "interpolation" {
			return "", false
		}
	}

	text := Text(node, source)

	// Split off the quote prefix (r, b, u, f in any combination/case).
	raw := false
	for len(text) > 0 {
		switch text[0] {
		case 'r', 'R':
			raw = true
			text = text[1:]
			continue
		case 'b', 'B', 'u', 'U':
			text = text[1:]
			continue
		case 'f', 'F':
			return "", false
		}
		break
	}

	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(text, quote) && strings.HasSuffix(text, quote) && len(text) >= 2*len(quote) {
			inner := text[len(quote) : len(text)-len(quote)]
			if raw {
				return inner, true
			}
			return unescape(inner), true
		}
	}

	return "", false
}

// unescape handles the escape sequences that matter for route paths and
// field annotations. Unknown escapes are kept verbatim.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
