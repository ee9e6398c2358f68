package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"blueprint/internal/logging"
	"blueprint/internal/pysrc"
)

// routeFilePatterns are the conventional locations of route, view and
// controller definitions, including one subdirectory level.
var routeFilePatterns = []string{
	"**/routes.py",
	"**/routes/*.py",
	"**/views.py",
	"**/views/*.py",
	"**/controllers.py",
	"**/controllers/*.py",
}

// handlerDecoratorHints qualify a decorator as a route registration when any
// of them appears in the callee's source text. Deliberately a loose
// case-sensitive substring match: a decorator named widget_getter qualifies
// too.
var handlerDecoratorHints = []string{"route", "get", "post", "put", "delete"}

// findAPIEndpoints records decorated handler functions from matched route
// files under "METHOD path" keys, later handlers overwriting earlier ones.
// Files that fail to read or parse are skipped whole.
func (a *Analyzer) findAPIEndpoints(ctx context.Context) {
	for _, rel := range a.glob(routeFilePatterns) {
		source, err := os.ReadFile(filepath.Join(a.root, rel))
		if err != nil {
			a.logger.Debug("route file unreadable, skipping", logging.Fields{"file": rel, "error": err.Error()})
			continue
		}

		root, err := a.parser.Parse(ctx, source)
		if err != nil {
			a.logger.Debug("route file unparseable, skipping", logging.Fields{"file": rel, "error": err.Error()})
			continue
		}

		a.collectEndpoints(root, source, rel)
	}
}

// collectEndpoints walks the decorated definitions of one file. A qualifying
// decorator whose first positional argument is not a literal aborts the rest
// of the file; endpoints already recorded from it are kept.
func (a *Analyzer) collectEndpoints(root *sitter.Node, source []byte, rel string) {
	for _, decorated := range pysrc.FindNodes(root, "decorated_definition") {
		def := decorated.ChildByFieldName("definition")
		if def == nil || def.Type() != "function_definition" {
			continue
		}
		nameNode := def.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		function := pysrc.Text(nameNode, source)

		for i := uint32(0); i < decorated.NamedChildCount(); i++ {
			dec := decorated.NamedChild(int(i))
			if dec.Type() != "decorator" || dec.NamedChildCount() == 0 {
				continue
			}
			call := dec.NamedChild(0)
			if call.Type() != "call" {
				continue
			}
			callee := call.ChildByFieldName("function")
			if callee == nil || !matchesHandlerHint(pysrc.Text(callee, source)) {
				continue
			}

			path := "/"
			if arg := firstPositionalArg(call); arg != nil {
				value, ok := pysrc.Literal(arg, source)
				if !ok {
					a.logger.Debug("non-literal route path, skipping rest of file", logging.Fields{"file": rel, "function": function})
					return
				}
				path = value
			}

			method := "GET"
			if callee.Type() == "attribute" {
				if attr := callee.ChildByFieldName("attribute"); attr != nil {
					method = strings.ToUpper(pysrc.Text(attr, source))
				}
			}

			a.endpoints[method+" "+path] = Endpoint{File: rel, Function: function}
		}
	}
}

func matchesHandlerHint(callee string) bool {
	for _, hint := range handlerDecoratorHints {
		if strings.Contains(callee, hint) {
			return true
		}
	}
	return false
}

// firstPositionalArg returns the first non-keyword argument of a call, or
// nil when the call has none.
func firstPositionalArg(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	for i := uint32(0); i < args.NamedChildCount(); i++ {
		arg := args.NamedChild(int(i))
		if arg.Type() == "keyword_argument" || arg.Type() == "comment" {
			continue
		}
		return arg
	}
	return nil
}
