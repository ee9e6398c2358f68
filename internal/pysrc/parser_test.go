package pysrc

import (
	"context"
	"errors"
	"testing"
)

func TestParseValidSource(t *testing.T) {
	p := NewParser()

	root, err := p.Parse(context.Background(), []byte("class Widget(Model):\n    name: str\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	classes := FindNodes(root, "class_definition")
	if len(classes) != 1 {
		t.Fatalf("found %d class definitions, want 1", len(classes))
	}
}

func TestParseRejectsBrokenSource(t *testing.T) {
	p := NewParser()

	_, err := p.Parse(context.Background(), []byte("class Broken(:\n    def\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Parse() error = %v, want ErrSyntax", err)
	}
}

func TestFindNodesWalksNestedDefinitions(t *testing.T) {
	p := NewParser()

	src := []byte("class Outer(Model):\n    class Inner(BaseModel):\n        x: int\n")
	root, err := p.Parse(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	classes := FindNodes(root, "class_definition")
	if len(classes) != 2 {
		t.Fatalf("found %d class definitions, want 2", len(classes))
	}
}

func TestLiteral(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name   string
		src    string
		want   string
		wantOk bool
	}{
		{"double quoted", `x = "/users"`, "/users", true},
		{"single quoted", `x = '/items'`, "/items", true},
		{"triple quoted", `x = """/docs"""`, "/docs", true},
		{"raw string", `x = r"/api\v1"`, `/api\v1`, true},
		{"escaped", `x = "a\tb"`, "a\tb", true},
		{"integer", `x = 42`, "42", true},
		{"boolean", `x = True`, "True", true},
		{"f-string rejected", `x = f"/users/{id}"`, "", false},
		{"identifier rejected", `x = PREFIX`, "", false},
		{"call rejected", `x = make_path()`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			root, err := p.Parse(context.Background(), src)
			if err != nil {
				t.Fatal(err)
			}

			assigns := FindNodes(root, "assignment")
			if len(assigns) != 1 {
				t.Fatalf("found %d assignments", len(assigns))
			}
			value := assigns[0].ChildByFieldName("right")
			if value == nil {
				t.Fatal("assignment has no right side")
			}

			got, ok := Literal(value, src)
			if ok != tt.wantOk {
				t.Fatalf("Literal() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	p := NewParser()

	src := []byte("name: str = 'x'\n")
	root, err := p.Parse(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	assigns := FindNodes(root, "assignment")
	if len(assigns) != 1 {
		t.Fatalf("found %d assignments", len(assigns))
	}
	typ := assigns[0].ChildByFieldName("type")
	if typ == nil {
		t.Fatal("assignment has no type annotation")
	}
	if got := Text(typ, src); got != "str" {
		t.Errorf("Text() = %q, want %q", got, "str")
	}
}
