package analyzer

import (
	"context"
	"testing"
)

func TestFindAPIEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  map[string]Endpoint
	}{
		{
			name: "attribute decorator",
			files: map[string]string{
				"routes.py": "@app.get(\"/users\")\ndef list_users():\n    return []\n",
			},
			want: map[string]Endpoint{
				"GET /users": {File: "routes.py", Function: "list_users"},
			},
		},
		{
			name: "route decorator records its attribute as the method",
			files: map[string]string{
				"views.py": "@app.route(\"/health\")\ndef health():\n    pass\n",
			},
			want: map[string]Endpoint{
				"ROUTE /health": {File: "views.py", Function: "health"},
			},
		},
		{
			name: "bare callee defaults to GET",
			files: map[string]string{
				"controllers.py": "@route(\"/ping\")\ndef ping():\n    pass\n",
			},
			want: map[string]Endpoint{
				"GET /ping": {File: "controllers.py", Function: "ping"},
			},
		},
		{
			name: "no positional args defaults to root path",
			files: map[string]string{
				"routes.py": "@app.post()\ndef create():\n    pass\n",
			},
			want: map[string]Endpoint{
				"POST /": {File: "routes.py", Function: "create"},
			},
		},
		{
			name: "keyword-only args also default to root path",
			files: map[string]string{
				"routes.py": "@app.put(path=\"/items\")\ndef update():\n    pass\n",
			},
			want: map[string]Endpoint{
				"PUT /": {File: "routes.py", Function: "update"},
			},
		},
		{
			name: "loose substring match is intentional",
			files: map[string]string{
				"views.py": "@widget_getter(\"/widgets\")\ndef widgets():\n    pass\n",
			},
			want: map[string]Endpoint{
				"GET /widgets": {File: "views.py", Function: "widgets"},
			},
		},
		{
			name: "unrelated decorators are ignored",
			files: map[string]string{
				"routes.py": "@cached(\"/nope\")\ndef cached_view():\n    pass\n",
			},
			want: map[string]Endpoint{},
		},
		{
			name: "decorator without a call is ignored",
			files: map[string]string{
				"routes.py": "@app.get\ndef naked():\n    pass\n",
			},
			want: map[string]Endpoint{},
		},
		{
			name: "methods subdirectory level is matched",
			files: map[string]string{
				"api/routes/users.py": "@app.delete(\"/users/1\")\ndef remove():\n    pass\n",
			},
			want: map[string]Endpoint{
				"DELETE /users/1": {File: "api/routes/users.py", Function: "remove"},
			},
		},
		{
			name: "later handler for the same key overwrites",
			files: map[string]string{
				"routes.py": "@app.get(\"/dup\")\ndef first():\n    pass\n\n@app.get(\"/dup\")\ndef second():\n    pass\n",
			},
			want: map[string]Endpoint{
				"GET /dup": {File: "routes.py", Function: "second"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.files)

			a := New(dir, nil, nil)
			a.findAPIEndpoints(context.Background())

			if len(a.endpoints) != len(tt.want) {
				t.Fatalf("got %d endpoints (%v), want %d", len(a.endpoints), a.endpoints, len(tt.want))
			}
			for key, want := range tt.want {
				got, ok := a.endpoints[key]
				if !ok {
					t.Fatalf("endpoint %q not recorded (have %v)", key, a.endpoints)
				}
				if got != want {
					t.Errorf("endpoint %q = %+v, want %+v", key, got, want)
				}
			}
		})
	}
}

func TestFindAPIEndpointsNonLiteralPathAbortsFile(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"routes.py": "@app.get(\"/before\")\ndef before():\n    pass\n\n@app.get(PREFIX)\ndef dynamic():\n    pass\n\n@app.get(\"/after\")\ndef after():\n    pass\n",
		"views.py":  "@app.post(\"/other\")\ndef other():\n    pass\n",
	})

	a := New(dir, nil, nil)
	a.findAPIEndpoints(context.Background())

	if _, ok := a.endpoints["GET /before"]; !ok {
		t.Error("endpoint recorded before the failure was dropped")
	}
	if _, ok := a.endpoints["GET /after"]; ok {
		t.Error("endpoint after a non-literal path in the same file was recorded")
	}
	// Other files are unaffected.
	if _, ok := a.endpoints["POST /other"]; !ok {
		t.Error("endpoint in a sibling file was dropped")
	}
}

func TestFindAPIEndpointsSkipsBrokenFile(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"bad/views.py":  "@app.get(\ndef broken(:\n",
		"good/views.py": "@app.get(\"/ok\")\ndef ok():\n    pass\n",
	})

	a := New(dir, nil, nil)
	a.findAPIEndpoints(context.Background())

	if len(a.endpoints) != 1 {
		t.Fatalf("endpoints = %v, want exactly GET /ok", a.endpoints)
	}
	if _, ok := a.endpoints["GET /ok"]; !ok {
		t.Errorf("endpoints = %v, want GET /ok", a.endpoints)
	}
}
