package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildVariablesForFile(t *testing.T) {
	vars := BuildVariables(Resource{Path: "/repo/src/index.ts", Type: ResourceFile}, "/repo")
	want := Variables{
		"path":      "/repo/src/index.ts",
		"dir":       "/repo/src",
		"name":      "index.ts",
		"isFile":    "true",
		"isFolder":  "false",
		"workspace": "/repo",
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Fatalf("variables mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildVariablesForFolderWithoutWorkspace(t *testing.T) {
	vars := BuildVariables(Resource{Path: "/repo/src", Type: ResourceFolder}, "")
	if vars[VarDir] != "/repo/src" {
		t.Fatalf("dir = %q, want the folder itself", vars[VarDir])
	}
	if vars[VarName] != "src" || vars[VarIsFolder] != "true" || vars[VarIsFile] != "false" {
		t.Fatalf("unexpected variables: %v", vars)
	}
	if vars[VarWorkspace] != "" {
		t.Fatalf("workspace = %q, want empty", vars[VarWorkspace])
	}
}

func TestBuildVariablesForIrregularPath(t *testing.T) {
	vars := BuildVariables(Resource{Path: "/run/agent.sock", Type: ResourceFolder, Irregular: true}, "")
	if vars[VarIsFile] != "false" || vars[VarIsFolder] != "false" {
		t.Fatalf("unexpected flags: %v", vars)
	}
	if vars[VarDir] != "/run/agent.sock" {
		t.Fatalf("dir = %q, want the path itself", vars[VarDir])
	}
}

func TestSubstitute(t *testing.T) {
	vars := BuildVariables(Resource{Path: "/repo/src/index.ts", Type: ResourceFile}, "/repo")
	cases := []struct {
		template string
		want     string
	}{
		{"echo ${name} in ${dir}", "echo index.ts in /repo/src"},
		{"${name} ${name}", "index.ts index.ts"},
		{"cd ${workspace} && ${bogus}", "cd /repo && ${bogus}"},
		{"$name ${ name } {name}", "$name ${ name } {name}"},
		{"file=${isFile} folder=${isFolder}", "file=true folder=false"},
	}
	for _, tc := range cases {
		if got := Substitute(tc.template, vars); got != tc.want {
			t.Errorf("Substitute(%q) = %q, want %q", tc.template, got, tc.want)
		}
	}
}

func TestSubstituteIsIdempotentWithoutTokens(t *testing.T) {
	vars := BuildVariables(Resource{Path: "/repo/a.go", Type: ResourceFile}, "/repo")
	once := Substitute("go vet ${path} ${unknown}", vars)
	if twice := Substitute(once, vars); twice != once {
		t.Fatalf("second pass changed result: %q -> %q", once, twice)
	}
}
