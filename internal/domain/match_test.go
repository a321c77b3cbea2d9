package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchesScope(t *testing.T) {
	cases := []struct {
		scope ResourceScope
		typ   ResourceType
		want  bool
	}{
		{"", ResourceFile, true},
		{"", ResourceFolder, true},
		{ScopeAny, ResourceFile, true},
		{ScopeAny, ResourceFolder, true},
		{ScopeFile, ResourceFile, true},
		{ScopeFile, ResourceFolder, false},
		{ScopeFolder, ResourceFolder, true},
		{ScopeFolder, ResourceFile, false},
		{"directory", ResourceFolder, false},
	}
	for _, tc := range cases {
		if got := MatchesScope(tc.scope, tc.typ); got != tc.want {
			t.Errorf("MatchesScope(%q, %q) = %v, want %v", tc.scope, tc.typ, got, tc.want)
		}
	}
}

func TestMatchesContainsIsLogicalOr(t *testing.T) {
	path := "/repo/src/components/button.tsx"
	cases := []struct {
		name    string
		needles []string
		want    bool
	}{
		{"unset", nil, true},
		{"single hit", []string{"components"}, true},
		{"single miss", []string{"tests"}, false},
		{"one of many", []string{"tests", "/src/"}, true},
		{"none of many", []string{"tests", "vendor"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesContains(tc.needles, path); got != tc.want {
				t.Fatalf("MatchesContains(%v) = %v, want %v", tc.needles, got, tc.want)
			}
		})
	}
}

func TestMatchesPattern(t *testing.T) {
	cases := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"unset", nil, "/a/b/c.ts", true},
		{"base name", []string{"*.ts"}, "/a/b/c.ts", true},
		{"base name miss", []string{"*.go"}, "/a/b/c.ts", false},
		{"brace", []string{"*.{ts,tsx}"}, "/a/b/c.tsx", true},
		{"any of", []string{"*.go", "Makefile"}, "/repo/Makefile", true},
		{"full path", []string{"/repo/src/*.ts"}, "/repo/src/index.ts", true},
		{"full path miss", []string{"/repo/lib/*.ts"}, "/repo/src/index.ts", false},
		{"double star on absolute path", []string{"**/src/*.ts"}, "/repo/src/index.ts", true},
		{"folder base name", []string{"node_modules"}, "/repo/node_modules", true},
		{"invalid pattern", []string{"[abc"}, "/repo/a", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesPattern(tc.patterns, tc.path); got != tc.want {
				t.Fatalf("MatchesPattern(%v, %q) = %v, want %v", tc.patterns, tc.path, got, tc.want)
			}
		})
	}
}

func TestEligiblePreservesOrderAndConjunction(t *testing.T) {
	commands := NewCommandsConfig(
		CommandEntry{Key: "open", Config: CommandConfig{Command: "open ${path}"}},
		CommandEntry{Key: "ls", Config: CommandConfig{Command: "ls -la", When: ScopeFolder}},
		CommandEntry{Key: "tsc", Config: CommandConfig{Command: "tsc ${name}", When: ScopeFile, PathPattern: StringList{"*.ts"}}},
		CommandEntry{Key: "test", Config: CommandConfig{Command: "go test", PathContains: StringList{"/internal/"}}},
		CommandEntry{Key: "cat", Config: CommandConfig{Command: "cat ${name}", When: ScopeFile}},
	)

	file := Resource{Path: "/repo/src/index.ts", Type: ResourceFile}
	if diff := cmp.Diff([]string{"open", "tsc", "cat"}, keys(Eligible(commands, file))); diff != "" {
		t.Fatalf("file eligibility mismatch (-want +got):\n%s", diff)
	}

	folder := Resource{Path: "/repo/internal", Type: ResourceFolder}
	if diff := cmp.Diff([]string{"open", "ls"}, keys(Eligible(commands, folder))); diff != "" {
		t.Fatalf("folder eligibility mismatch (-want +got):\n%s", diff)
	}

	nested := Resource{Path: "/repo/internal/x", Type: ResourceFolder}
	if diff := cmp.Diff([]string{"open", "ls", "test"}, keys(Eligible(commands, nested))); diff != "" {
		t.Fatalf("nested eligibility mismatch (-want +got):\n%s", diff)
	}
}

func TestEligibleEmpty(t *testing.T) {
	if got := Eligible(CommandsConfig{}, Resource{Path: "/x", Type: ResourceFile}); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

func keys(entries []CommandEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Key)
	}
	return out
}
