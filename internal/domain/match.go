package domain

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Eligible returns the commands applicable to the resource, in configuration order.
func Eligible(commands CommandsConfig, res Resource) []CommandEntry {
	var out []CommandEntry
	for _, entry := range commands.entries {
		if entry.Config.AppliesTo(res) {
			out = append(out, entry)
		}
	}
	return out
}

// AppliesTo reports whether all of the command's conditions hold for res.
func (c CommandConfig) AppliesTo(res Resource) bool {
	return MatchesScope(c.Scope(), res.Type) &&
		MatchesContains(c.PathContains, res.Path) &&
		MatchesPattern(c.PathPattern, res.Path)
}

// MatchesScope reports whether a `when` value admits the resource type.
// Unknown values never match.
func MatchesScope(scope ResourceScope, typ ResourceType) bool {
	switch scope {
	case "", ScopeAny:
		return true
	case ScopeFile:
		return typ == ResourceFile
	case ScopeFolder:
		return typ == ResourceFolder
	default:
		return false
	}
}

// MatchesContains reports whether any needle is a substring of path.
// An empty list imposes no constraint.
func MatchesContains(needles []string, path string) bool {
	if len(needles) == 0 {
		return true
	}
	for _, needle := range needles {
		if strings.Contains(path, needle) {
			return true
		}
	}
	return false
}

// MatchesPattern reports whether any glob matches path. Patterns without a
// separator match the base name. An empty list imposes no constraint.
func MatchesPattern(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return true
	}
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if matchGlob(pattern, slashed, base) {
			return true
		}
	}
	return false
}

func matchGlob(pattern, slashed, base string) bool {
	pattern = filepath.ToSlash(pattern)
	if !strings.Contains(pattern, "/") {
		ok, err := doublestar.Match(pattern, base)
		return err == nil && ok
	}
	if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
		return true
	}
	trimmed := strings.TrimPrefix(slashed, "/")
	if trimmed == slashed {
		return false
	}
	ok, err := doublestar.Match(pattern, trimmed)
	return err == nil && ok
}
