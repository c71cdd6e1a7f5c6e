package scaffold

import "strings"

// Style is a named optional capability gating generated files and template
// regions.
type Style string

const (
	// StyleGraphQL enables the GraphQL schema and its router mount.
	StyleGraphQL Style = "graphql"

	// StyleREST enables the REST routes and smoke test.
	StyleREST Style = "rest"
)

// KnownStyles returns all recognized styles in canonical order.
func KnownStyles() []Style {
	return []Style{StyleGraphQL, StyleREST}
}

// StyleSet is a resolved, non-empty set of styles in canonical order.
type StyleSet struct {
	styles []Style
}

// ResolveStyles filters the raw flag input to the recognized styles that are
// explicitly enabled. An empty result falls back to the default single-style
// set (graphql). Deterministic and total: unrecognized flags are rejected at
// parse time, not here.
func ResolveStyles(flags map[Style]bool) StyleSet {
	var enabled []Style
	for _, s := range KnownStyles() {
		if flags[s] {
			enabled = append(enabled, s)
		}
	}

	if len(enabled) == 0 {
		enabled = []Style{StyleGraphQL}
	}

	return StyleSet{styles: enabled}
}

// Has reports whether the style is enabled.
func (s StyleSet) Has(style Style) bool {
	for _, v := range s.styles {
		if v == style {
			return true
		}
	}
	return false
}

// List returns the enabled styles in canonical order.
func (s StyleSet) List() []Style {
	out := make([]Style, len(s.styles))
	copy(out, s.styles)
	return out
}

// String returns the enabled style names joined for human-readable output.
func (s StyleSet) String() string {
	names := make([]string, len(s.styles))
	for i, v := range s.styles {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
