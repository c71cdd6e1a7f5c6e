package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/forgeframework/forge/internal/errors"
)

// semverRegex captures major, minor, and an optional prerelease from a
// semantic version string; the optional build metadata is discarded.
var semverRegex = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z.-]+))?(?:\+[0-9A-Za-z.-]+)?$`)

// Assigns is the immutable template context for a generation run. It is a
// closed record: templates may reference exactly these fields and nothing
// else, so the set of valid assign keys is fixed at compile time.
type Assigns struct {
	// App is the OTP application name (e.g. "hello_world").
	App string

	// Module is the base module name (e.g. "HelloWorld").
	Module string

	// SnakeModule is the filesystem-safe lower-snake form of Module, with
	// dots mapped to path separators ("Shop.Admin" -> "shop/admin").
	SnakeModule string

	// Supervisor is the supervision registration name for the app's top
	// supervisor (e.g. "HelloWorld.Supervisor").
	Supervisor string

	// ElixirVersion is the truncated runtime version: major.minor with the
	// prerelease kept when present ("1.16" or "1.17-rc.0").
	ElixirVersion string

	// GraphQL reports whether the graphql style is enabled.
	GraphQL bool

	// REST reports whether the rest style is enabled.
	REST bool

	// StyleList is the human-readable joined list of enabled style names.
	StyleList string
}

// BuildAssigns combines validated identifiers, resolved styles, and the host
// runtime version into the template context. A malformed runtime version is
// a hard abort: it signals a broken host environment, not bad user input.
func BuildAssigns(ids Identifiers, styles StyleSet, runtimeVersion string) (*Assigns, error) {
	elixirVersion, err := truncateVersion(runtimeVersion)
	if err != nil {
		return nil, err
	}

	return &Assigns{
		App:           ids.App,
		Module:        ids.Module,
		SnakeModule:   Underscore(ids.Module),
		Supervisor:    ids.Module + ".Supervisor",
		ElixirVersion: elixirVersion,
		GraphQL:       styles.Has(StyleGraphQL),
		REST:          styles.Has(StyleREST),
		StyleList:     styles.String(),
	}, nil
}

// Underscore converts a module name to its filesystem form: underscores at
// camel-case boundaries, everything lower-cased, dots as path separators.
// "HelloWorld" -> "hello_world", "Shop.AdminAPI" -> "shop/admin_api".
func Underscore(module string) string {
	var b strings.Builder

	for i := 0; i < len(module); i++ {
		c := module[i]
		switch {
		case c == '.':
			b.WriteByte('/')
		case c >= 'A' && c <= 'Z':
			if i > 0 && module[i-1] != '.' && needsBoundary(module, i) {
				b.WriteByte('_')
			}
			b.WriteByte(c - 'A' + 'a')
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// needsBoundary reports whether an underscore belongs before position i.
// A boundary sits before an upper-case rune that follows a lower-case rune
// or digit, or that starts the tail of an acronym ("AdminAPI" -> admin_api).
func needsBoundary(s string, i int) bool {
	prev := s[i-1]
	if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
		return true
	}
	// prev is upper-case: boundary only when the next rune is lower-case,
	// which ends an acronym run ("HTTPServer" -> http_server).
	if prev >= 'A' && prev <= 'Z' && i+1 < len(s) {
		next := s[i+1]
		return next >= 'a' && next <= 'z'
	}
	return false
}

// truncateVersion parses a semantic version and returns major.minor, keeping
// the prerelease when present.
func truncateVersion(v string) (string, error) {
	m := semverRegex.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return "", oerrors.Wrap(oerrors.ErrVersionParse,
			fmt.Sprintf("runtime version %q is not a semantic version", v))
	}

	out := m[1] + "." + m[2]
	if m[4] != "" {
		out += "-" + m[4]
	}
	return out, nil
}

// value looks up an assign by its template key. The key set mirrors the
// Assigns fields one-to-one.
func (a *Assigns) value(key string) (interface{}, bool) {
	switch key {
	case "app":
		return a.App, true
	case "module":
		return a.Module, true
	case "snake_module":
		return a.SnakeModule, true
	case "supervisor":
		return a.Supervisor, true
	case "elixir_version":
		return a.ElixirVersion, true
	case "graphql":
		return a.GraphQL, true
	case "rest":
		return a.REST, true
	case "style_list":
		return a.StyleList, true
	default:
		return nil, false
	}
}
