// Package scaffold implements the project generation engine: identifier
// validation, style resolution, template assigns, the generation plan, and
// file emission.
package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	oerrors "github.com/forgeframework/forge/internal/errors"
)

// appNameRegex matches OTP application names: lower-case, digits, underscores.
var appNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// moduleNameRegex matches dot-separated capitalized module segments.
var moduleNameRegex = regexp.MustCompile(`^[A-Z]\w*(\.[A-Z]\w*)*$`)

// Identifiers is the validated app/module name pair for a generation run.
type Identifiers struct {
	// App is the OTP application name (e.g. "hello_world").
	App string

	// Module is the base Elixir module name (e.g. "HelloWorld").
	Module string
}

// DeriveApp returns the application name inferred from the target path: its
// last path segment, resolved to an absolute path first so "." works.
func DeriveApp(targetDir string) string {
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return filepath.Base(targetDir)
	}
	return filepath.Base(abs)
}

// DeriveModule returns the module name derived from an application name by
// camel-casing its underscore-separated segments ("hello_world" -> "HelloWorld").
func DeriveModule(app string) string {
	var b strings.Builder
	capitalizeNext := true

	for _, r := range app {
		if r == '_' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			b.WriteRune(toUpper(r))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// ValidateApp checks an application name against the app name syntax.
// inferred indicates the name came from the target path rather than a flag;
// the error message then explains how to override it.
func ValidateApp(name string, inferred bool) error {
	if appNameRegex.MatchString(name) {
		return nil
	}

	msg := fmt.Sprintf("application name %q must start with a lower-case letter and contain only lower-case letters, digits, and underscores", name)
	hint := ""
	if inferred {
		hint = "The name was inferred from the target path. Pass --app to use a different application name."
	}

	return oerrors.NewIdentifierError(msg, hint)
}

// ValidateModule checks a module name against the module name syntax.
func ValidateModule(name string) error {
	if moduleNameRegex.MatchString(name) {
		return nil
	}

	return oerrors.NewIdentifierError(
		fmt.Sprintf("module name %q must be a dot-separated sequence of capitalized segments, like MyApp or MyApp.Admin", name),
		"",
	)
}

// CheckModuleAvailable verifies the fully-qualified module name is not already
// bound in the given registry. This is a best-effort safety net; a later
// compile of the generated project could still collide.
func CheckModuleAvailable(name string, registry NameRegistry) error {
	if !registry.IsTaken(name) {
		return nil
	}

	return oerrors.NewNameConflictError(
		fmt.Sprintf("module name %s is already taken", name),
		"Pass --module to use a different module name.",
	)
}
