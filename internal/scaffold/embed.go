package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// registry holds the parsed template set, keyed by template name (the file
// name without the .tmpl suffix). Populated once at startup; templates are
// static data and a parse failure is a build defect, so init panics.
var registry = map[string]*Template{}

func init() {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("scaffold: reading embedded templates: %v", err))
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmpl") {
			continue
		}

		source, err := fs.ReadFile(templateFS, "templates/"+e.Name())
		if err != nil {
			panic(fmt.Sprintf("scaffold: reading template %s: %v", e.Name(), err))
		}

		name := strings.TrimSuffix(e.Name(), ".tmpl")
		registry[name] = mustParse(name, string(source))
	}
}

// GetTemplate returns a parsed template by name.
func GetTemplate(name string) (*Template, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	return t, nil
}

// TemplateNames returns all registered template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
