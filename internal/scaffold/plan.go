package scaffold

import (
	"fmt"
	"strings"
)

// PlanEntry is one resolved file of a generation plan.
type PlanEntry struct {
	// Path is the file's path relative to the target directory.
	Path string

	// Template is the name of the template that renders the file.
	Template string

	// Description is a short label shown in the post-generation summary.
	Description string
}

// planSpec is one statically authored row of the plan table.
type planSpec struct {
	path        func(a *Assigns) string
	template    string
	description string
	include     func(a *Assigns) bool
}

func fixed(path string) func(*Assigns) string {
	return func(*Assigns) string { return path }
}

func always(*Assigns) bool { return true }

// planTable is the full file set, ordered so directories are populated
// top-down. Predicates reference only the boolean style assigns.
var planTable = []planSpec{
	{fixed("README.md"), "README.md", "Project overview", always},
	{fixed(".formatter.exs"), "formatter.exs", "Formatter configuration", always},
	{fixed("mix.exs"), "mix.exs", "Dependencies and build", always},
	{fixed("config/config.exs"), "config.exs", "Compile-time configuration", always},
	{fixed("config/runtime.exs"), "runtime.exs", "Runtime configuration", always},
	{libFile("application.ex"), "application.ex", "Application entry point", always},
	{libFile("repo.ex"), "repo.ex", "Database repository", always},
	{libFile("auth.ex"), "auth.ex", "Authorization checks", always},
	{libFile("endpoint.ex"), "endpoint.ex", "HTTP endpoint", always},
	{libFile("router.ex"), "router.ex", "Request routing", always},
	{libFile("schema.ex"), "schema.ex", "GraphQL schema",
		func(a *Assigns) bool { return a.GraphQL }},
	{fixed("test/test_helper.exs"), "test_helper.exs", "Test bootstrap", always},
	{restTestFile, "rest_test.exs", "REST smoke test",
		func(a *Assigns) bool { return a.REST }},
}

func libFile(name string) func(*Assigns) string {
	return func(a *Assigns) string {
		return "lib/" + a.SnakeModule + "/" + name
	}
}

// restTestFile flattens a nested snake module for the test file name:
// "shop/admin" -> "test/shop_admin_rest_test.exs".
func restTestFile(a *Assigns) string {
	flat := strings.ReplaceAll(a.SnakeModule, "/", "_")
	return "test/" + flat + "_rest_test.exs"
}

// BuildPlan resolves the static plan table against the assigns. Every
// predicate is evaluated before any file is written, so the file set is
// known up front and can be inspected without side effects. A pure function
// of the assigns: identical assigns always yield an identical plan.
func BuildPlan(a *Assigns) []PlanEntry {
	entries := make([]PlanEntry, 0, len(planTable))
	for _, spec := range planTable {
		if !spec.include(a) {
			continue
		}
		entries = append(entries, PlanEntry{
			Path:        spec.path(a),
			Template:    spec.template,
			Description: spec.description,
		})
	}
	return entries
}

// RenderedFile is a plan entry with its rendered content.
type RenderedFile struct {
	Path        string
	Description string
	Content     []byte
}

// RenderPlan renders every entry of a plan against the assigns.
func RenderPlan(plan []PlanEntry, a *Assigns) ([]RenderedFile, error) {
	files := make([]RenderedFile, 0, len(plan))
	for _, entry := range plan {
		t, err := GetTemplate(entry.Template)
		if err != nil {
			return nil, err
		}

		content, err := t.Render(a)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", entry.Path, err)
		}

		files = append(files, RenderedFile{
			Path:        entry.Path,
			Description: entry.Description,
			Content:     []byte(content),
		})
	}
	return files, nil
}
