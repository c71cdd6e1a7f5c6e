package scaffold

import (
	"github.com/forgeframework/forge/internal/output"
	"github.com/forgeframework/forge/internal/prompt"
)

// Options configures a generation run.
type Options struct {
	// TargetDir is the directory to generate the project in. "." generates
	// into the current directory without creating or confirming it.
	TargetDir string

	// App overrides the application name. Empty means infer it from the
	// target path's last segment.
	App string

	// Module overrides the module name. Empty means derive it from the
	// application name.
	Module string

	// Styles is the raw style flag input from the command line.
	Styles map[Style]bool

	// RuntimeVersion is the host Elixir version the generated project's
	// tooling requirements are stamped with.
	RuntimeVersion string
}

// Result describes a completed generation run.
type Result struct {
	// App is the validated application name.
	App string

	// Module is the validated module name.
	Module string

	// TargetDir is the directory the project was generated in.
	TargetDir string

	// Styles is the resolved style set.
	Styles StyleSet

	// Files are the written files, relative to TargetDir, with descriptions.
	Files []RenderedFile
}

// Generator runs the generation stages in order: validate identifiers,
// resolve styles, build assigns, build the plan, render, emit. Every stage
// before emission is free of side effects, and any of them can abort the run.
type Generator struct {
	opts     Options
	registry NameRegistry
	confirm  prompt.Confirmer
}

// NewGenerator creates a generator with its injected collaborators.
func NewGenerator(opts Options, registry NameRegistry, confirm prompt.Confirmer) *Generator {
	return &Generator{opts: opts, registry: registry, confirm: confirm}
}

// Generate runs the full generation pipeline.
func (g *Generator) Generate() (*Result, error) {
	ids, err := g.validate()
	if err != nil {
		return nil, err
	}

	styles := ResolveStyles(g.opts.Styles)

	assigns, err := BuildAssigns(ids, styles, g.opts.RuntimeVersion)
	if err != nil {
		return nil, err
	}

	plan := BuildPlan(assigns)

	output.Debug("generating project",
		"app", ids.App,
		"module", ids.Module,
		"styles", styles.String(),
		"target", g.opts.TargetDir,
		"files", len(plan))

	files, err := RenderPlan(plan, assigns)
	if err != nil {
		return nil, err
	}

	emitter := &Emitter{Confirm: g.confirm}
	if err := emitter.Emit(files, g.opts.TargetDir); err != nil {
		return nil, err
	}

	return &Result{
		App:       ids.App,
		Module:    ids.Module,
		TargetDir: g.opts.TargetDir,
		Styles:    styles,
		Files:     files,
	}, nil
}

// Plan resolves the run through the planning stage without touching the
// filesystem. Used for previews and tests.
func (g *Generator) Plan() ([]PlanEntry, error) {
	ids, err := g.validate()
	if err != nil {
		return nil, err
	}

	styles := ResolveStyles(g.opts.Styles)

	assigns, err := BuildAssigns(ids, styles, g.opts.RuntimeVersion)
	if err != nil {
		return nil, err
	}

	return BuildPlan(assigns), nil
}

// validate resolves and validates the identifier pair.
func (g *Generator) validate() (Identifiers, error) {
	app := g.opts.App
	appInferred := app == ""
	if appInferred {
		app = DeriveApp(g.opts.TargetDir)
	}

	if err := ValidateApp(app, appInferred); err != nil {
		return Identifiers{}, err
	}

	module := g.opts.Module
	if module == "" {
		module = DeriveModule(app)
	}

	if err := ValidateModule(module); err != nil {
		return Identifiers{}, err
	}

	if err := CheckModuleAvailable(module, g.registry); err != nil {
		return Identifiers{}, err
	}

	return Identifiers{App: app, Module: module}, nil
}
