package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgeframework/forge/internal/config"
	oerrors "github.com/forgeframework/forge/internal/errors"
	"github.com/forgeframework/forge/internal/output"
	"github.com/forgeframework/forge/internal/prompt"
	"github.com/forgeframework/forge/internal/scaffold"
	"github.com/forgeframework/forge/internal/version"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		appFlag     string
		moduleFlag  string
		graphqlFlag bool
		restFlag    bool
		forceFlag   bool
	)

	c := &cobra.Command{
		Use:   "new <path>",
		Short: "Generate a new Forge project",
		Long: `Generate a new Forge backend-service project at the given path.

The application name defaults to the last segment of the path and the module
name to its camel-cased form; both can be overridden. Style flags select the
API surface; with no style flags the project gets GraphQL support.

Examples:
  # Generate a GraphQL project (the default style)
  forge new hello_world

  # Generate into the current directory with explicit names
  forge new . --app shop --module Shop --rest

  # Generate a project with both API styles
  forge new storefront --graphql --rest`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(args[0], appFlag, moduleFlag, graphqlFlag, restFlag, forceFlag)
		},
	}

	c.Flags().StringVar(&appFlag, "app", "", "application name (defaults to the path's last segment)")
	c.Flags().StringVar(&moduleFlag, "module", "", "base module name (defaults to the camel-cased app name)")
	c.Flags().BoolVar(&graphqlFlag, "graphql", false, "include GraphQL schema and routing")
	c.Flags().BoolVar(&restFlag, "rest", false, "include REST routes and smoke test")
	c.Flags().BoolVar(&forceFlag, "force", false, "write into a non-empty directory without confirmation")

	return c
}

func runNew(targetDir, app, module string, graphql, rest, force bool) error {
	cfg, err := config.NewLoader().LoadWithDefaults(flagConfig)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	styles := map[scaffold.Style]bool{
		scaffold.StyleGraphQL: graphql,
		scaffold.StyleREST:    rest,
	}
	if !graphql && !rest && len(cfg.DefaultStyles) > 0 {
		output.Debug("applying configured default styles", "styles", cfg.DefaultStyles)
		for _, name := range cfg.DefaultStyles {
			styles[scaffold.Style(name)] = true
		}
	}

	opts := scaffold.Options{
		TargetDir:      targetDir,
		App:            app,
		Module:         module,
		Styles:         styles,
		RuntimeVersion: runtimeVersion(cfg),
	}

	var confirmer prompt.Confirmer = prompt.Terminal{}
	if force {
		confirmer = prompt.Auto(true)
	}

	gen := scaffold.NewGenerator(opts, scaffold.StdlibRegistry{}, confirmer)
	result, err := gen.Generate()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	printSummary(result)
	return nil
}

// runtimeVersion picks the Elixir version stamped into the generated
// project: the detected runtime when available, the configured override
// otherwise.
func runtimeVersion(cfg *config.Config) string {
	info := version.DetectElixir()
	if info.Found && info.Version != "" {
		return info.Version
	}

	output.Debug("elixir runtime not detected, using configured version",
		"version", cfg.ElixirVersion)
	return cfg.ElixirVersion
}

// printSummary prints the created-file tree and the bootstrap instructions.
func printSummary(result *scaffold.Result) {
	abs, err := filepath.Abs(result.TargetDir)
	if err != nil {
		abs = result.TargetDir
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render(result.App), abs)))
	output.Println("")

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f.Path] = f.Description
	}
	output.Print(output.RenderFileTree(result.App, files))

	var b strings.Builder
	b.WriteString("\nWe are almost there! Fetch dependencies and start your app:\n\n")
	if filepath.Clean(result.TargetDir) != "." {
		b.WriteString(fmt.Sprintf("    $ cd %s\n", result.TargetDir))
	}
	b.WriteString("    $ mix deps.get\n")
	b.WriteString("    $ mix forge.server\n")

	if result.Styles.Has(scaffold.StyleGraphQL) {
		b.WriteString("\nGraphQL playground:  http://localhost:4000/graphiql\n")
	}
	if result.Styles.Has(scaffold.StyleREST) {
		b.WriteString("\nREST API root:       http://localhost:4000/api\n")
	}

	output.Print(b.String())
}
