package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"

	"modelgen/internal/cli"
	"modelgen/internal/engine"
	"modelgen/internal/exitcode"
	"modelgen/internal/log"
	"modelgen/internal/merge"
	"modelgen/internal/project"
	"modelgen/internal/registry"
	"modelgen/internal/resource"
	"modelgen/internal/validate"
	"modelgen/internal/version"
)

func main() {
	// An external interrupt short-circuits to the interrupt exit code
	// from any pipeline state. Scoped resource streams are the only
	// cleanup concern, and those are released by the read that holds
	// them.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		os.Exit(exitcode.InterruptExitCode())
	}()

	gen := engine.New()
	os.Exit(run(os.Args[1:], workingDir(), os.Stdout, os.Stderr, gen))
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// run executes the full pipeline and returns the process exit code.
// It is separated from main() to enable testing.
func run(args []string, workDir string, stdout, stderr io.Writer, gen engine.Generator) (code int) {
	// Nothing past this point may crash the process without a
	// diagnostic; an escaped panic is reported and mapped to the
	// generic error code.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Error: %v\n%s", r, debug.Stack())
			code = exitcode.Error
		}
	}()

	// help printing is the only way RunE is skipped on a nil error, and
	// help is a clean exit
	code = exitcode.OK
	root := &cobra.Command{
		Use:           "modelgen",
		Short:         "Generate data models from a schema document",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code = pipeline(cmd, workDir, stdout, stderr, gen)
			return nil
		},
	}
	cli.Register(root.Flags())

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitcode.Error
	}
	return code
}

// pipeline is the resolution-and-validation flow: load the project file,
// merge the three sources, validate, resolve resources, then hand the
// frozen config to the generation engine. The exit-code machine observes
// the outcome of every stage.
func pipeline(cmd *cobra.Command, workDir string, stdout, stderr io.Writer, gen engine.Generator) int {
	machine := exitcode.New()

	fail := func(err error) int {
		_ = machine.To(exitcode.StateValidationFailed)
		fmt.Fprintln(stderr, "Error:", err)
		return machine.ExitCode()
	}

	flags, err := cli.Collect(cmd.Flags())
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitcode.Error
	}

	fileValues, err := project.Load(workDir)
	if err != nil {
		_ = machine.To(exitcode.StateValidating)
		return fail(err)
	}

	if versionRequested(flags, fileValues) {
		_ = machine.To(exitcode.StateVersionRequested)
		fmt.Fprintln(stdout, version.Version)
		return machine.ExitCode()
	}

	_ = machine.To(exitcode.StateValidating)

	draft, err := merge.Resolve(fileValues, flags)
	if err != nil {
		return fail(err)
	}

	logger := log.New(stderr, draft.Bool(registry.Debug))

	if err := validate.Run(draft); err != nil {
		return fail(err)
	}

	aliases, err := resource.LoadAliases("alias mapping", draft.Resource(registry.Aliases))
	if err != nil {
		return fail(err)
	}
	templateData, err := resource.LoadTemplateData("extra template data", draft.Resource(registry.ExtraTemplateData))
	if err != nil {
		return fail(err)
	}

	cfg := draft.Freeze()
	for _, opt := range registry.All() {
		logger.Debug().
			Str("option", opt.Name).
			Str("source", cfg.Source(opt.Name).String()).
			Interface("value", cfg.Value(opt.Name)).
			Msg("resolved")
	}

	_ = machine.To(exitcode.StateReady)
	_ = machine.To(exitcode.StateHandedToEngine)

	err = gen.Generate(context.Background(), engine.Inputs{
		Config:       cfg,
		Aliases:      aliases,
		TemplateData: templateData,
	})
	if err != nil {
		_ = machine.To(exitcode.StateEngineFailed)
		if engine.IsInvalidClassName(err) {
			fmt.Fprintf(stderr, "Error: %v You have to set --class-name option\n", err)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return machine.ExitCode()
	}

	_ = machine.To(exitcode.StateEngineSucceeded)
	return machine.ExitCode()
}

// versionRequested checks the raw sources directly: version printing
// short-circuits before any merging or validation can fail.
func versionRequested(flags, fileValues map[string]any) bool {
	if v, ok := flags[registry.Version].(bool); ok {
		return v
	}
	if raw, ok := fileValues[registry.Version]; ok {
		v, err := merge.Coerce(mustDescribe(registry.Version), raw)
		if err == nil {
			b, _ := v.(bool)
			return b
		}
	}
	return false
}

func mustDescribe(name string) registry.Option {
	opt, err := registry.Describe(name)
	if err != nil {
		panic(err)
	}
	return opt
}
