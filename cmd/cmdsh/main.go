// Command cmdsh hosts the interpreter as a standalone binary: `run`
// dispatches a single batch token vector and exits with its result code,
// `repl` drives the interactive loop against stdin/stdout/stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/aiseeq/cmdsh/pkg/cmdconfig"
	"github.com/aiseeq/cmdsh/pkg/dispatch"
	"github.com/aiseeq/cmdsh/pkg/pipeline"
	"github.com/aiseeq/cmdsh/pkg/render"
	"github.com/aiseeq/cmdsh/pkg/repl"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

var version = "dev"

var (
	flagConfig         string
	flagPrecedence     string
	flagNoDefaultBuilt bool
	flagVerbose        bool
	flagNoColor        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		render.NewErrorWriter().WithVerbose(flagVerbose).WithNoColor(flagNoColor).Write(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "cmdsh",
	Short:   "cmdsh - a reflection-driven command interpreter",
	Long:    "cmdsh hosts a reflection-driven command interpreter: register handler types, then dispatch batch lines or drive an interactive REPL against them.",
	Version: version,
}

var runCmd = &cobra.Command{
	Use:                "run -- <command and arguments>",
	Short:              "Dispatch a single token vector and exit with its result code",
	DisableFlagParsing: true,
	RunE:               runRun,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-eval loop",
	RunE:  runRepl,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a .cmdshrc.yaml (defaults to searching upward from the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagPrecedence, "precedence", "", "pipeline filter-precedence string, e.g. \"<>|\" or \"|<>\"")
	rootCmd.PersistentFlags().BoolVar(&flagNoDefaultBuilt, "no-default-builtins", false, "suppress help/get/set/echo/more/find (exit/quit remain available)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "attach a captured stack trace to unhandled errors")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored error output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
}

func loadConfig() (*cmdconfig.Config, error) {
	var (
		cfg *cmdconfig.Config
		err error
	)

	if flagConfig != "" {
		cfg, err = cmdconfig.LoadConfig(flagConfig)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, err = cmdconfig.LoadConfigWithDefaults(cwd)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagPrecedence != "" {
		cfg.Interpreter.Precedence = flagPrecedence
	}
	if flagNoDefaultBuilt {
		cfg.Interpreter.DefaultBuiltins = cmdconfig.BoolPtr(false)
	}
	if flagVerbose {
		cfg.Interpreter.Verbose = cmdconfig.BoolPtr(true)
	}

	return cfg, nil
}

func buildInterpreter(cfg *cmdconfig.Config) (*dispatch.Dispatcher, error) {
	d := dispatch.New(cfg.DispatchConfig())
	if err := d.Registry().AddHandler(&demoCommands{}, demoRegOptions()...); err != nil {
		return nil, fmt.Errorf("failed to register demo commands: %w", err)
	}
	return d, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := buildInterpreter(cfg)
	if err != nil {
		return err
	}

	// Flag parsing is disabled for `run`, so cobra hands the "--"
	// separator through as an argument.
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	stages, err := pipeline.SplitStages(args, cfg.Interpreter.Precedence)
	if err != nil {
		return err
	}

	streams := stdio.StdIO{In: os.Stdin, Out: colorableStdout(), Err: colorableStderr()}
	code := pipeline.Run(context.Background(), d, streams, stages)
	os.Exit(code)
	return nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := buildInterpreter(cfg)
	if err != nil {
		return err
	}

	loop, err := repl.New(d, cfg.ReplConfig(), os.Stdin, colorableStdout(), colorableStderr())
	if err != nil {
		return fmt.Errorf("failed to start repl: %w", err)
	}

	code := loop.Run(context.Background())
	os.Exit(code)
	return nil
}

// colorableStdout/colorableStderr wrap the process streams so ANSI color
// codes (render.ErrorWriter, fatih/color) render correctly on Windows
// consoles; elsewhere they pass bytes straight through.
func colorableStdout() io.Writer { return colorable.NewColorableStdout() }

func colorableStderr() io.Writer { return colorable.NewColorableStderr() }
