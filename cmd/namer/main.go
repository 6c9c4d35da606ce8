// Command namer is the thin CLI collaborator around the IUPAC naming
// library: it reads an already-parsed connection table from stdin,
// runs it through the naming pipeline, and prints the result. It
// contains no nomenclature logic of its own, only flag parsing and
// wiring into the library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RxnWeaver/iupac/config"
	"github.com/RxnWeaver/iupac/engine"
	"github.com/RxnWeaver/iupac/morpheme"
)

// rootOptions holds the root command's flags.
type rootOptions struct {
	configPath  string
	showTrace   bool
	showMetrics bool
	output      string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "namer",
		Short:         "Assign an IUPAC 2013 name to a connection table read from stdin",
		Long:          "namer reads an already-parsed molfile/SMILES connection table (JSON) from\nstdin, runs it through the naming pipeline, and prints the resulting name.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (defaults applied if omitted)")
	pf.BoolVar(&opts.showTrace, "trace", false, "print the full rule trace alongside the name")
	pf.BoolVar(&opts.showMetrics, "metrics", false, "print a one-shot metrics summary after naming")
	pf.StringVarP(&opts.output, "output", "o", "text", "output format: text or json")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	o, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	config.Apply(o)

	logger, err := newLogger(o.Log)
	if err != nil {
		return fmt.Errorf("namer: building logger: %w", err)
	}
	defer logger.Sync()

	svc, err := morpheme.Load(o.Morpheme.DataPath)
	if err != nil {
		return fmt.Errorf("namer: loading morpheme tables: %w", err)
	}

	m, err := readConnectionTable(cmd.InOrStdin())
	if err != nil {
		return err
	}

	pipeline := engine.New(svc)
	pipeline.SetLogger(logger)

	var mt *cliMetrics
	if opts.showMetrics {
		mt, err = newCLIMetrics()
		if err != nil {
			return fmt.Errorf("namer: building metrics: %w", err)
		}
		pipeline.SetMetrics(mt.metrics)
	}

	result := pipeline.Run(m)

	if err := printResult(cmd, opts, result); err != nil {
		return err
	}
	if mt != nil {
		mt.printSummary(cmd.OutOrStdout())
	}
	return nil
}

// loadConfig loads o from configPath when given, or from IUPAC_*
// environment variables and spec defaults otherwise.
func loadConfig(configPath string) (*config.Options, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadFromEnv()
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.Set(lc.Level); err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if lc.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
