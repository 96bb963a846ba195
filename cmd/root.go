// Package cmd provides the root command and CLI setup for typelens.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"typelens.dev/pkg/typelens/internal/adapter"
	"typelens.dev/pkg/typelens/internal/controller"
	"typelens.dev/pkg/typelens/internal/domain"
	m "typelens.dev/pkg/typelens/internal/model"
)

var graphStore adapter.GraphStore

// graphPathFlag points at the declaration graph document to query.
var graphPathFlag string

// noTUIFlag forces plain table output even on a terminal.
var noTUIFlag bool

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	graphStore = adapter.NewLocalGraphStore()
}

const graphFileHelp = `The graph document is a YAML file produced by an ingestion step. It lists
every known symbol declaration (classes, protocols, aliases, opaque external
types) and the dynamic string bindings observed at call sites.`

const rootLongDescription = `Typelens answers structural questions about declared types: effective
superclass chains with alias indirection expanded, effective protocol sets
including composition aliases, and whether string-keyed dynamic class
references can be pinned to a declared type.

` + graphFileHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typelens",
		Short: "Symbol resolution engine for declaration graphs",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&graphPathFlag, graphFlagName, "g",
			viper.GetString(graphFlagName),
			"path to the declaration graph document",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(graphFlagName), graphFlagName)

	cmd.PersistentFlags().BoolVar(&noTUIFlag, noTUIFlagName, viper.GetBool(noTUIFlagName), "disable interactive output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noTUIFlagName), noTUIFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadEngine loads the configured graph document and builds an engine plus
// the bindings that came with it.
func loadEngine(ctx context.Context) (*domain.Engine, []m.DynamicBinding, error) {
	path := m.Path(viper.GetString(graphFlagName))

	g, bindings, err := graphStore.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	engine, err := domain.NewEngine(g)
	if err != nil {
		return nil, nil, err
	}

	return engine, bindings, nil
}

// buildUI picks the output front-end for a command invocation.
func buildUI(cmd *cobra.Command) controller.UI {
	interactive := controller.IsTTY(os.Stdout) && !viper.GetBool(noTUIFlagName)

	return controller.NewUI(cmd, interactive)
}

func parseRefs(args []string) []m.Ref {
	refs := make([]m.Ref, 0, len(args))
	for _, arg := range args {
		refs = append(refs, m.ParseRef(arg))
	}

	return refs
}
