package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typelens.dev/pkg/typelens/internal/domain"
	m "typelens.dev/pkg/typelens/internal/model"
)

// placeholderSymbol lets an unknown ref still occupy a display row.
func placeholderSymbol(ref m.Ref) *m.Symbol {
	return &m.Symbol{Name: ref.Name, Module: ref.Module, Kind: m.KindClass}
}

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [refs...]",
		Short: "Resolve effective superclass chains and protocol sets",
		Long: `Resolve the named classes (default: every class in the graph) to their
effective superclass chain and effective protocol set, with alias
indirection expanded and opaque termination marked.

` + graphFileHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			engine, _, err := loadEngine(ctx)
			if err != nil {
				return err
			}

			var outcomes []domain.Outcome

			if len(args) == 0 {
				threads := viper.GetInt(parallelConfigKey)

				outcomes, err = engine.ResolveAll(ctx, threads)
				if err != nil {
					return err
				}
			} else {
				for _, ref := range parseRefs(args) {
					sym, ok := engine.Graph().Lookup(ref)
					if !ok {
						outcomes = append(outcomes, domain.Outcome{
							Symbol: placeholderSymbol(ref),
							Err:    &domain.UnknownSymbolError{Ref: ref},
						})

						continue
					}

					resolved, err := engine.ResolveType(ref)
					outcomes = append(outcomes, domain.Outcome{Symbol: sym, Type: resolved, Err: err})
				}
			}

			return buildUI(cmd).DisplayOutcomes(ctx, outcomes)
		},
	}

	configureResolveFlags(cmd)

	return cmd
}

func configureResolveFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of resolution workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
