package cmd

import (
	"context"
	"slices"

	"github.com/spf13/cobra"

	m "typelens.dev/pkg/typelens/internal/model"
)

// dynamicCmd represents the dynamic command.
var dynamicCmd = newDynamicCmd()

func newDynamicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dynamic [keys...]",
		Short: "Resolve string-keyed dynamic class references",
		Long: `Resolve the graph document's dynamic bindings (optionally filtered by key)
against the declared classes. A binding resolves only when its value was
observed as a compile-time literal; runtime-computed values report as
unresolvable rather than guessed.

` + graphFileHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			engine, bindings, err := loadEngine(ctx)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				bindings = slices.DeleteFunc(bindings, func(b m.DynamicBinding) bool {
					return !slices.Contains(args, b.Key)
				})
			}

			resolutions := make([]m.Resolution, 0, len(bindings))
			for _, binding := range bindings {
				resolutions = append(resolutions, engine.ResolveDynamicName(binding))
			}

			return buildUI(cmd).DisplayDynamic(ctx, bindings, resolutions)
		},
	}
}

func init() {
	rootCmd.AddCommand(dynamicCmd)
}
