package cmd

import (
	"context"

	"github.com/spf13/cobra"

	m "typelens.dev/pkg/typelens/internal/model"
)

// queryCmd groups the structural query subcommands.
var queryCmd = newQueryCmd()

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run structural queries against the graph",
		Long: `Ask structural questions about declared types. Descendant queries answer
with a tri-state: true, false, or unknown when the superclass chain ends at
an opaque external symbol before the candidate base was reached.

` + graphFileHelp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newDescendsCmd())
	cmd.AddCommand(newConformsCmd())

	return cmd
}

func newDescendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "descends <type> <base>",
		Short: "Check whether a type descends from a base type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			engine, _, err := loadEngine(ctx)
			if err != nil {
				return err
			}

			subject := m.ParseRef(args[0])
			base := m.ParseRef(args[1])

			truth, err := engine.IsDescendantOf(subject, base)
			if err != nil {
				return err
			}

			return buildUI(cmd).DisplayDescends(ctx, subject, base, truth)
		},
	}
}

func newConformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conforms <type> <protocol>",
		Short: "Check whether a type's effective protocol set carries a protocol",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			engine, _, err := loadEngine(ctx)
			if err != nil {
				return err
			}

			subject := m.ParseRef(args[0])
			protocol := m.ParseRef(args[1])

			conforms, err := engine.ConformsTo(subject, protocol)
			if err != nil {
				return err
			}

			return buildUI(cmd).DisplayConformance(ctx, subject, protocol, conforms)
		},
	}
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
