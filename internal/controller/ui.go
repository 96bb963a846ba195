// Package controller provides output front-ends for displaying resolution
// results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"typelens.dev/pkg/typelens/internal/domain"
	m "typelens.dev/pkg/typelens/internal/model"
)

// UI defines the interface for displaying query results. Implementations
// can use different output methods (plain tables, interactive TUI).
type UI interface {
	// DisplayOutcomes shows per-class resolution results: the effective
	// superclass chain, the effective protocol set, and how the chain
	// terminated.
	DisplayOutcomes(ctx context.Context, outcomes []domain.Outcome) error
	// DisplayDescends shows the tri-state answer to a descendant query.
	DisplayDescends(ctx context.Context, subject, base m.Ref, truth m.Truth) error
	// DisplayConformance shows the answer to a conformance query.
	DisplayConformance(ctx context.Context, subject, protocol m.Ref, conforms bool) error
	// DisplayDynamic shows the resolution of dynamic bindings, one row per
	// binding site.
	DisplayDynamic(ctx context.Context, bindings []m.DynamicBinding, resolutions []m.Resolution) error
}

// NewUI selects an interactive TUI when the output is a terminal, a plain
// table UI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
