package controller

import (
	"bytes"
	"context"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"typelens.dev/pkg/typelens/internal/domain"
	m "typelens.dev/pkg/typelens/internal/model"
)

// SimpleUI implements UI using cobra Command's output with plain tables.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayOutcomes renders one row per class with its resolved chain,
// protocol set and terminus.
func (s *SimpleUI) DisplayOutcomes(ctx context.Context, outcomes []domain.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Class", "Superclass Chain", "Protocols", "Terminus"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	// Chains can run long; keep each one on a single row.
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	opaqueCount := 0
	failedCount := 0

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failedCount++

			table.Append([]string{outcome.Symbol.Ref().String(), "error: " + outcome.Err.Error(), "", ""})

			continue
		}

		if outcome.Type.TerminatedAtOpaque {
			opaqueCount++
		}

		table.Append([]string{
			outcome.Symbol.Ref().String(),
			FormatChain(outcome.Type),
			FormatProtocols(outcome.Type),
			FormatTerminus(outcome.Type),
		})
	}

	table.Render()

	s.cmd.Printf("\n%s\n", buf.String())
	s.cmd.Printf("%d class(es), %d opaque-terminated, %d failed\n", len(outcomes), opaqueCount, failedCount)

	return nil
}

// DisplayDescends prints the tri-state descendant answer.
func (s *SimpleUI) DisplayDescends(ctx context.Context, subject, base m.Ref, truth m.Truth) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("%s descends from %s: %s\n", subject, base, truth)

	return nil
}

// DisplayConformance prints the conformance answer.
func (s *SimpleUI) DisplayConformance(ctx context.Context, subject, protocol m.Ref, conforms bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("%s conforms to %s: %t\n", subject, protocol, conforms)

	return nil
}

// DisplayDynamic renders one row per binding site with its resolution.
func (s *SimpleUI) DisplayDynamic(ctx context.Context, bindings []m.DynamicBinding, resolutions []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Key", "Site", "Literal", "State", "Candidates"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for i, binding := range bindings {
		literal := "(not static)"
		if binding.HasLiteral() {
			literal = *binding.Literal
		}

		table.Append([]string{
			binding.Key,
			binding.SiteID,
			literal,
			resolutions[i].State.String(),
			FormatCandidates(resolutions[i]),
		})
	}

	table.Render()

	s.cmd.Printf("\n%s\n", buf.String())

	return nil
}

// FormatChain renders a superclass chain nearest first, marking the opaque
// terminus.
func FormatChain(rt *m.ResolvedType) string {
	if len(rt.SuperclassChain) == 0 {
		return "(root)"
	}

	parts := make([]string, 0, len(rt.SuperclassChain))

	for _, sym := range rt.SuperclassChain {
		name := sym.Ref().String()
		if sym.IsOpaque() {
			name += " (opaque)"
		}

		parts = append(parts, name)
	}

	return strings.Join(parts, " -> ")
}

// FormatProtocols renders the effective protocol set in resolution order.
func FormatProtocols(rt *m.ResolvedType) string {
	if len(rt.Protocols) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(rt.Protocols))

	for _, sym := range rt.Protocols {
		name := sym.Ref().String()
		if sym.IsOpaque() {
			name += " (opaque)"
		}

		parts = append(parts, name)
	}

	return strings.Join(parts, ", ")
}

// FormatTerminus names how a chain ended.
func FormatTerminus(rt *m.ResolvedType) string {
	if rt.TerminatedAtOpaque {
		return "opaque"
	}

	return "root"
}

// FormatCandidates renders resolution candidates in their deterministic
// order.
func FormatCandidates(res m.Resolution) string {
	if len(res.Candidates) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(res.Candidates))
	for _, sym := range res.Candidates {
		parts = append(parts, sym.Ref().String())
	}

	return strings.Join(parts, ", ")
}
