package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"typelens.dev/pkg/typelens/internal/domain"
	m "typelens.dev/pkg/typelens/internal/model"
)

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	tuiOpaqueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	tuiFaintStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayOutcomes shows resolution results in a scrollable view. Short
// result sets are printed directly without entering the alternate screen.
func (t *TUI) DisplayOutcomes(ctx context.Context, outcomes []domain.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newOutcomeModel(outcomes)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayDescends prints the tri-state descendant answer.
func (t *TUI) DisplayDescends(ctx context.Context, subject, base m.Ref, truth m.Truth) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s descends from %s: %s\n", subject, base, styleTruth(truth))

	return err
}

// DisplayConformance prints the conformance answer.
func (t *TUI) DisplayConformance(ctx context.Context, subject, protocol m.Ref, conforms bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s conforms to %s: %t\n", subject, protocol, conforms)

	return err
}

// DisplayDynamic prints one line per binding site.
func (t *TUI) DisplayDynamic(ctx context.Context, bindings []m.DynamicBinding, resolutions []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("Dynamic references") + "\n")

	for i, binding := range bindings {
		literal := tuiFaintStyle.Render("(not static)")
		if binding.HasLiteral() {
			literal = *binding.Literal
		}

		fmt.Fprintf(&b, "  %s = %s  @%s\n", binding.Key, literal, binding.SiteID)
		fmt.Fprintf(&b, "    %s %s\n", resolutions[i].State, FormatCandidates(resolutions[i]))
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func styleTruth(truth m.Truth) string {
	if truth == m.Unknown {
		return tuiOpaqueStyle.Render(truth.String())
	}

	return truth.String()
}

// outcomeModel is the Bubble Tea model listing resolved classes.
type outcomeModel struct {
	rows     []string
	width    int
	height   int
	offset   int
	quitting bool
}

func newOutcomeModel(outcomes []domain.Outcome) outcomeModel {
	rows := make([]string, 0, len(outcomes)*3)

	for _, outcome := range outcomes {
		name := tuiTitleStyle.Render(outcome.Symbol.Ref().String())

		if outcome.Err != nil {
			rows = append(rows, name, "  "+tuiErrorStyle.Render(outcome.Err.Error()))
			continue
		}

		chain := FormatChain(outcome.Type)
		if outcome.Type.TerminatedAtOpaque {
			chain = tuiOpaqueStyle.Render(chain)
		}

		rows = append(rows,
			name,
			"  chain:     "+chain,
			"  protocols: "+FormatProtocols(outcome.Type),
		)
	}

	return outcomeModel{rows: rows}
}

func (om outcomeModel) Init() tea.Cmd {
	return nil
}

func (om outcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		om.width = msg.Width
		om.height = msg.Height

		return om, nil
	case tea.KeyMsg:
		return om.handleKeyPress(msg)
	}

	return om, nil
}

func (om outcomeModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		om.quitting = true
		return om, tea.Quit
	case "down", "j":
		if om.offset < om.maxOffset() {
			om.offset++
		}

		return om, nil
	case "up", "k":
		if om.offset > 0 {
			om.offset--
		}

		return om, nil
	}

	return om, nil
}

func (om outcomeModel) View() string {
	if om.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("Resolved types") + "\n\n")

	start := om.offset
	end := len(om.rows)

	if page := om.pageSize(); page > 0 && start+page < end {
		end = start + page
	}

	for _, row := range om.rows[start:end] {
		b.WriteString(row + "\n")
	}

	if om.needsPagination() {
		b.WriteString("\n" + tuiFaintStyle.Render("j/k scroll, q quit") + "\n")
	}

	return b.String()
}

// pageSize is the number of rows that fit below the title and above the
// footer. Zero means the terminal size is unknown.
func (om outcomeModel) pageSize() int {
	if om.height == 0 {
		return 0
	}

	const chrome = 5

	if om.height <= chrome {
		return 1
	}

	return om.height - chrome
}

func (om outcomeModel) maxOffset() int {
	page := om.pageSize()
	if page == 0 || len(om.rows) <= page {
		return 0
	}

	return len(om.rows) - page
}

func (om outcomeModel) needsPagination() bool {
	page := om.pageSize()

	return page > 0 && len(om.rows) > page
}
