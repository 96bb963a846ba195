package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typelens.dev/pkg/typelens/internal/domain"
	m "typelens.dev/pkg/typelens/internal/model"
)

func TestTUI_DisplayOutcomes_PrintsShortSets(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	rt := sampleResolved()
	err := ui.DisplayOutcomes(context.Background(), []domain.Outcome{{Symbol: rt.Symbol, Type: rt}})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Resolved types")
	assert.Contains(t, output, "MyCustomView")
	assert.Contains(t, output, "BaseView")
}

func TestOutcomeModel_Scrolling(t *testing.T) {
	outcomes := make([]domain.Outcome, 10)
	for i := range outcomes {
		rt := sampleResolved()
		outcomes[i] = domain.Outcome{Symbol: rt.Symbol, Type: rt}
	}

	model := newOutcomeModel(outcomes)
	model.height = 10
	model.width = 80

	require.True(t, model.needsPagination())

	// Scrolling past the end clamps at maxOffset.
	var current tea.Model = model
	for range 100 {
		current, _ = current.(outcomeModel).handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}

	scrolled := current.(outcomeModel)
	assert.Equal(t, scrolled.maxOffset(), scrolled.offset)

	// Scrolling back up clamps at zero.
	for range 100 {
		current, _ = current.(outcomeModel).handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	}

	assert.Equal(t, 0, current.(outcomeModel).offset)
}

func TestOutcomeModel_QuitKeys(t *testing.T) {
	model := newOutcomeModel(nil)

	for _, key := range []string{"q"} {
		updated, cmd := model.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		assert.NotNil(t, cmd, "key %q should quit", key)
		assert.Empty(t, updated.(outcomeModel).View())
	}
}

func TestTUI_DisplayDynamic(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	lit := "ProfileScreen"
	bindings := []m.DynamicBinding{{Key: "screen_name", Literal: &lit, SiteID: "Router.swift:42"}}
	resolutions := []m.Resolution{{State: m.Resolved, Candidates: []*m.Symbol{{Name: "ProfileScreen", Module: m.ModuleLocal, Kind: m.KindClass}}}}

	require.NoError(t, ui.DisplayDynamic(context.Background(), bindings, resolutions))

	assert.Contains(t, out.String(), "screen_name")
	assert.Contains(t, out.String(), "resolved")
}
