package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "typelens.dev/pkg/typelens/internal/model"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	commands := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		commands[sub.Name()] = true
	}

	for _, name := range []string{"resolve", "query", "dynamic", "init", "version"} {
		assert.True(t, commands[name], "missing subcommand %s", name)
	}
}

func TestRootCmd_GraphFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup(graphFlagName)
	if assert.NotNil(t, flag) {
		assert.Equal(t, "g", flag.Shorthand)
	}
}

func TestParseRefs(t *testing.T) {
	refs := parseRefs([]string{"MyCustomView", "UIKit/UIView"})

	assert.Equal(t, []m.Ref{
		{Module: m.ModuleLocal, Name: "MyCustomView"},
		{Module: "UIKit", Name: "UIView"},
	}, refs)
}
