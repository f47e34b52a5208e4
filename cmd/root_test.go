package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"score", "leads", "serve", "initconfig"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestScoreCommandFlags(t *testing.T) {
	for _, flag := range []string{"format", "output", "save", "concurrency", "no-scrape"} {
		assert.NotNil(t, scoreCmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
	assert.Equal(t, "table", scoreCmd.Flags().Lookup("format").DefValue)
}
