package guardian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConstraints(t *testing.T) {
	tests := []struct {
		name   string
		notes  string
		expect []string
	}{
		{
			name: "imperative sentences are extracted",
			notes: "Work in the feature branch.\n" +
				"You MUST NOT push to main.\n" +
				"Never delete migration files.\n" +
				"Prefer small commits.",
			expect: []string{
				"You MUST NOT push to main.",
				"Never delete migration files.",
			},
		},
		{
			name:   "case insensitive",
			notes:  "do not edit generated code",
			expect: []string{"do not edit generated code"},
		},
		{
			name:   "required keyword",
			notes:  "A passing CI run is required before review.",
			expect: []string{"A passing CI run is required before review."},
		},
		{
			name:   "no constraints",
			notes:  "This phase focuses on the parser.",
			expect: []string{},
		},
		{
			name:   "empty notes",
			notes:  "",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ExtractConstraints(tt.notes))
		})
	}
}

func TestExtractHistoryContext(t *testing.T) {
	summaries := []string{
		"agent read the schema; operator said: you must not touch the users table",
		"operator said: you may now touch the users table\nremember to run the linter",
		"agent is writing the migration for invoices",
	}
	scrollback := "ERROR: relation invoices does not exist\n" +
		"$ go test ./...\n" +
		"error: relation invoices does not exist\n" +
		"always commit before switching branches\n" +
		"fatal: not a git repository"

	hc := extractHistoryContext(summaries, scrollback)

	assert.Contains(t, hc.Persistent, "agent read the schema; operator said: you must not touch the users table")
	assert.Contains(t, hc.Lifted, "operator said: you may now touch the users table")
	assert.Contains(t, hc.Standing, "remember to run the linter")
	assert.Contains(t, hc.Standing, "always commit before switching branches")
	assert.Equal(t, "agent is writing the migration for invoices", hc.CurrentFocus)

	// The repeated error line is a blocker, one-off failures are not.
	assert.Equal(t, []string{"error: relation invoices does not exist"}, hc.Blockers)
}

func TestExtractHistoryContextPhrases(t *testing.T) {
	tests := []struct {
		name string
		line string
		pick func(historyContext) []string
	}{
		{"lifted via you may now", "You may now push directly.", func(h historyContext) []string { return h.Lifted }},
		{"lifted via no longer need to", "you no longer need to gate on CI", func(h historyContext) []string { return h.Lifted }},
		{"lifted via no longer required", "Review is no longer required here.", func(h historyContext) []string { return h.Lifted }},
		{"standing via always", "Always squash before merging.", func(h historyContext) []string { return h.Standing }},
		{"standing via remember", "remember the API freeze", func(h historyContext) []string { return h.Standing }},
		{"persistent via cannot", "You cannot change the public API.", func(h historyContext) []string { return h.Persistent }},
		{"persistent via never", "never force-push", func(h historyContext) []string { return h.Persistent }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := extractHistoryContext([]string{tt.line}, "")
			assert.Equal(t, []string{tt.line}, tt.pick(hc))
		})
	}
}

func TestExtractHistoryContextEmptyHistory(t *testing.T) {
	hc := extractHistoryContext(nil, "")
	assert.Empty(t, hc.Persistent)
	assert.Empty(t, hc.Lifted)
	assert.Empty(t, hc.Standing)
	assert.Empty(t, hc.CurrentFocus)
	assert.Empty(t, hc.Blockers)
}
