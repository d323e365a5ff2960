package ticketing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hephaestus-ai/hephaestus/ent"
)

func TestKeywordScore(t *testing.T) {
	t.Run("empty inputs score zero", func(t *testing.T) {
		assert.Zero(t, keywordScore(nil, "anything"))
		assert.Zero(t, keywordScore([]string{"payment"}, ""))
		assert.Zero(t, keywordScore([]string{"payment"}, "unrelated ticket"))
	})

	t.Run("bounded in [0, 1)", func(t *testing.T) {
		s := keywordScore([]string{"login"}, "login login login login login login")
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t,
			keywordScore([]string{"login"}, "login fails"),
			keywordScore([]string{"login"}, "LOGIN fails"))
	})

	t.Run("more matched terms score higher", func(t *testing.T) {
		both := keywordScore([]string{"login", "broken"}, "The login page is broken")
		one := keywordScore([]string{"login", "timeout"}, "The login page is broken")
		assert.Greater(t, both, one)
	})

	t.Run("term frequency saturates", func(t *testing.T) {
		once := keywordScore([]string{"login"}, "login page alpha beta")
		twice := keywordScore([]string{"login"}, "login login alpha beta")
		thrice := keywordScore([]string{"login"}, "login login login beta")
		assert.Greater(t, twice, once)
		assert.Greater(t, thrice, twice)
		// Each extra mention is worth less than the one before.
		assert.Less(t, thrice-twice, twice-once)
	})

	t.Run("matches in long texts are discounted", func(t *testing.T) {
		short := keywordScore([]string{"login"}, "login broken")
		long := keywordScore([]string{"login"},
			"login broken "+strings.Repeat("and a great deal of surrounding narrative ", 20))
		assert.Greater(t, short, long)
	})
}

func TestStringsFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    map[string]interface{}
		key    string
		expect []string
	}{
		{
			name:   "string slice",
			cfg:    map[string]interface{}{"columns": []string{"open", "doing", "done"}},
			key:    "columns",
			expect: []string{"open", "doing", "done"},
		},
		{
			name:   "interface slice from JSON decoding",
			cfg:    map[string]interface{}{"columns": []interface{}{"open", "done"}},
			key:    "columns",
			expect: []string{"open", "done"},
		},
		{
			name:   "non-string entries skipped",
			cfg:    map[string]interface{}{"columns": []interface{}{"open", 42}},
			key:    "columns",
			expect: []string{"open"},
		},
		{
			name:   "missing key",
			cfg:    map[string]interface{}{},
			key:    "columns",
			expect: nil,
		},
		{
			name:   "wrong type",
			cfg:    map[string]interface{}{"columns": "open"},
			key:    "columns",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, stringsFromConfig(tt.cfg, tt.key))
		})
	}
}

func TestBoardColumnsFirstIsInitialStatus(t *testing.T) {
	wf := &ent.Workflow{
		BoardConfig: map[string]interface{}{
			"columns":      []interface{}{"triage", "in_progress", "done"},
			"ticket_types": []interface{}{"bug", "feature"},
		},
	}

	cols := boardColumns(wf)
	assert.Equal(t, []string{"triage", "in_progress", "done"}, cols)
	assert.Equal(t, []string{"bug", "feature"}, boardTicketTypes(wf))
	assert.Equal(t, "triage", cols[0])
}
