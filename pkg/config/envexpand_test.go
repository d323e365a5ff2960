package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_VALUE", "hunter2")

	out := ExpandEnv([]byte("api_key: {{.EXPAND_TEST_VALUE}}"))
	assert.Equal(t, "api_key: hunter2", string(out))
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("api_key: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "api_key: ", string(out))
}

func TestExpandEnvLeavesDollarsAlone(t *testing.T) {
	// Validator instructions carry regex anchors and shell fragments;
	// $-substitution would corrupt them.
	in := `criteria: "grep -E '^done$' && echo $HOME"`
	assert.Equal(t, in, string(ExpandEnv([]byte(in))))
}

func TestExpandEnvPassthroughOnBadTemplate(t *testing.T) {
	in := "notes: {{unclosed"
	assert.Equal(t, in, string(ExpandEnv([]byte(in))))
}
