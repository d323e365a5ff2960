package worktree

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/pkg/config"
)

type fakeRunner struct {
	calls [][]string
	errs  []error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return "", err
	}
	return "", nil
}

func newTestManager(r *fakeRunner) *Manager {
	return NewManager(
		&config.WorktreeConfig{RepoPath: "/repo", Root: "/worktrees", BaseRef: "main"},
		r,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestCreateWorktree(t *testing.T) {
	r := &fakeRunner{}
	m := newTestManager(r)

	path, err := m.Create(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "/worktrees/agent-a1", path)
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"git", "-C", "/repo", "worktree", "add", "-b", "agent/a1", "/worktrees/agent-a1", "main"}, r.calls[0])

	_, err = m.Create(context.Background(), "")
	assert.Error(t, err)
}

func TestDestroyIsIdempotent(t *testing.T) {
	r := &fakeRunner{errs: []error{
		errors.New("fatal: '/worktrees/agent-a1' is not a working tree"),
		errors.New("error: branch 'agent/a1' not found"),
	}}
	m := newTestManager(r)

	assert.NoError(t, m.Destroy(context.Background(), "a1"))
	require.Len(t, r.calls, 2)
	assert.Equal(t, []string{"git", "-C", "/repo", "worktree", "remove", "--force", "/worktrees/agent-a1"}, r.calls[0])
	assert.Equal(t, []string{"git", "-C", "/repo", "branch", "-D", "agent/a1"}, r.calls[1])
}

func TestDestroySurfacesRealFailures(t *testing.T) {
	r := &fakeRunner{errs: []error{
		errors.New("fatal: unable to access '/repo': permission denied"),
	}}
	m := newTestManager(r)

	assert.Error(t, m.Destroy(context.Background(), "a1"))
}

func TestBaseRefDefaultsToHead(t *testing.T) {
	r := &fakeRunner{}
	m := NewManager(
		&config.WorktreeConfig{RepoPath: "/repo", Root: "/worktrees"},
		r,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, err := m.Create(context.Background(), "a2")
	require.NoError(t, err)
	assert.Equal(t, "HEAD", r.calls[0][len(r.calls[0])-1])
}
