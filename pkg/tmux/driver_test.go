package tmux

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
	calls  [][]string
	output string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func newTestDriver(runner Runner) *Driver {
	return NewDriver(
		&config.SessionConfig{TmuxBinary: "tmux", AgentCommand: "agent-cli"},
		runner,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestCreate(t *testing.T) {
	r := &fakeRunner{}
	d := newTestDriver(r)

	require.NoError(t, d.Create(context.Background(), "hephaestus-abc", "/work/wt-1"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"tmux", "new-session", "-d", "-s", "hephaestus-abc", "-c", "/work/wt-1", "agent-cli"}, r.calls[0])

	assert.Error(t, d.Create(context.Background(), "", "/work"))
}

func TestInjectSendsTextThenEnter(t *testing.T) {
	r := &fakeRunner{}
	d := newTestDriver(r)

	require.NoError(t, d.Inject(context.Background(), "s1", "run the tests; status: done"))
	require.Len(t, r.calls, 2)
	// Literal mode keeps tmux from interpreting key names in the prompt.
	assert.Equal(t, []string{"tmux", "send-keys", "-t", "s1", "-l", "run the tests; status: done"}, r.calls[0])
	assert.Equal(t, []string{"tmux", "send-keys", "-t", "s1", "Enter"}, r.calls[1])
}

func TestCaptureDefaultsScrollback(t *testing.T) {
	r := &fakeRunner{output: "$ go test ./...\nok\n"}
	d := newTestDriver(r)

	out, err := d.Capture(context.Background(), "s1", 0)
	require.NoError(t, err)
	assert.Contains(t, out, "go test")
	assert.Equal(t, []string{"tmux", "capture-pane", "-p", "-t", "s1", "-S", "-200"}, r.calls[0])
}

func TestKillToleratesDeadSession(t *testing.T) {
	r := &fakeRunner{err: errors.New("tmux kill-session: can't find session: s1")}
	d := newTestDriver(r)

	assert.NoError(t, d.Kill(context.Background(), "s1"))

	r.err = errors.New("tmux: permission denied")
	assert.Error(t, d.Kill(context.Background(), "s1"))
}

func TestListParsesSessionNames(t *testing.T) {
	r := &fakeRunner{output: "hephaestus-a\nhephaestus-b\nuser-session\n"}
	d := newTestDriver(r)

	names, err := d.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"hephaestus-a", "hephaestus-b", "user-session"}, names)
}

func TestListNoServer(t *testing.T) {
	r := &fakeRunner{err: errors.New("tmux list-sessions: no server running on /tmp/tmux-0/default")}
	d := newTestDriver(r)

	names, err := d.List(context.Background())
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestAlive(t *testing.T) {
	r := &fakeRunner{}
	d := newTestDriver(r)

	alive, err := d.Alive(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, alive)

	r.err = errors.New("tmux has-session: no such session: s1")
	alive, err = d.Alive(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestIsNoSessionError(t *testing.T) {
	for _, msg := range []string{
		"no server running on /tmp/tmux-1000/default",
		"can't find session: x",
		"no such session: x",
		"session not found: x",
	} {
		assert.True(t, isNoSessionError(errors.New(msg)), msg)
	}
	assert.False(t, isNoSessionError(errors.New("connection refused")))
}
