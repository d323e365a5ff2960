// Package tmux drives detached terminal sessions hosting the AI coding
// agent CLI. One session per agent; sessions outlive tool calls and retain
// scrollback for Guardian capture.
package tmux

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hephaestus-ai/hephaestus/pkg/config"
)

// Runner executes a command and returns combined output. Factored out so
// tests can run against a fake instead of a real tmux server.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Driver manages tmux sessions through the tmux CLI.
type Driver struct {
	runner       Runner
	tmuxBinary   string
	agentCommand string
	logger       *slog.Logger
}

// NewDriver creates a session driver from config.
func NewDriver(cfg *config.SessionConfig, runner Runner, logger *slog.Logger) *Driver {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Driver{
		runner:       runner,
		tmuxBinary:   cfg.TmuxBinary,
		agentCommand: cfg.AgentCommand,
		logger:       logger.With("component", "tmux"),
	}
}

// Create starts a detached session named name running the configured agent
// command in workDir.
func (d *Driver) Create(ctx context.Context, name, workDir string) error {
	if name == "" {
		return fmt.Errorf("session name is empty")
	}
	_, err := d.runner.Run(ctx, d.tmuxBinary,
		"new-session", "-d", "-s", name, "-c", workDir, d.agentCommand)
	if err != nil {
		return fmt.Errorf("failed to create session %s: %w", name, err)
	}
	d.logger.Info("session created", "session", name, "workdir", workDir)
	return nil
}

// Capture returns the last n lines of the session's scrollback.
func (d *Driver) Capture(ctx context.Context, name string, nLines int) (string, error) {
	if nLines <= 0 {
		nLines = 200
	}
	out, err := d.runner.Run(ctx, d.tmuxBinary,
		"capture-pane", "-p", "-t", name, "-S", fmt.Sprintf("-%d", nLines))
	if err != nil {
		return "", fmt.Errorf("failed to capture session %s: %w", name, err)
	}
	return out, nil
}

// Inject types text followed by Enter into the session, as a user would.
// Asynchronous with respect to the child process.
func (d *Driver) Inject(ctx context.Context, name, text string) error {
	// Literal flag keeps tmux from interpreting key names inside the text.
	if _, err := d.runner.Run(ctx, d.tmuxBinary,
		"send-keys", "-t", name, "-l", text); err != nil {
		return fmt.Errorf("failed to inject into session %s: %w", name, err)
	}
	if _, err := d.runner.Run(ctx, d.tmuxBinary,
		"send-keys", "-t", name, "Enter"); err != nil {
		return fmt.Errorf("failed to send Enter to session %s: %w", name, err)
	}
	return nil
}

// Kill terminates the session. Killing an already-dead session is not an
// error.
func (d *Driver) Kill(ctx context.Context, name string) error {
	_, err := d.runner.Run(ctx, d.tmuxBinary, "kill-session", "-t", name)
	if err != nil {
		if isNoSessionError(err) {
			return nil
		}
		return fmt.Errorf("failed to kill session %s: %w", name, err)
	}
	d.logger.Info("session killed", "session", name)
	return nil
}

// List returns the names of all live sessions. Used for orphan detection.
func (d *Driver) List(ctx context.Context) ([]string, error) {
	out, err := d.runner.Run(ctx, d.tmuxBinary,
		"list-sessions", "-F", "#{session_name}")
	if err != nil {
		// No server running means no sessions.
		if isNoSessionError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Alive reports whether a session with the given name exists.
func (d *Driver) Alive(ctx context.Context, name string) (bool, error) {
	_, err := d.runner.Run(ctx, d.tmuxBinary, "has-session", "-t", name)
	if err != nil {
		if isNoSessionError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check session %s: %w", name, err)
	}
	return true, nil
}

func isNoSessionError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "no server running") ||
		strings.Contains(msg, "can't find session") ||
		strings.Contains(msg, "no such session") ||
		strings.Contains(msg, "session not found")
}
