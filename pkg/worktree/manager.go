// Package worktree gives each agent an isolated filesystem view of the
// project repository via git worktrees. Worktrees are disjoint so no two
// agents write the same file.
package worktree

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
)

// Manager creates and destroys per-agent git worktrees.
type Manager struct {
	runner   tmux.Runner
	repoPath string
	baseRef  string
	root     string
	logger   *slog.Logger
}

// NewManager creates a worktree manager from config.
func NewManager(cfg *config.WorktreeConfig, runner tmux.Runner, logger *slog.Logger) *Manager {
	if runner == nil {
		runner = tmux.ExecRunner{}
	}
	baseRef := cfg.BaseRef
	if baseRef == "" {
		baseRef = "HEAD"
	}
	return &Manager{
		runner:   runner,
		repoPath: cfg.RepoPath,
		baseRef:  baseRef,
		root:     cfg.Root,
		logger:   logger.With("component", "worktree"),
	}
}

// RepoPath returns the main project repository path.
func (m *Manager) RepoPath() string {
	return m.repoPath
}

// Path returns the worktree directory for an agent.
func (m *Manager) Path(agentID string) string {
	return filepath.Join(m.root, "agent-"+agentID)
}

// branchName returns the branch each worktree is created on.
func (m *Manager) branchName(agentID string) string {
	return "agent/" + agentID
}

// Create makes a fresh worktree for the agent, branched from the base ref.
func (m *Manager) Create(ctx context.Context, agentID string) (string, error) {
	if agentID == "" {
		return "", fmt.Errorf("agent ID is empty")
	}
	path := m.Path(agentID)
	_, err := m.runner.Run(ctx, "git", "-C", m.repoPath,
		"worktree", "add", "-b", m.branchName(agentID), path, m.baseRef)
	if err != nil {
		return "", fmt.Errorf("failed to create worktree for agent %s: %w", agentID, err)
	}
	m.logger.Info("worktree created", "agent_id", agentID, "path", path)
	return path, nil
}

// Destroy removes the agent's worktree and its branch. Idempotent: a
// missing worktree is not an error.
func (m *Manager) Destroy(ctx context.Context, agentID string) error {
	path := m.Path(agentID)
	_, err := m.runner.Run(ctx, "git", "-C", m.repoPath,
		"worktree", "remove", "--force", path)
	if err != nil && !isMissingWorktreeError(err) {
		return fmt.Errorf("failed to remove worktree for agent %s: %w", agentID, err)
	}

	_, err = m.runner.Run(ctx, "git", "-C", m.repoPath,
		"branch", "-D", m.branchName(agentID))
	if err != nil && !isMissingBranchError(err) {
		return fmt.Errorf("failed to delete branch for agent %s: %w", agentID, err)
	}
	m.logger.Info("worktree destroyed", "agent_id", agentID, "path", path)
	return nil
}

func isMissingWorktreeError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "is not a working tree") ||
		strings.Contains(msg, "No such file or directory") ||
		strings.Contains(msg, "does not exist")
}

func isMissingBranchError(err error) bool {
	return strings.Contains(err.Error(), "not found")
}
