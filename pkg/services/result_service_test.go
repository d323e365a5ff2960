package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

func TestValidateMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		wantErr bool
	}{
		{name: "valid", path: "results/summary.md", content: "# done"},
		{name: "empty path", path: "", content: "x", wantErr: true},
		{name: "path traversal", path: "../../etc/passwd", content: "x", wantErr: true},
		{name: "content at limit", path: "a.md", content: strings.Repeat("x", MaxResultBytes)},
		{name: "content over limit", path: "a.md", content: strings.Repeat("x", MaxResultBytes+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMarkdown(tt.path, tt.content)
			if tt.wantErr {
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveTaskResultAndVerify(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tasks := NewTaskService(client)
	results := NewResultService(client)
	wf := seedWorkflow(t, client)
	tk := seedTask(t, tasks, wf.ID, "")

	r, err := results.SaveTaskResult(ctx, tk.ID, "agent-1", "results/r1.md", "# findings", "implementation", "implemented the parser")
	require.NoError(t, err)
	assert.Equal(t, taskresult.VerificationStatusUnverified, r.VerificationStatus)

	review, err := results.SaveValidationReview(ctx, tk.ID, "val-1", 1, true, "all criteria met", map[string]any{"tests": "pass"})
	require.NoError(t, err)

	require.NoError(t, results.VerifyTaskResults(ctx, tk.ID, review.ID))

	got, err := results.GetTaskResult(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, taskresult.VerificationStatusVerified, got.VerificationStatus)
	require.NotNil(t, got.VerifiedByValidationID)
	assert.Equal(t, review.ID, *got.VerifiedByValidationID)
}

func TestSaveTaskResultRequiresSummary(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	results := NewResultService(client)

	_, err := results.SaveTaskResult(context.Background(), "t", "a", "r.md", "content", "implementation", "")
	assert.True(t, IsValidationError(err))
}

func TestWorkflowResultLifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	results := NewResultService(client)
	wf := seedWorkflow(t, client)

	first, err := results.SaveWorkflowResult(ctx, wf.ID, "agent-1", "results/final.md", "# answer")
	require.NoError(t, err)
	assert.Equal(t, workflowresult.StatusPendingValidation, first.Status)

	pending, err := results.PendingWorkflowResults(ctx, wf.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	validated, err := results.SetWorkflowResultVerdict(ctx, first.ID, "val-1", true, "", []string{"criterion 1 holds"})
	require.NoError(t, err)
	assert.Equal(t, workflowresult.StatusValidated, validated.Status)
	assert.NotNil(t, validated.ValidatedAt)

	// A decided result cannot be re-judged.
	_, err = results.SetWorkflowResultVerdict(ctx, first.ID, "val-2", false, "changed my mind", nil)
	assert.ErrorIs(t, err, ErrInvalidState)

	// Once a validated result exists, new submissions are refused.
	_, err = results.SaveWorkflowResult(ctx, wf.ID, "agent-2", "results/other.md", "# late")
	assert.ErrorIs(t, err, ErrInvalidState)

	got, err := results.ValidatedWorkflowResult(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestRejectedWorkflowResults(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	results := NewResultService(client)
	wf := seedWorkflow(t, client)

	for i := 0; i < 3; i++ {
		r, err := results.SaveWorkflowResult(ctx, wf.ID, "agent-1", "results/r.md", "# candidate")
		require.NoError(t, err)
		_, err = results.SetWorkflowResultVerdict(ctx, r.ID, "val-1", false, "criterion 2 unmet", nil)
		require.NoError(t, err)
	}

	rejected, err := results.RejectedWorkflowResults(ctx, wf.ID, 2)
	require.NoError(t, err)
	assert.Len(t, rejected, 2)
	for _, r := range rejected {
		assert.Equal(t, workflowresult.StatusRejected, r.Status)
		require.NotNil(t, r.ValidationFeedback)
		assert.Equal(t, "criterion 2 unmet", *r.ValidationFeedback)
	}

	_, err = results.ValidatedWorkflowResult(ctx, wf.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvidenceToStrings(t *testing.T) {
	assert.Nil(t, EvidenceToStrings(nil))
	assert.Nil(t, EvidenceToStrings(map[string]any{}))

	out := EvidenceToStrings(map[string]any{"tests": "pass"})
	require.Len(t, out, 1)
	assert.Equal(t, `tests: "pass"`, out[0])
}
