package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosticRun records one spawn of the workflow-doctor agent, including
// the stall statistics that triggered it.
type DiagnosticRun struct {
	ent.Schema
}

// Fields of the DiagnosticRun.
func (DiagnosticRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("diagnostic_run_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.Time("triggered_at").
			Default(time.Now).
			Immutable(),
		field.JSON("trigger_stats", map[string]interface{}{}).
			Optional().
			Comment("Task counts and time since last activity at trigger time"),
		field.JSON("tasks_created_ids", []string{}).
			Optional(),
		field.Text("diagnosis").
			Optional(),
		field.Enum("status").
			Values("created", "running", "completed", "failed").
			Default("created"),
	}
}

// Edges of the DiagnosticRun.
func (DiagnosticRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("diagnostic_runs").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DiagnosticRun.
func (DiagnosticRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "triggered_at"),
	}
}
