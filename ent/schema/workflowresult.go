package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowResult is a workflow-level candidate result. At most one row per
// workflow ever reaches status=validated.
type WorkflowResult struct {
	ent.Schema
}

// Fields of the WorkflowResult.
func (WorkflowResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_result_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("markdown_path").
			Immutable(),
		field.Text("markdown_content").
			Immutable(),
		field.Enum("status").
			Values("pending_validation", "validated", "rejected").
			Default("pending_validation"),
		field.Text("validation_feedback").
			Optional().
			Nillable(),
		field.JSON("validation_evidence", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("validated_at").
			Optional().
			Nillable(),
		field.String("validated_by_agent_id").
			Optional().
			Nillable(),
	}
}

// Edges of the WorkflowResult.
func (WorkflowResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("results").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowResult.
func (WorkflowResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "status"),
	}
}
