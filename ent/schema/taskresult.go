package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskResult is a task-level markdown result submitted by an agent.
// Immutable once stored except for verification status flips.
type TaskResult struct {
	ent.Schema
}

// Fields of the TaskResult.
func (TaskResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("markdown_path").
			Immutable(),
		field.Text("markdown_content").
			Immutable(),
		field.Enum("result_type").
			Values("implementation", "analysis", "fix", "design", "test", "documentation").
			Immutable(),
		field.Text("summary").
			Immutable(),
		field.Enum("verification_status").
			Values("unverified", "verified", "disputed").
			Default("unverified"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("verified_at").
			Optional().
			Nillable(),
		field.String("verified_by_validation_id").
			Optional().
			Nillable(),
	}
}

// Edges of the TaskResult.
func (TaskResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("results").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskResult.
func (TaskResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("agent_id"),
	}
}
