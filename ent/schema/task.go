package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
//
// Invariants owned by this table:
//   - queue_position densely covers 1..N over all status=queued tasks
//   - queue_position non-null implies status=queued
//   - duplicate_of_task_id set iff status=duplicated; duplicated tasks
//     never get an agent
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("phase_id").
			Optional().
			Nillable().
			Comment("Null for diagnostic tasks"),
		field.String("ticket_id").
			Optional().
			Nillable(),
		field.String("parent_task_id").
			Optional().
			Nillable(),
		field.String("created_by_agent_id").
			Optional().
			Nillable(),
		field.Enum("agent_type").
			Values("phase", "validator", "result_validator", "diagnostic").
			Default("phase"),

		// Content
		field.Text("description"),
		field.Text("done_definition"),
		field.Enum("priority").
			Values("low", "med", "high").
			Default("med"),
		field.JSON("description_embedding", []float32{}).
			Optional().
			Comment("L2-normalised embedding for semantic dedup"),

		// State
		field.Enum("status").
			Values("pending", "queued", "assigned", "in_progress", "under_review",
				"validation_in_progress", "needs_work", "done", "failed", "duplicated").
			Default("pending"),
		field.Text("failure_reason").
			Optional().
			Nillable(),
		field.Text("completion_notes").
			Optional().
			Nillable(),
		field.String("duplicate_of_task_id").
			Optional().
			Nillable(),
		field.Float("similarity_score").
			Optional().
			Nillable(),

		// Queue
		field.Time("queued_at").
			Optional().
			Nillable(),
		field.Int("queue_position").
			Optional().
			Nillable().
			Comment("1-based dense position among queued tasks"),
		field.Bool("priority_boosted").
			Default(false),

		// Validation
		field.Bool("validation_enabled").
			Default(false),
		field.Int("validation_iteration").
			Default(0),
		field.Text("last_validation_feedback").
			Optional().
			Nillable(),
		field.Bool("review_done").
			Default(false),

		// Assignment
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("tasks").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.To("results", TaskResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("validation_reviews", ValidationReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workflow_id", "status"),
		index.Fields("workflow_id", "phase_id"),
		index.Fields("assigned_agent_id"),
		index.Fields("ticket_id"),
		index.Fields("status", "queued_at"),
	}
}
