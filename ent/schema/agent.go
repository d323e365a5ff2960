package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// An agent owns exactly one tmux session and one worktree; both are
// destroyed on termination.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Enum("agent_type").
			Values("phase", "validator", "result_validator", "diagnostic").
			Default("phase"),
		field.Enum("status").
			Values("spawning", "working", "terminated", "failed").
			Default("spawning"),
		field.String("session_name").
			Comment("Opaque handle into the tmux driver"),
		field.String("worktree_path").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now),
		field.Bool("kept_alive_for_validation").
			Default(false),
		field.String("termination_reason").
			Optional().
			Nillable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("agents").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("task_id"),
		index.Fields("workflow_id", "status"),
		index.Fields("session_name"),
	}
}
