package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Workflow holds the schema definition for the Workflow entity.
// One workflow is active at a time per orchestrator instance.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("goal_text").
			Comment("Declared goal injected into every agent prompt"),
		field.Bool("result_required").
			Default(false),
		field.JSON("result_criteria", []string{}).
			Optional().
			Comment("Verbatim criteria handed to result-validator agents"),
		field.Enum("on_result_found").
			Values("stop_all", "do_nothing").
			Default("stop_all"),
		field.JSON("board_config", map[string]interface{}{}).
			Optional().
			Comment("Kanban column set and ticket types for this workflow"),
		field.Bool("ticket_human_review").
			Default(false),
		field.Enum("status").
			Values("active", "completed").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("phases", Phase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tickets", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("results", WorkflowResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("diagnostic_runs", DiagnosticRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
