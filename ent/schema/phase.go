package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Phase holds the schema definition for the Phase entity.
// Phases are immutable after workflow start.
type Phase struct {
	ent.Schema
}

// Fields of the Phase.
func (Phase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("phase_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.Int("number").
			Immutable().
			Comment("Small monotonic integer per workflow: 1, 2, 3..."),
		field.String("name").
			Immutable(),
		field.Text("description").
			Immutable(),
		field.JSON("done_definitions", []string{}).
			Comment("Ordered done-definition sentences"),
		field.Text("additional_notes").
			Optional().
			Comment("Free-form system-prompt snippet for agents in this phase"),
		field.Bool("validation_enabled").
			Default(false),
		field.JSON("validation_criteria", []string{}).
			Optional(),
		field.Text("validator_instructions").
			Optional(),
	}
}

// Edges of the Phase.
func (Phase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("phases").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Phase.
func (Phase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "number").
			Unique(),
	}
}
