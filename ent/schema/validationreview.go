package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationReview records one validator verdict for a task validation
// iteration. Immutable once stored.
type ValidationReview struct {
	ent.Schema
}

// Fields of the ValidationReview.
func (ValidationReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("validator_agent_id").
			Immutable(),
		field.Int("iteration").
			Immutable(),
		field.Bool("validation_passed").
			Immutable(),
		field.Text("feedback").
			Immutable(),
		field.JSON("evidence", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ValidationReview.
func (ValidationReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("validation_reviews").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ValidationReview.
func (ValidationReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "iteration"),
	}
}
