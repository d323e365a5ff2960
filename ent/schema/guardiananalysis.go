package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GuardianAnalysis holds one per-agent trajectory judgement produced by
// the Guardian each monitoring cycle. Rows for one agent are totally
// ordered by timestamp; readers must see them in insertion order.
type GuardianAnalysis struct {
	ent.Schema
}

// Fields of the GuardianAnalysis.
func (GuardianAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("current_phase").
			Optional(),
		field.Float("alignment_score").
			Comment("0..1"),
		field.Bool("trajectory_aligned"),
		field.Text("trajectory_summary"),
		field.Bool("needs_steering"),
		field.Enum("steering_type").
			Values("stuck", "drifting", "violating_constraints", "idle",
				"missed_steps", "wrong_direction", "none").
			Default("none"),
		field.Text("steering_message").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the GuardianAnalysis.
func (GuardianAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "timestamp"),
	}
}
