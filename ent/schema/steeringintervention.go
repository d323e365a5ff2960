package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SteeringIntervention records a steering message injected into an agent's
// session. was_successful is filled in on the next monitoring cycle by
// comparing alignment scores.
type SteeringIntervention struct {
	ent.Schema
}

// Fields of the SteeringIntervention.
func (SteeringIntervention) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("intervention_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("guardian_analysis_id").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("steering_type"),
		field.Text("message"),
		field.Bool("was_successful").
			Optional().
			Nillable(),
	}
}

// Indexes of the SteeringIntervention.
func (SteeringIntervention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "timestamp"),
	}
}
