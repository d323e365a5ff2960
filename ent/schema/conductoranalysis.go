package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConductorAnalysis holds one system-wide coherence judgement per
// monitoring cycle (when at least two agents were eligible).
type ConductorAnalysis struct {
	ent.Schema
}

// Fields of the ConductorAnalysis.
func (ConductorAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conductor_analysis_id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Float("coherence_score").
			Comment("0..1"),
		field.Int("num_agents"),
		field.Text("system_status").
			Comment("3-5 sentence progress narrative"),
		field.Text("recommendations").
			Optional(),
		field.JSON("detected_duplicates", []map[string]interface{}{}).
			Optional().
			Comment("Pairs (agent_a, agent_b, similarity, work_description) after validator filtering"),
		field.JSON("termination_recommendations", []string{}).
			Optional(),
	}
}

// Indexes of the ConductorAnalysis.
func (ConductorAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
