package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
// Tickets are kanban-style work items; the status column set comes from
// the workflow's board config, so status is a plain string here.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("title"),
		field.Text("description"),
		field.String("ticket_type"),
		field.String("status"),
		field.Enum("priority").
			Values("low", "med", "high").
			Default("med"),
		field.String("created_by_agent_id").
			Optional(),
		field.Bool("resolved").
			Default(false),
		field.Text("resolution_comment").
			Optional().
			Nillable(),
		field.Enum("approval_status").
			Values("not_required", "pending_review", "approved", "rejected").
			Default("not_required"),
		field.JSON("title_embedding", []float32{}).
			Optional().
			Comment("Embedding of title+description for semantic search"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("tickets").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "status"),
		index.Fields("resolved"),
		index.Fields("approval_status"),
	}
}
