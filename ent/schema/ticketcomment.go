package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketComment holds the schema definition for the TicketComment entity.
type TicketComment struct {
	ent.Schema
}

// Fields of the TicketComment.
func (TicketComment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("comment_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("author_agent_id").
			Optional(),
		field.Text("text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TicketComment.
func (TicketComment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "created_at"),
	}
}
