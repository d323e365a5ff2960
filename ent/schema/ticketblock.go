package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketBlock is a blocker edge in the ticket DAG: blocker_id blocks
// blocked_id. Acyclicity is enforced at insert time by the ticket engine.
type TicketBlock struct {
	ent.Schema
}

// Fields of the TicketBlock.
func (TicketBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("block_id").
			Unique().
			Immutable(),
		field.String("blocker_id").
			Immutable(),
		field.String("blocked_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TicketBlock.
func (TicketBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blocker_id", "blocked_id").
			Unique(),
		index.Fields("blocked_id"),
	}
}
