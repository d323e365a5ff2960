// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/ticketblock"
)

// TicketBlock is the model entity for the TicketBlock schema.
type TicketBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BlockerID holds the value of the "blocker_id" field.
	BlockerID string `json:"blocker_id,omitempty"`
	// BlockedID holds the value of the "blocked_id" field.
	BlockedID string `json:"blocked_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketblock.FieldID, ticketblock.FieldBlockerID, ticketblock.FieldBlockedID:
			values[i] = new(sql.NullString)
		case ticketblock.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketBlock fields.
func (_m *TicketBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketblock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticketblock.FieldBlockerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocker_id", values[i])
			} else if value.Valid {
				_m.BlockerID = value.String
			}
		case ticketblock.FieldBlockedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_id", values[i])
			} else if value.Valid {
				_m.BlockedID = value.String
			}
		case ticketblock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TicketBlock.
// This includes values selected through modifiers, order, etc.
func (_m *TicketBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TicketBlock.
// Note that you need to call TicketBlock.Unwrap() before calling this method if this TicketBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketBlock) Update() *TicketBlockUpdateOne {
	return NewTicketBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketBlock) Unwrap() *TicketBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketBlock) String() string {
	var builder strings.Builder
	builder.WriteString("TicketBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blocker_id=")
	builder.WriteString(_m.BlockerID)
	builder.WriteString(", ")
	builder.WriteString("blocked_id=")
	builder.WriteString(_m.BlockedID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketBlocks is a parsable slice of TicketBlock.
type TicketBlocks []*TicketBlock
