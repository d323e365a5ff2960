// Code generated by ent, DO NOT EDIT.

package ticketblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ticketblock type in the database.
	Label = "ticket_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "block_id"
	// FieldBlockerID holds the string denoting the blocker_id field in the database.
	FieldBlockerID = "blocker_id"
	// FieldBlockedID holds the string denoting the blocked_id field in the database.
	FieldBlockedID = "blocked_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the ticketblock in the database.
	Table = "ticket_blocks"
)

// Columns holds all SQL columns for ticketblock fields.
var Columns = []string{
	FieldID,
	FieldBlockerID,
	FieldBlockedID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TicketBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlockerID orders the results by the blocker_id field.
func ByBlockerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockerID, opts...).ToFunc()
}

// ByBlockedID orders the results by the blocked_id field.
func ByBlockedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
