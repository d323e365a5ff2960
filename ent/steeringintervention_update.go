// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
)

// SteeringInterventionUpdate is the builder for updating SteeringIntervention entities.
type SteeringInterventionUpdate struct {
	config
	hooks    []Hook
	mutation *SteeringInterventionMutation
}

// Where appends a list predicates to the SteeringInterventionUpdate builder.
func (_u *SteeringInterventionUpdate) Where(ps ...predicate.SteeringIntervention) *SteeringInterventionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSteeringType sets the "steering_type" field.
func (_u *SteeringInterventionUpdate) SetSteeringType(v string) *SteeringInterventionUpdate {
	_u.mutation.SetSteeringType(v)
	return _u
}

// SetNillableSteeringType sets the "steering_type" field if the given value is not nil.
func (_u *SteeringInterventionUpdate) SetNillableSteeringType(v *string) *SteeringInterventionUpdate {
	if v != nil {
		_u.SetSteeringType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *SteeringInterventionUpdate) SetMessage(v string) *SteeringInterventionUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *SteeringInterventionUpdate) SetNillableMessage(v *string) *SteeringInterventionUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetWasSuccessful sets the "was_successful" field.
func (_u *SteeringInterventionUpdate) SetWasSuccessful(v bool) *SteeringInterventionUpdate {
	_u.mutation.SetWasSuccessful(v)
	return _u
}

// SetNillableWasSuccessful sets the "was_successful" field if the given value is not nil.
func (_u *SteeringInterventionUpdate) SetNillableWasSuccessful(v *bool) *SteeringInterventionUpdate {
	if v != nil {
		_u.SetWasSuccessful(*v)
	}
	return _u
}

// ClearWasSuccessful clears the value of the "was_successful" field.
func (_u *SteeringInterventionUpdate) ClearWasSuccessful() *SteeringInterventionUpdate {
	_u.mutation.ClearWasSuccessful()
	return _u
}

// Mutation returns the SteeringInterventionMutation object of the builder.
func (_u *SteeringInterventionUpdate) Mutation() *SteeringInterventionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SteeringInterventionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SteeringInterventionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SteeringInterventionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SteeringInterventionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SteeringInterventionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(steeringintervention.Table, steeringintervention.Columns, sqlgraph.NewFieldSpec(steeringintervention.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SteeringType(); ok {
		_spec.SetField(steeringintervention.FieldSteeringType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(steeringintervention.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasSuccessful(); ok {
		_spec.SetField(steeringintervention.FieldWasSuccessful, field.TypeBool, value)
	}
	if _u.mutation.WasSuccessfulCleared() {
		_spec.ClearField(steeringintervention.FieldWasSuccessful, field.TypeBool)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steeringintervention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SteeringInterventionUpdateOne is the builder for updating a single SteeringIntervention entity.
type SteeringInterventionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SteeringInterventionMutation
}

// SetSteeringType sets the "steering_type" field.
func (_u *SteeringInterventionUpdateOne) SetSteeringType(v string) *SteeringInterventionUpdateOne {
	_u.mutation.SetSteeringType(v)
	return _u
}

// SetNillableSteeringType sets the "steering_type" field if the given value is not nil.
func (_u *SteeringInterventionUpdateOne) SetNillableSteeringType(v *string) *SteeringInterventionUpdateOne {
	if v != nil {
		_u.SetSteeringType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *SteeringInterventionUpdateOne) SetMessage(v string) *SteeringInterventionUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *SteeringInterventionUpdateOne) SetNillableMessage(v *string) *SteeringInterventionUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetWasSuccessful sets the "was_successful" field.
func (_u *SteeringInterventionUpdateOne) SetWasSuccessful(v bool) *SteeringInterventionUpdateOne {
	_u.mutation.SetWasSuccessful(v)
	return _u
}

// SetNillableWasSuccessful sets the "was_successful" field if the given value is not nil.
func (_u *SteeringInterventionUpdateOne) SetNillableWasSuccessful(v *bool) *SteeringInterventionUpdateOne {
	if v != nil {
		_u.SetWasSuccessful(*v)
	}
	return _u
}

// ClearWasSuccessful clears the value of the "was_successful" field.
func (_u *SteeringInterventionUpdateOne) ClearWasSuccessful() *SteeringInterventionUpdateOne {
	_u.mutation.ClearWasSuccessful()
	return _u
}

// Mutation returns the SteeringInterventionMutation object of the builder.
func (_u *SteeringInterventionUpdateOne) Mutation() *SteeringInterventionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SteeringInterventionUpdate builder.
func (_u *SteeringInterventionUpdateOne) Where(ps ...predicate.SteeringIntervention) *SteeringInterventionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SteeringInterventionUpdateOne) Select(field string, fields ...string) *SteeringInterventionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SteeringIntervention entity.
func (_u *SteeringInterventionUpdateOne) Save(ctx context.Context) (*SteeringIntervention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SteeringInterventionUpdateOne) SaveX(ctx context.Context) *SteeringIntervention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SteeringInterventionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SteeringInterventionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SteeringInterventionUpdateOne) sqlSave(ctx context.Context) (_node *SteeringIntervention, err error) {
	_spec := sqlgraph.NewUpdateSpec(steeringintervention.Table, steeringintervention.Columns, sqlgraph.NewFieldSpec(steeringintervention.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SteeringIntervention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, steeringintervention.FieldID)
		for _, f := range fields {
			if !steeringintervention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != steeringintervention.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SteeringType(); ok {
		_spec.SetField(steeringintervention.FieldSteeringType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(steeringintervention.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasSuccessful(); ok {
		_spec.SetField(steeringintervention.FieldWasSuccessful, field.TypeBool, value)
	}
	if _u.mutation.WasSuccessfulCleared() {
		_spec.ClearField(steeringintervention.FieldWasSuccessful, field.TypeBool)
	}
	_node = &SteeringIntervention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steeringintervention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
