// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
)

// SteeringInterventionDelete is the builder for deleting a SteeringIntervention entity.
type SteeringInterventionDelete struct {
	config
	hooks    []Hook
	mutation *SteeringInterventionMutation
}

// Where appends a list predicates to the SteeringInterventionDelete builder.
func (_d *SteeringInterventionDelete) Where(ps ...predicate.SteeringIntervention) *SteeringInterventionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SteeringInterventionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SteeringInterventionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SteeringInterventionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(steeringintervention.Table, sqlgraph.NewFieldSpec(steeringintervention.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SteeringInterventionDeleteOne is the builder for deleting a single SteeringIntervention entity.
type SteeringInterventionDeleteOne struct {
	_d *SteeringInterventionDelete
}

// Where appends a list predicates to the SteeringInterventionDelete builder.
func (_d *SteeringInterventionDeleteOne) Where(ps ...predicate.SteeringIntervention) *SteeringInterventionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SteeringInterventionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{steeringintervention.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SteeringInterventionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
