// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ConductorAnalysisDelete is the builder for deleting a ConductorAnalysis entity.
type ConductorAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *ConductorAnalysisMutation
}

// Where appends a list predicates to the ConductorAnalysisDelete builder.
func (_d *ConductorAnalysisDelete) Where(ps ...predicate.ConductorAnalysis) *ConductorAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConductorAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConductorAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConductorAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(conductoranalysis.Table, sqlgraph.NewFieldSpec(conductoranalysis.FieldID, field.TypeString))
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

// ConductorAnalysisDeleteOne is the builder for deleting a single ConductorAnalysis entity.
type ConductorAnalysisDeleteOne struct {
	_d *ConductorAnalysisDelete
}

// Where appends a list predicates to the ConductorAnalysisDelete builder.
func (_d *ConductorAnalysisDeleteOne) Where(ps ...predicate.ConductorAnalysis) *ConductorAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConductorAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{conductoranalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConductorAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
