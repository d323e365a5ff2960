// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// GuardianAnalysisDelete is the builder for deleting a GuardianAnalysis entity.
type GuardianAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *GuardianAnalysisMutation
}

// Where appends a list predicates to the GuardianAnalysisDelete builder.
func (_d *GuardianAnalysisDelete) Where(ps ...predicate.GuardianAnalysis) *GuardianAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GuardianAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GuardianAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GuardianAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(guardiananalysis.Table, sqlgraph.NewFieldSpec(guardiananalysis.FieldID, field.TypeString))
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

// GuardianAnalysisDeleteOne is the builder for deleting a single GuardianAnalysis entity.
type GuardianAnalysisDeleteOne struct {
	_d *GuardianAnalysisDelete
}

// Where appends a list predicates to the GuardianAnalysisDelete builder.
func (_d *GuardianAnalysisDeleteOne) Where(ps ...predicate.GuardianAnalysis) *GuardianAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GuardianAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{guardiananalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GuardianAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
