// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// GuardianAnalysisUpdate is the builder for updating GuardianAnalysis entities.
type GuardianAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *GuardianAnalysisMutation
}

// Where appends a list predicates to the GuardianAnalysisUpdate builder.
func (_u *GuardianAnalysisUpdate) Where(ps ...predicate.GuardianAnalysis) *GuardianAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *GuardianAnalysisUpdate) SetCurrentPhase(v string) *GuardianAnalysisUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableCurrentPhase(v *string) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *GuardianAnalysisUpdate) ClearCurrentPhase() *GuardianAnalysisUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetAlignmentScore sets the "alignment_score" field.
func (_u *GuardianAnalysisUpdate) SetAlignmentScore(v float64) *GuardianAnalysisUpdate {
	_u.mutation.ResetAlignmentScore()
	_u.mutation.SetAlignmentScore(v)
	return _u
}

// SetNillableAlignmentScore sets the "alignment_score" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableAlignmentScore(v *float64) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetAlignmentScore(*v)
	}
	return _u
}

// AddAlignmentScore adds value to the "alignment_score" field.
func (_u *GuardianAnalysisUpdate) AddAlignmentScore(v float64) *GuardianAnalysisUpdate {
	_u.mutation.AddAlignmentScore(v)
	return _u
}

// SetTrajectoryAligned sets the "trajectory_aligned" field.
func (_u *GuardianAnalysisUpdate) SetTrajectoryAligned(v bool) *GuardianAnalysisUpdate {
	_u.mutation.SetTrajectoryAligned(v)
	return _u
}

// SetNillableTrajectoryAligned sets the "trajectory_aligned" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableTrajectoryAligned(v *bool) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetTrajectoryAligned(*v)
	}
	return _u
}

// SetTrajectorySummary sets the "trajectory_summary" field.
func (_u *GuardianAnalysisUpdate) SetTrajectorySummary(v string) *GuardianAnalysisUpdate {
	_u.mutation.SetTrajectorySummary(v)
	return _u
}

// SetNillableTrajectorySummary sets the "trajectory_summary" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableTrajectorySummary(v *string) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetTrajectorySummary(*v)
	}
	return _u
}

// SetNeedsSteering sets the "needs_steering" field.
func (_u *GuardianAnalysisUpdate) SetNeedsSteering(v bool) *GuardianAnalysisUpdate {
	_u.mutation.SetNeedsSteering(v)
	return _u
}

// SetNillableNeedsSteering sets the "needs_steering" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableNeedsSteering(v *bool) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetNeedsSteering(*v)
	}
	return _u
}

// SetSteeringType sets the "steering_type" field.
func (_u *GuardianAnalysisUpdate) SetSteeringType(v guardiananalysis.SteeringType) *GuardianAnalysisUpdate {
	_u.mutation.SetSteeringType(v)
	return _u
}

// SetNillableSteeringType sets the "steering_type" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableSteeringType(v *guardiananalysis.SteeringType) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetSteeringType(*v)
	}
	return _u
}

// SetSteeringMessage sets the "steering_message" field.
func (_u *GuardianAnalysisUpdate) SetSteeringMessage(v string) *GuardianAnalysisUpdate {
	_u.mutation.SetSteeringMessage(v)
	return _u
}

// SetNillableSteeringMessage sets the "steering_message" field if the given value is not nil.
func (_u *GuardianAnalysisUpdate) SetNillableSteeringMessage(v *string) *GuardianAnalysisUpdate {
	if v != nil {
		_u.SetSteeringMessage(*v)
	}
	return _u
}

// ClearSteeringMessage clears the value of the "steering_message" field.
func (_u *GuardianAnalysisUpdate) ClearSteeringMessage() *GuardianAnalysisUpdate {
	_u.mutation.ClearSteeringMessage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *GuardianAnalysisUpdate) SetDetails(v map[string]interface{}) *GuardianAnalysisUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *GuardianAnalysisUpdate) ClearDetails() *GuardianAnalysisUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the GuardianAnalysisMutation object of the builder.
func (_u *GuardianAnalysisUpdate) Mutation() *GuardianAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GuardianAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuardianAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GuardianAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuardianAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuardianAnalysisUpdate) check() error {
	if v, ok := _u.mutation.SteeringType(); ok {
		if err := guardiananalysis.SteeringTypeValidator(v); err != nil {
			return &ValidationError{Name: "steering_type", err: fmt.Errorf(`ent: validator failed for field "GuardianAnalysis.steering_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GuardianAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guardiananalysis.Table, guardiananalysis.Columns, sqlgraph.NewFieldSpec(guardiananalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(guardiananalysis.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(guardiananalysis.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.AlignmentScore(); ok {
		_spec.SetField(guardiananalysis.FieldAlignmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlignmentScore(); ok {
		_spec.AddField(guardiananalysis.FieldAlignmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TrajectoryAligned(); ok {
		_spec.SetField(guardiananalysis.FieldTrajectoryAligned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TrajectorySummary(); ok {
		_spec.SetField(guardiananalysis.FieldTrajectorySummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsSteering(); ok {
		_spec.SetField(guardiananalysis.FieldNeedsSteering, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SteeringType(); ok {
		_spec.SetField(guardiananalysis.FieldSteeringType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SteeringMessage(); ok {
		_spec.SetField(guardiananalysis.FieldSteeringMessage, field.TypeString, value)
	}
	if _u.mutation.SteeringMessageCleared() {
		_spec.ClearField(guardiananalysis.FieldSteeringMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(guardiananalysis.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(guardiananalysis.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guardiananalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GuardianAnalysisUpdateOne is the builder for updating a single GuardianAnalysis entity.
type GuardianAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GuardianAnalysisMutation
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *GuardianAnalysisUpdateOne) SetCurrentPhase(v string) *GuardianAnalysisUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableCurrentPhase(v *string) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *GuardianAnalysisUpdateOne) ClearCurrentPhase() *GuardianAnalysisUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetAlignmentScore sets the "alignment_score" field.
func (_u *GuardianAnalysisUpdateOne) SetAlignmentScore(v float64) *GuardianAnalysisUpdateOne {
	_u.mutation.ResetAlignmentScore()
	_u.mutation.SetAlignmentScore(v)
	return _u
}

// SetNillableAlignmentScore sets the "alignment_score" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableAlignmentScore(v *float64) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetAlignmentScore(*v)
	}
	return _u
}

// AddAlignmentScore adds value to the "alignment_score" field.
func (_u *GuardianAnalysisUpdateOne) AddAlignmentScore(v float64) *GuardianAnalysisUpdateOne {
	_u.mutation.AddAlignmentScore(v)
	return _u
}

// SetTrajectoryAligned sets the "trajectory_aligned" field.
func (_u *GuardianAnalysisUpdateOne) SetTrajectoryAligned(v bool) *GuardianAnalysisUpdateOne {
	_u.mutation.SetTrajectoryAligned(v)
	return _u
}

// SetNillableTrajectoryAligned sets the "trajectory_aligned" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableTrajectoryAligned(v *bool) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetTrajectoryAligned(*v)
	}
	return _u
}

// SetTrajectorySummary sets the "trajectory_summary" field.
func (_u *GuardianAnalysisUpdateOne) SetTrajectorySummary(v string) *GuardianAnalysisUpdateOne {
	_u.mutation.SetTrajectorySummary(v)
	return _u
}

// SetNillableTrajectorySummary sets the "trajectory_summary" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableTrajectorySummary(v *string) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetTrajectorySummary(*v)
	}
	return _u
}

// SetNeedsSteering sets the "needs_steering" field.
func (_u *GuardianAnalysisUpdateOne) SetNeedsSteering(v bool) *GuardianAnalysisUpdateOne {
	_u.mutation.SetNeedsSteering(v)
	return _u
}

// SetNillableNeedsSteering sets the "needs_steering" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableNeedsSteering(v *bool) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetNeedsSteering(*v)
	}
	return _u
}

// SetSteeringType sets the "steering_type" field.
func (_u *GuardianAnalysisUpdateOne) SetSteeringType(v guardiananalysis.SteeringType) *GuardianAnalysisUpdateOne {
	_u.mutation.SetSteeringType(v)
	return _u
}

// SetNillableSteeringType sets the "steering_type" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableSteeringType(v *guardiananalysis.SteeringType) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetSteeringType(*v)
	}
	return _u
}

// SetSteeringMessage sets the "steering_message" field.
func (_u *GuardianAnalysisUpdateOne) SetSteeringMessage(v string) *GuardianAnalysisUpdateOne {
	_u.mutation.SetSteeringMessage(v)
	return _u
}

// SetNillableSteeringMessage sets the "steering_message" field if the given value is not nil.
func (_u *GuardianAnalysisUpdateOne) SetNillableSteeringMessage(v *string) *GuardianAnalysisUpdateOne {
	if v != nil {
		_u.SetSteeringMessage(*v)
	}
	return _u
}

// ClearSteeringMessage clears the value of the "steering_message" field.
func (_u *GuardianAnalysisUpdateOne) ClearSteeringMessage() *GuardianAnalysisUpdateOne {
	_u.mutation.ClearSteeringMessage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *GuardianAnalysisUpdateOne) SetDetails(v map[string]interface{}) *GuardianAnalysisUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *GuardianAnalysisUpdateOne) ClearDetails() *GuardianAnalysisUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the GuardianAnalysisMutation object of the builder.
func (_u *GuardianAnalysisUpdateOne) Mutation() *GuardianAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the GuardianAnalysisUpdate builder.
func (_u *GuardianAnalysisUpdateOne) Where(ps ...predicate.GuardianAnalysis) *GuardianAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GuardianAnalysisUpdateOne) Select(field string, fields ...string) *GuardianAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GuardianAnalysis entity.
func (_u *GuardianAnalysisUpdateOne) Save(ctx context.Context) (*GuardianAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuardianAnalysisUpdateOne) SaveX(ctx context.Context) *GuardianAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GuardianAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuardianAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuardianAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.SteeringType(); ok {
		if err := guardiananalysis.SteeringTypeValidator(v); err != nil {
			return &ValidationError{Name: "steering_type", err: fmt.Errorf(`ent: validator failed for field "GuardianAnalysis.steering_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GuardianAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *GuardianAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guardiananalysis.Table, guardiananalysis.Columns, sqlgraph.NewFieldSpec(guardiananalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GuardianAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, guardiananalysis.FieldID)
		for _, f := range fields {
			if !guardiananalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != guardiananalysis.FieldID {
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
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(guardiananalysis.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(guardiananalysis.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.AlignmentScore(); ok {
		_spec.SetField(guardiananalysis.FieldAlignmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlignmentScore(); ok {
		_spec.AddField(guardiananalysis.FieldAlignmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TrajectoryAligned(); ok {
		_spec.SetField(guardiananalysis.FieldTrajectoryAligned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TrajectorySummary(); ok {
		_spec.SetField(guardiananalysis.FieldTrajectorySummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsSteering(); ok {
		_spec.SetField(guardiananalysis.FieldNeedsSteering, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SteeringType(); ok {
		_spec.SetField(guardiananalysis.FieldSteeringType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SteeringMessage(); ok {
		_spec.SetField(guardiananalysis.FieldSteeringMessage, field.TypeString, value)
	}
	if _u.mutation.SteeringMessageCleared() {
		_spec.ClearField(guardiananalysis.FieldSteeringMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(guardiananalysis.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(guardiananalysis.FieldDetails, field.TypeJSON)
	}
	_node = &GuardianAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guardiananalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
