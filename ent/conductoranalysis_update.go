// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ConductorAnalysisUpdate is the builder for updating ConductorAnalysis entities.
type ConductorAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *ConductorAnalysisMutation
}

// Where appends a list predicates to the ConductorAnalysisUpdate builder.
func (_u *ConductorAnalysisUpdate) Where(ps ...predicate.ConductorAnalysis) *ConductorAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCoherenceScore sets the "coherence_score" field.
func (_u *ConductorAnalysisUpdate) SetCoherenceScore(v float64) *ConductorAnalysisUpdate {
	_u.mutation.ResetCoherenceScore()
	_u.mutation.SetCoherenceScore(v)
	return _u
}

// SetNillableCoherenceScore sets the "coherence_score" field if the given value is not nil.
func (_u *ConductorAnalysisUpdate) SetNillableCoherenceScore(v *float64) *ConductorAnalysisUpdate {
	if v != nil {
		_u.SetCoherenceScore(*v)
	}
	return _u
}

// AddCoherenceScore adds value to the "coherence_score" field.
func (_u *ConductorAnalysisUpdate) AddCoherenceScore(v float64) *ConductorAnalysisUpdate {
	_u.mutation.AddCoherenceScore(v)
	return _u
}

// SetNumAgents sets the "num_agents" field.
func (_u *ConductorAnalysisUpdate) SetNumAgents(v int) *ConductorAnalysisUpdate {
	_u.mutation.ResetNumAgents()
	_u.mutation.SetNumAgents(v)
	return _u
}

// SetNillableNumAgents sets the "num_agents" field if the given value is not nil.
func (_u *ConductorAnalysisUpdate) SetNillableNumAgents(v *int) *ConductorAnalysisUpdate {
	if v != nil {
		_u.SetNumAgents(*v)
	}
	return _u
}

// AddNumAgents adds value to the "num_agents" field.
func (_u *ConductorAnalysisUpdate) AddNumAgents(v int) *ConductorAnalysisUpdate {
	_u.mutation.AddNumAgents(v)
	return _u
}

// SetSystemStatus sets the "system_status" field.
func (_u *ConductorAnalysisUpdate) SetSystemStatus(v string) *ConductorAnalysisUpdate {
	_u.mutation.SetSystemStatus(v)
	return _u
}

// SetNillableSystemStatus sets the "system_status" field if the given value is not nil.
func (_u *ConductorAnalysisUpdate) SetNillableSystemStatus(v *string) *ConductorAnalysisUpdate {
	if v != nil {
		_u.SetSystemStatus(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ConductorAnalysisUpdate) SetRecommendations(v string) *ConductorAnalysisUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_u *ConductorAnalysisUpdate) SetNillableRecommendations(v *string) *ConductorAnalysisUpdate {
	if v != nil {
		_u.SetRecommendations(*v)
	}
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ConductorAnalysisUpdate) ClearRecommendations() *ConductorAnalysisUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDetectedDuplicates sets the "detected_duplicates" field.
func (_u *ConductorAnalysisUpdate) SetDetectedDuplicates(v []map[string]interface{}) *ConductorAnalysisUpdate {
	_u.mutation.SetDetectedDuplicates(v)
	return _u
}

// AppendDetectedDuplicates appends value to the "detected_duplicates" field.
func (_u *ConductorAnalysisUpdate) AppendDetectedDuplicates(v []map[string]interface{}) *ConductorAnalysisUpdate {
	_u.mutation.AppendDetectedDuplicates(v)
	return _u
}

// ClearDetectedDuplicates clears the value of the "detected_duplicates" field.
func (_u *ConductorAnalysisUpdate) ClearDetectedDuplicates() *ConductorAnalysisUpdate {
	_u.mutation.ClearDetectedDuplicates()
	return _u
}

// SetTerminationRecommendations sets the "termination_recommendations" field.
func (_u *ConductorAnalysisUpdate) SetTerminationRecommendations(v []string) *ConductorAnalysisUpdate {
	_u.mutation.SetTerminationRecommendations(v)
	return _u
}

// AppendTerminationRecommendations appends value to the "termination_recommendations" field.
func (_u *ConductorAnalysisUpdate) AppendTerminationRecommendations(v []string) *ConductorAnalysisUpdate {
	_u.mutation.AppendTerminationRecommendations(v)
	return _u
}

// ClearTerminationRecommendations clears the value of the "termination_recommendations" field.
func (_u *ConductorAnalysisUpdate) ClearTerminationRecommendations() *ConductorAnalysisUpdate {
	_u.mutation.ClearTerminationRecommendations()
	return _u
}

// Mutation returns the ConductorAnalysisMutation object of the builder.
func (_u *ConductorAnalysisUpdate) Mutation() *ConductorAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConductorAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConductorAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConductorAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConductorAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConductorAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conductoranalysis.Table, conductoranalysis.Columns, sqlgraph.NewFieldSpec(conductoranalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CoherenceScore(); ok {
		_spec.SetField(conductoranalysis.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoherenceScore(); ok {
		_spec.AddField(conductoranalysis.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumAgents(); ok {
		_spec.SetField(conductoranalysis.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAgents(); ok {
		_spec.AddField(conductoranalysis.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemStatus(); ok {
		_spec.SetField(conductoranalysis.FieldSystemStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(conductoranalysis.FieldRecommendations, field.TypeString, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(conductoranalysis.FieldRecommendations, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedDuplicates(); ok {
		_spec.SetField(conductoranalysis.FieldDetectedDuplicates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedDuplicates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conductoranalysis.FieldDetectedDuplicates, value)
		})
	}
	if _u.mutation.DetectedDuplicatesCleared() {
		_spec.ClearField(conductoranalysis.FieldDetectedDuplicates, field.TypeJSON)
	}
	if value, ok := _u.mutation.TerminationRecommendations(); ok {
		_spec.SetField(conductoranalysis.FieldTerminationRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTerminationRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conductoranalysis.FieldTerminationRecommendations, value)
		})
	}
	if _u.mutation.TerminationRecommendationsCleared() {
		_spec.ClearField(conductoranalysis.FieldTerminationRecommendations, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conductoranalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConductorAnalysisUpdateOne is the builder for updating a single ConductorAnalysis entity.
type ConductorAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConductorAnalysisMutation
}

// SetCoherenceScore sets the "coherence_score" field.
func (_u *ConductorAnalysisUpdateOne) SetCoherenceScore(v float64) *ConductorAnalysisUpdateOne {
	_u.mutation.ResetCoherenceScore()
	_u.mutation.SetCoherenceScore(v)
	return _u
}

// SetNillableCoherenceScore sets the "coherence_score" field if the given value is not nil.
func (_u *ConductorAnalysisUpdateOne) SetNillableCoherenceScore(v *float64) *ConductorAnalysisUpdateOne {
	if v != nil {
		_u.SetCoherenceScore(*v)
	}
	return _u
}

// AddCoherenceScore adds value to the "coherence_score" field.
func (_u *ConductorAnalysisUpdateOne) AddCoherenceScore(v float64) *ConductorAnalysisUpdateOne {
	_u.mutation.AddCoherenceScore(v)
	return _u
}

// SetNumAgents sets the "num_agents" field.
func (_u *ConductorAnalysisUpdateOne) SetNumAgents(v int) *ConductorAnalysisUpdateOne {
	_u.mutation.ResetNumAgents()
	_u.mutation.SetNumAgents(v)
	return _u
}

// SetNillableNumAgents sets the "num_agents" field if the given value is not nil.
func (_u *ConductorAnalysisUpdateOne) SetNillableNumAgents(v *int) *ConductorAnalysisUpdateOne {
	if v != nil {
		_u.SetNumAgents(*v)
	}
	return _u
}

// AddNumAgents adds value to the "num_agents" field.
func (_u *ConductorAnalysisUpdateOne) AddNumAgents(v int) *ConductorAnalysisUpdateOne {
	_u.mutation.AddNumAgents(v)
	return _u
}

// SetSystemStatus sets the "system_status" field.
func (_u *ConductorAnalysisUpdateOne) SetSystemStatus(v string) *ConductorAnalysisUpdateOne {
	_u.mutation.SetSystemStatus(v)
	return _u
}

// SetNillableSystemStatus sets the "system_status" field if the given value is not nil.
func (_u *ConductorAnalysisUpdateOne) SetNillableSystemStatus(v *string) *ConductorAnalysisUpdateOne {
	if v != nil {
		_u.SetSystemStatus(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ConductorAnalysisUpdateOne) SetRecommendations(v string) *ConductorAnalysisUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_u *ConductorAnalysisUpdateOne) SetNillableRecommendations(v *string) *ConductorAnalysisUpdateOne {
	if v != nil {
		_u.SetRecommendations(*v)
	}
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ConductorAnalysisUpdateOne) ClearRecommendations() *ConductorAnalysisUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDetectedDuplicates sets the "detected_duplicates" field.
func (_u *ConductorAnalysisUpdateOne) SetDetectedDuplicates(v []map[string]interface{}) *ConductorAnalysisUpdateOne {
	_u.mutation.SetDetectedDuplicates(v)
	return _u
}

// AppendDetectedDuplicates appends value to the "detected_duplicates" field.
func (_u *ConductorAnalysisUpdateOne) AppendDetectedDuplicates(v []map[string]interface{}) *ConductorAnalysisUpdateOne {
	_u.mutation.AppendDetectedDuplicates(v)
	return _u
}

// ClearDetectedDuplicates clears the value of the "detected_duplicates" field.
func (_u *ConductorAnalysisUpdateOne) ClearDetectedDuplicates() *ConductorAnalysisUpdateOne {
	_u.mutation.ClearDetectedDuplicates()
	return _u
}

// SetTerminationRecommendations sets the "termination_recommendations" field.
func (_u *ConductorAnalysisUpdateOne) SetTerminationRecommendations(v []string) *ConductorAnalysisUpdateOne {
	_u.mutation.SetTerminationRecommendations(v)
	return _u
}

// AppendTerminationRecommendations appends value to the "termination_recommendations" field.
func (_u *ConductorAnalysisUpdateOne) AppendTerminationRecommendations(v []string) *ConductorAnalysisUpdateOne {
	_u.mutation.AppendTerminationRecommendations(v)
	return _u
}

// ClearTerminationRecommendations clears the value of the "termination_recommendations" field.
func (_u *ConductorAnalysisUpdateOne) ClearTerminationRecommendations() *ConductorAnalysisUpdateOne {
	_u.mutation.ClearTerminationRecommendations()
	return _u
}

// Mutation returns the ConductorAnalysisMutation object of the builder.
func (_u *ConductorAnalysisUpdateOne) Mutation() *ConductorAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConductorAnalysisUpdate builder.
func (_u *ConductorAnalysisUpdateOne) Where(ps ...predicate.ConductorAnalysis) *ConductorAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConductorAnalysisUpdateOne) Select(field string, fields ...string) *ConductorAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConductorAnalysis entity.
func (_u *ConductorAnalysisUpdateOne) Save(ctx context.Context) (*ConductorAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConductorAnalysisUpdateOne) SaveX(ctx context.Context) *ConductorAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConductorAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConductorAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConductorAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *ConductorAnalysis, err error) {
	_spec := sqlgraph.NewUpdateSpec(conductoranalysis.Table, conductoranalysis.Columns, sqlgraph.NewFieldSpec(conductoranalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConductorAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conductoranalysis.FieldID)
		for _, f := range fields {
			if !conductoranalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conductoranalysis.FieldID {
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
	if value, ok := _u.mutation.CoherenceScore(); ok {
		_spec.SetField(conductoranalysis.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoherenceScore(); ok {
		_spec.AddField(conductoranalysis.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumAgents(); ok {
		_spec.SetField(conductoranalysis.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAgents(); ok {
		_spec.AddField(conductoranalysis.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemStatus(); ok {
		_spec.SetField(conductoranalysis.FieldSystemStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(conductoranalysis.FieldRecommendations, field.TypeString, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(conductoranalysis.FieldRecommendations, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedDuplicates(); ok {
		_spec.SetField(conductoranalysis.FieldDetectedDuplicates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedDuplicates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conductoranalysis.FieldDetectedDuplicates, value)
		})
	}
	if _u.mutation.DetectedDuplicatesCleared() {
		_spec.ClearField(conductoranalysis.FieldDetectedDuplicates, field.TypeJSON)
	}
	if value, ok := _u.mutation.TerminationRecommendations(); ok {
		_spec.SetField(conductoranalysis.FieldTerminationRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTerminationRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conductoranalysis.FieldTerminationRecommendations, value)
		})
	}
	if _u.mutation.TerminationRecommendationsCleared() {
		_spec.ClearField(conductoranalysis.FieldTerminationRecommendations, field.TypeJSON)
	}
	_node = &ConductorAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conductoranalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
