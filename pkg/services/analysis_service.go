package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
)

// AnalysisService persists Guardian and Conductor output.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// GuardianAnalysisInput is the verdict the Guardian produced for one agent.
type GuardianAnalysisInput struct {
	AgentID           string
	CurrentPhase      string
	AlignmentScore    float64
	TrajectoryAligned bool
	TrajectorySummary string
	NeedsSteering     bool
	SteeringType      string
	SteeringMessage   string
	Details           map[string]interface{}
}

// SaveGuardianAnalysis persists one Guardian verdict.
func (s *AnalysisService) SaveGuardianAnalysis(ctx context.Context, in GuardianAnalysisInput) (*ent.GuardianAnalysis, error) {
	if in.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	steeringType := in.SteeringType
	if steeringType == "" {
		steeringType = string(guardiananalysis.SteeringTypeNone)
	}

	builder := s.client.GuardianAnalysis.Create().
		SetID(uuid.New().String()).
		SetAgentID(in.AgentID).
		SetTimestamp(time.Now()).
		SetAlignmentScore(in.AlignmentScore).
		SetTrajectoryAligned(in.TrajectoryAligned).
		SetTrajectorySummary(in.TrajectorySummary).
		SetNeedsSteering(in.NeedsSteering).
		SetSteeringType(guardiananalysis.SteeringType(steeringType))
	if in.CurrentPhase != "" {
		builder.SetCurrentPhase(in.CurrentPhase)
	}
	if in.SteeringMessage != "" {
		builder.SetSteeringMessage(in.SteeringMessage)
	}
	if in.Details != nil {
		builder.SetDetails(in.Details)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save guardian analysis: %w", err)
	}
	return a, nil
}

// RecentGuardianAnalyses returns the newest analyses for an agent, newest
// first, up to limit.
func (s *AnalysisService) RecentGuardianAnalyses(ctx context.Context, agentID string, limit int) ([]*ent.GuardianAnalysis, error) {
	if limit <= 0 {
		limit = 10
	}
	analyses, err := s.client.GuardianAnalysis.Query().
		Where(guardiananalysis.AgentID(agentID)).
		Order(ent.Desc(guardiananalysis.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guardian analyses: %w", err)
	}
	return analyses, nil
}

// LatestGuardianAnalysis returns the newest analysis for an agent, or
// ErrNotFound when none exists yet.
func (s *AnalysisService) LatestGuardianAnalysis(ctx context.Context, agentID string) (*ent.GuardianAnalysis, error) {
	a, err := s.client.GuardianAnalysis.Query().
		Where(guardiananalysis.AgentID(agentID)).
		Order(ent.Desc(guardiananalysis.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest guardian analysis: %w", err)
	}
	return a, nil
}

// DeleteAgentAnalyses removes all Guardian analyses and steering
// interventions for an agent. Used on task restart.
func (s *AnalysisService) DeleteAgentAnalyses(ctx context.Context, agentID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.SteeringIntervention.Delete().
		Where(steeringintervention.AgentID(agentID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete interventions: %w", err)
	}
	if _, err := tx.GuardianAnalysis.Delete().
		Where(guardiananalysis.AgentID(agentID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete analyses: %w", err)
	}
	return tx.Commit()
}

// RecordIntervention persists a steering injection. was_successful stays
// null until the next cycle's alignment comparison.
func (s *AnalysisService) RecordIntervention(ctx context.Context, agentID, analysisID, steeringType, message string) (*ent.SteeringIntervention, error) {
	iv, err := s.client.SteeringIntervention.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetGuardianAnalysisID(analysisID).
		SetTimestamp(time.Now()).
		SetSteeringType(steeringType).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record intervention: %w", err)
	}
	return iv, nil
}

// PendingIntervention returns the newest intervention for an agent whose
// outcome has not been scored yet.
func (s *AnalysisService) PendingIntervention(ctx context.Context, agentID string) (*ent.SteeringIntervention, error) {
	iv, err := s.client.SteeringIntervention.Query().
		Where(steeringintervention.AgentID(agentID), steeringintervention.WasSuccessfulIsNil()).
		Order(ent.Desc(steeringintervention.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending intervention: %w", err)
	}
	return iv, nil
}

// ScoreIntervention records whether a steering injection improved the
// agent's alignment.
func (s *AnalysisService) ScoreIntervention(ctx context.Context, interventionID string, successful bool) error {
	err := s.client.SteeringIntervention.UpdateOneID(interventionID).
		SetWasSuccessful(successful).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to score intervention: %w", err)
	}
	return nil
}

// ConductorAnalysisInput is the system-wide verdict of one conductor run.
type ConductorAnalysisInput struct {
	CoherenceScore             float64
	NumAgents                  int
	SystemStatus               string
	Recommendations            string
	DetectedDuplicates         []map[string]interface{}
	TerminationRecommendations []string
}

// SaveConductorAnalysis persists one conductor verdict.
func (s *AnalysisService) SaveConductorAnalysis(ctx context.Context, in ConductorAnalysisInput) (*ent.ConductorAnalysis, error) {
	builder := s.client.ConductorAnalysis.Create().
		SetID(uuid.New().String()).
		SetTimestamp(time.Now()).
		SetCoherenceScore(in.CoherenceScore).
		SetNumAgents(in.NumAgents).
		SetSystemStatus(in.SystemStatus)
	if in.Recommendations != "" {
		builder.SetRecommendations(in.Recommendations)
	}
	if in.DetectedDuplicates != nil {
		builder.SetDetectedDuplicates(in.DetectedDuplicates)
	}
	if in.TerminationRecommendations != nil {
		builder.SetTerminationRecommendations(in.TerminationRecommendations)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save conductor analysis: %w", err)
	}
	return a, nil
}

// RecentConductorAnalyses returns the newest conductor runs, newest first.
func (s *AnalysisService) RecentConductorAnalyses(ctx context.Context, limit int) ([]*ent.ConductorAnalysis, error) {
	if limit <= 0 {
		limit = 5
	}
	analyses, err := s.client.ConductorAnalysis.Query().
		Order(ent.Desc(conductoranalysis.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conductor analyses: %w", err)
	}
	return analyses, nil
}
