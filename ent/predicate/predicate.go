// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// ConductorAnalysis is the predicate function for conductoranalysis builders.
type ConductorAnalysis func(*sql.Selector)

// DiagnosticRun is the predicate function for diagnosticrun builders.
type DiagnosticRun func(*sql.Selector)

// GuardianAnalysis is the predicate function for guardiananalysis builders.
type GuardianAnalysis func(*sql.Selector)

// Phase is the predicate function for phase builders.
type Phase func(*sql.Selector)

// SteeringIntervention is the predicate function for steeringintervention builders.
type SteeringIntervention func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskResult is the predicate function for taskresult builders.
type TaskResult func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// TicketBlock is the predicate function for ticketblock builders.
type TicketBlock func(*sql.Selector)

// TicketComment is the predicate function for ticketcomment builders.
type TicketComment func(*sql.Selector)

// ValidationReview is the predicate function for validationreview builders.
type ValidationReview func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowResult is the predicate function for workflowresult builders.
type WorkflowResult func(*sql.Selector)
