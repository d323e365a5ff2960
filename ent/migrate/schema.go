// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"phase", "validator", "result_validator", "diagnostic"}, Default: "phase"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"spawning", "working", "terminated", "failed"}, Default: "spawning"},
		{Name: "session_name", Type: field.TypeString},
		{Name: "worktree_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "kept_alive_for_validation", Type: field.TypeBool, Default: false},
		{Name: "termination_reason", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_workflows_agents",
				Columns:    []*schema.Column{AgentsColumns[10]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
			{
				Name:    "agent_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agent_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[10], AgentsColumns[3]},
			},
			{
				Name:    "agent_session_name",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[4]},
			},
		},
	}
	// ConductorAnalysesColumns holds the columns for the "conductor_analyses" table.
	ConductorAnalysesColumns = []*schema.Column{
		{Name: "conductor_analysis_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "coherence_score", Type: field.TypeFloat64},
		{Name: "num_agents", Type: field.TypeInt},
		{Name: "system_status", Type: field.TypeString, Size: 2147483647},
		{Name: "recommendations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "detected_duplicates", Type: field.TypeJSON, Nullable: true},
		{Name: "termination_recommendations", Type: field.TypeJSON, Nullable: true},
	}
	// ConductorAnalysesTable holds the schema information for the "conductor_analyses" table.
	ConductorAnalysesTable = &schema.Table{
		Name:       "conductor_analyses",
		Columns:    ConductorAnalysesColumns,
		PrimaryKey: []*schema.Column{ConductorAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conductoranalysis_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ConductorAnalysesColumns[1]},
			},
		},
	}
	// DiagnosticRunsColumns holds the columns for the "diagnostic_runs" table.
	DiagnosticRunsColumns = []*schema.Column{
		{Name: "diagnostic_run_id", Type: field.TypeString, Unique: true},
		{Name: "triggered_at", Type: field.TypeTime},
		{Name: "trigger_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "tasks_created_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "diagnosis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "running", "completed", "failed"}, Default: "created"},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// DiagnosticRunsTable holds the schema information for the "diagnostic_runs" table.
	DiagnosticRunsTable = &schema.Table{
		Name:       "diagnostic_runs",
		Columns:    DiagnosticRunsColumns,
		PrimaryKey: []*schema.Column{DiagnosticRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "diagnostic_runs_workflows_diagnostic_runs",
				Columns:    []*schema.Column{DiagnosticRunsColumns[6]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosticrun_workflow_id_triggered_at",
				Unique:  false,
				Columns: []*schema.Column{DiagnosticRunsColumns[6], DiagnosticRunsColumns[1]},
			},
		},
	}
	// GuardianAnalysesColumns holds the columns for the "guardian_analyses" table.
	GuardianAnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "alignment_score", Type: field.TypeFloat64},
		{Name: "trajectory_aligned", Type: field.TypeBool},
		{Name: "trajectory_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "needs_steering", Type: field.TypeBool},
		{Name: "steering_type", Type: field.TypeEnum, Enums: []string{"stuck", "drifting", "violating_constraints", "idle", "missed_steps", "wrong_direction", "none"}, Default: "none"},
		{Name: "steering_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// GuardianAnalysesTable holds the schema information for the "guardian_analyses" table.
	GuardianAnalysesTable = &schema.Table{
		Name:       "guardian_analyses",
		Columns:    GuardianAnalysesColumns,
		PrimaryKey: []*schema.Column{GuardianAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "guardiananalysis_agent_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GuardianAnalysesColumns[1], GuardianAnalysesColumns[2]},
			},
		},
	}
	// PhasesColumns holds the columns for the "phases" table.
	PhasesColumns = []*schema.Column{
		{Name: "phase_id", Type: field.TypeString, Unique: true},
		{Name: "number", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "done_definitions", Type: field.TypeJSON},
		{Name: "additional_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validation_enabled", Type: field.TypeBool, Default: false},
		{Name: "validation_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "validator_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// PhasesTable holds the schema information for the "phases" table.
	PhasesTable = &schema.Table{
		Name:       "phases",
		Columns:    PhasesColumns,
		PrimaryKey: []*schema.Column{PhasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "phases_workflows_phases",
				Columns:    []*schema.Column{PhasesColumns[9]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "phase_workflow_id_number",
				Unique:  true,
				Columns: []*schema.Column{PhasesColumns[9], PhasesColumns[1]},
			},
		},
	}
	// SteeringInterventionsColumns holds the columns for the "steering_interventions" table.
	SteeringInterventionsColumns = []*schema.Column{
		{Name: "intervention_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "guardian_analysis_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "steering_type", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "was_successful", Type: field.TypeBool, Nullable: true},
	}
	// SteeringInterventionsTable holds the schema information for the "steering_interventions" table.
	SteeringInterventionsTable = &schema.Table{
		Name:       "steering_interventions",
		Columns:    SteeringInterventionsColumns,
		PrimaryKey: []*schema.Column{SteeringInterventionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "steeringintervention_agent_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SteeringInterventionsColumns[1], SteeringInterventionsColumns[3]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "phase_id", Type: field.TypeString, Nullable: true},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"phase", "validator", "result_validator", "diagnostic"}, Default: "phase"},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "done_definition", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "med", "high"}, Default: "med"},
		{Name: "description_embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "assigned", "in_progress", "under_review", "validation_in_progress", "needs_work", "done", "failed", "duplicated"}, Default: "pending"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "completion_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duplicate_of_task_id", Type: field.TypeString, Nullable: true},
		{Name: "similarity_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "queued_at", Type: field.TypeTime, Nullable: true},
		{Name: "queue_position", Type: field.TypeInt, Nullable: true},
		{Name: "priority_boosted", Type: field.TypeBool, Default: false},
		{Name: "validation_enabled", Type: field.TypeBool, Default: false},
		{Name: "validation_iteration", Type: field.TypeInt, Default: 0},
		{Name: "last_validation_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "review_done", Type: field.TypeBool, Default: false},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_workflows_tasks",
				Columns:    []*schema.Column{TasksColumns[26]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
			{
				Name:    "task_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[26], TasksColumns[10]},
			},
			{
				Name:    "task_workflow_id_phase_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[26], TasksColumns[1]},
			},
			{
				Name:    "task_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[22]},
			},
			{
				Name:    "task_ticket_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_status_queued_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10], TasksColumns[15]},
			},
		},
	}
	// TaskResultsColumns holds the columns for the "task_results" table.
	TaskResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "markdown_path", Type: field.TypeString},
		{Name: "markdown_content", Type: field.TypeString, Size: 2147483647},
		{Name: "result_type", Type: field.TypeEnum, Enums: []string{"implementation", "analysis", "fix", "design", "test", "documentation"}},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "verification_status", Type: field.TypeEnum, Enums: []string{"unverified", "verified", "disputed"}, Default: "unverified"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "verified_by_validation_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskResultsTable holds the schema information for the "task_results" table.
	TaskResultsTable = &schema.Table{
		Name:       "task_results",
		Columns:    TaskResultsColumns,
		PrimaryKey: []*schema.Column{TaskResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_results_tasks_results",
				Columns:    []*schema.Column{TaskResultsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskresult_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskResultsColumns[10]},
			},
			{
				Name:    "taskresult_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TaskResultsColumns[1]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "ticket_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "med", "high"}, Default: "med"},
		{Name: "created_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolution_comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "approval_status", Type: field.TypeEnum, Enums: []string{"not_required", "pending_review", "approved", "rejected"}, Default: "not_required"},
		{Name: "title_embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_workflows_tickets",
				Columns:    []*schema.Column{TicketsColumns[13]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[13], TicketsColumns[4]},
			},
			{
				Name:    "ticket_resolved",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[7]},
			},
			{
				Name:    "ticket_approval_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[9]},
			},
		},
	}
	// TicketBlocksColumns holds the columns for the "ticket_blocks" table.
	TicketBlocksColumns = []*schema.Column{
		{Name: "block_id", Type: field.TypeString, Unique: true},
		{Name: "blocker_id", Type: field.TypeString},
		{Name: "blocked_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TicketBlocksTable holds the schema information for the "ticket_blocks" table.
	TicketBlocksTable = &schema.Table{
		Name:       "ticket_blocks",
		Columns:    TicketBlocksColumns,
		PrimaryKey: []*schema.Column{TicketBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticketblock_blocker_id_blocked_id",
				Unique:  true,
				Columns: []*schema.Column{TicketBlocksColumns[1], TicketBlocksColumns[2]},
			},
			{
				Name:    "ticketblock_blocked_id",
				Unique:  false,
				Columns: []*schema.Column{TicketBlocksColumns[2]},
			},
		},
	}
	// TicketCommentsColumns holds the columns for the "ticket_comments" table.
	TicketCommentsColumns = []*schema.Column{
		{Name: "comment_id", Type: field.TypeString, Unique: true},
		{Name: "ticket_id", Type: field.TypeString},
		{Name: "author_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TicketCommentsTable holds the schema information for the "ticket_comments" table.
	TicketCommentsTable = &schema.Table{
		Name:       "ticket_comments",
		Columns:    TicketCommentsColumns,
		PrimaryKey: []*schema.Column{TicketCommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticketcomment_ticket_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketCommentsColumns[1], TicketCommentsColumns[4]},
			},
		},
	}
	// ValidationReviewsColumns holds the columns for the "validation_reviews" table.
	ValidationReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "validator_agent_id", Type: field.TypeString},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "validation_passed", Type: field.TypeBool},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ValidationReviewsTable holds the schema information for the "validation_reviews" table.
	ValidationReviewsTable = &schema.Table{
		Name:       "validation_reviews",
		Columns:    ValidationReviewsColumns,
		PrimaryKey: []*schema.Column{ValidationReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_reviews_tasks_validation_reviews",
				Columns:    []*schema.Column{ValidationReviewsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationreview_task_id_iteration",
				Unique:  false,
				Columns: []*schema.Column{ValidationReviewsColumns[7], ValidationReviewsColumns[2]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "goal_text", Type: field.TypeString, Size: 2147483647},
		{Name: "result_required", Type: field.TypeBool, Default: false},
		{Name: "result_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "on_result_found", Type: field.TypeEnum, Enums: []string{"stop_all", "do_nothing"}, Default: "stop_all"},
		{Name: "board_config", Type: field.TypeJSON, Nullable: true},
		{Name: "ticket_human_review", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
	}
	// WorkflowResultsColumns holds the columns for the "workflow_results" table.
	WorkflowResultsColumns = []*schema.Column{
		{Name: "workflow_result_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "markdown_path", Type: field.TypeString},
		{Name: "markdown_content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_validation", "validated", "rejected"}, Default: "pending_validation"},
		{Name: "validation_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validation_evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "validated_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowResultsTable holds the schema information for the "workflow_results" table.
	WorkflowResultsTable = &schema.Table{
		Name:       "workflow_results",
		Columns:    WorkflowResultsColumns,
		PrimaryKey: []*schema.Column{WorkflowResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_results_workflows_results",
				Columns:    []*schema.Column{WorkflowResultsColumns[10]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowresult_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowResultsColumns[10], WorkflowResultsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ConductorAnalysesTable,
		DiagnosticRunsTable,
		GuardianAnalysesTable,
		PhasesTable,
		SteeringInterventionsTable,
		TasksTable,
		TaskResultsTable,
		TicketsTable,
		TicketBlocksTable,
		TicketCommentsTable,
		ValidationReviewsTable,
		WorkflowsTable,
		WorkflowResultsTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = WorkflowsTable
	DiagnosticRunsTable.ForeignKeys[0].RefTable = WorkflowsTable
	PhasesTable.ForeignKeys[0].RefTable = WorkflowsTable
	TasksTable.ForeignKeys[0].RefTable = WorkflowsTable
	TaskResultsTable.ForeignKeys[0].RefTable = TasksTable
	TicketsTable.ForeignKeys[0].RefTable = WorkflowsTable
	ValidationReviewsTable.ForeignKeys[0].RefTable = TasksTable
	WorkflowResultsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
