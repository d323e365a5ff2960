package config

// WorkflowFileConfig is the workflow definition file (workflow.yaml): the
// goal, result policy, kanban board layout and the ordered phase list.
// Phases are immutable after workflow start.
type WorkflowFileConfig struct {
	Name              string        `yaml:"name"`
	Goal              string        `yaml:"goal"`
	ResultRequired    bool          `yaml:"result_required"`
	ResultCriteria    []string      `yaml:"result_criteria"`
	OnResultFound     string        `yaml:"on_result_found"` // stop_all | do_nothing
	TicketHumanReview bool          `yaml:"ticket_human_review"`
	Board             BoardConfig   `yaml:"board"`
	Phases            []PhaseConfig `yaml:"phases"`
}

// BoardConfig is the kanban column set and ticket types for a workflow.
type BoardConfig struct {
	Columns     []string `yaml:"columns"`
	TicketTypes []string `yaml:"ticket_types"`
}

// HasColumn reports whether status is a configured board column.
func (b BoardConfig) HasColumn(status string) bool {
	for _, c := range b.Columns {
		if c == status {
			return true
		}
	}
	return false
}

// PhaseConfig is one phase definition from the workflow file.
type PhaseConfig struct {
	Number          int                    `yaml:"number"`
	Name            string                 `yaml:"name"`
	Description     string                 `yaml:"description"`
	DoneDefinitions []string               `yaml:"done_definitions"`
	AdditionalNotes string                 `yaml:"additional_notes"`
	Validation      *PhaseValidationConfig `yaml:"validation,omitempty"`
}

// PhaseValidationConfig enables task-level validation for a phase.
type PhaseValidationConfig struct {
	Enabled               bool     `yaml:"enabled"`
	Criteria              []string `yaml:"criteria"`
	ValidatorInstructions string   `yaml:"validator_instructions"`
}
