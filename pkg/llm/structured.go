package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaViolationError reports a structured response that failed its JSON
// schema after the retry.
type SchemaViolationError struct {
	Component string
	Err       error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("llm response for %s violated schema: %v", e.Component, e.Err)
}

func (e *SchemaViolationError) Unwrap() error { return e.Err }

// CompileSchema compiles a JSON schema once at package init so malformed
// schemas fail fast.
func CompileSchema(schemaJSON string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("invalid response schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("add schema resource: %v", err))
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// CompleteStructured runs a JSON-mode completion and validates the response
// against the schema, unmarshalling into out. A schema violation is retried
// once with the validator error appended to the conversation; a second
// violation surfaces as SchemaViolationError.
func (c *Client) CompleteStructured(ctx context.Context, component string, messages []Message, schema *jsonschema.Schema, out any) error {
	content, err := c.CompleteJSON(ctx, component, messages)
	if err != nil {
		return err
	}

	verr := validateAndDecode(content, schema, out)
	if verr == nil {
		return nil
	}

	c.logger.Warn("structured response failed schema, retrying once",
		"llm_component", component, "error", verr)

	retry := append(append([]Message{}, messages...),
		Message{Role: RoleAssistant, Content: content},
		Message{Role: RoleUser, Content: fmt.Sprintf(
			"Your previous response was not valid against the required JSON schema: %v. Respond again with ONLY a JSON object that satisfies the schema.", verr)},
	)
	content, err = c.CompleteJSON(ctx, component, retry)
	if err != nil {
		return err
	}
	if verr := validateAndDecode(content, schema, out); verr != nil {
		return &SchemaViolationError{Component: component, Err: verr}
	}
	return nil
}

func validateAndDecode(content string, schema *jsonschema.Schema, out any) error {
	cleaned := stripCodeFence(content)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return err
	}
	return json.Unmarshal([]byte(cleaned), out)
}

// stripCodeFence removes a markdown ```json fence some models wrap around
// JSON-mode output.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
