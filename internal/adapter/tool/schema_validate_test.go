package tool

import (
	"context"
	"encoding/json"
	"testing"

	"filekit/internal/domain"
)

type schemaTool struct {
	schema   json.RawMessage
	executed bool
}

func (s *schemaTool) Name() string        { return "schema-test" }
func (s *schemaTool) Description() string { return "test" }
func (s *schemaTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{Name: s.Name(), Parameters: s.schema}
}
func (s *schemaTool) Execute(context.Context, json.RawMessage) (*domain.ToolResult, error) {
	s.executed = true
	return &domain.ToolResult{Content: "ran"}, nil
}

func TestWithSchemaValidationRejectsBadParams(t *testing.T) {
	inner := &schemaTool{schema: json.RawMessage(`{
		"type": "object",
		"properties": {"action": {"type": "string", "enum": ["read"]}},
		"required": ["action"]
	}`)}

	wrapped, err := WithSchemaValidation(inner)
	if err != nil {
		t.Fatal(err)
	}

	result, err := wrapped.Execute(context.Background(), json.RawMessage(`{"action":"write"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected schema validation failure")
	}
	if inner.executed {
		t.Error("inner tool should not run on invalid params")
	}

	result, err = wrapped.Execute(context.Background(), json.RawMessage(`{"action":"read"}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Errorf("valid params rejected: %s", result.Content)
	}
	if !inner.executed {
		t.Error("inner tool should run on valid params")
	}
}

func TestWithSchemaValidationInvalidJSON(t *testing.T) {
	inner := &schemaTool{schema: json.RawMessage(`{"type": "object"}`)}
	wrapped, err := WithSchemaValidation(inner)
	if err != nil {
		t.Fatal(err)
	}

	result, err := wrapped.Execute(context.Background(), json.RawMessage(`{not json`))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error for malformed JSON")
	}
}

func TestWithSchemaValidationNoSchema(t *testing.T) {
	inner := &schemaTool{}
	wrapped, err := WithSchemaValidation(inner)
	if err != nil {
		t.Fatal(err)
	}
	if wrapped != inner {
		t.Error("tool without schema should be returned unwrapped")
	}
}

func TestWithSchemaValidationBadSchema(t *testing.T) {
	inner := &schemaTool{schema: json.RawMessage(`{"type": 42}`)}
	if _, err := WithSchemaValidation(inner); err == nil {
		t.Error("expected compile error for malformed schema")
	}
}
