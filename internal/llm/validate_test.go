package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{"type": "string"},
				"count":   map[string]any{"type": "integer", "minimum": 0},
				"level":   map[string]any{"type": "string", "enum": []any{"basic", "intermediate", "advanced"}},
			},
			"required": []any{"subject", "count"},
		},
	}
}

func TestValidateAgainst_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"subject":"Go","count":3,"level":"basic"}`)
	if err := ValidateAgainst(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateAgainst_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"subject":"SQL","count":1}`)
	if err := ValidateAgainst(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateAgainst_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"subject":"Rust"}`)
	err := ValidateAgainst(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invErr.Content) != string(raw) {
		t.Fatal("expected raw body to be preserved for recovery")
	}
}

func TestValidateAgainst_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`{"subject": "Go",`)
	err := ValidateAgainst(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateAgainst_NilSchema(t *testing.T) {
	if err := ValidateAgainst(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}
