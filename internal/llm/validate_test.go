package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A generated estimation question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"answer":     map[string]any{"type": "number"},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func assertInvalidResponse(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"question":"How tall is Mount Everest in meters?","answer":8849,"difficulty":"medium"}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"question":"How many liters in a gallon?","answer":3.785}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question":"How far is the Moon in km?"}`)
	assertInvalidResponse(t, validateResponse(questionSchema(), raw))
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":"How heavy is a blue whale in tonnes?","answer":"about 150"}`)
	assertInvalidResponse(t, validateResponse(questionSchema(), raw))
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"question":"How long is the Nile in km?","answer":6650,"difficulty":"impossible"}`)
	assertInvalidResponse(t, validateResponse(questionSchema(), raw))
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	assertInvalidResponse(t, validateResponse(questionSchema(), raw))
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	assertInvalidResponse(t, validateResponse(questionSchema(), raw))
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedDefinitions(t *testing.T) {
	schema := &Schema{
		Name:        "test-feedback",
		Description: "Feedback with reference facts",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"feedback": map[string]any{"type": "string"},
				"anchors": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"fact":  map[string]any{"type": "string"},
							"value": map[string]any{"type": "number"},
						},
						"required": []any{"fact"},
					},
				},
			},
			"required": []any{"feedback", "anchors"},
		},
	}

	valid := json.RawMessage(`{"feedback":"Close, think of it as three school buses.","anchors":[{"fact":"a school bus is about 12m","value":12}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"feedback":"Close.","anchors":[{"value":12}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for missing nested required field")
	}
}
