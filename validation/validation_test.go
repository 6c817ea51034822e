package validation

import (
	"testing"

	"github.com/skillsenselab/rpckit/errors"
)

type sampleInput struct {
	Foo string `json:"foo" validate:"required"`
	Bar int    `json:"bar" validate:"gte=0"`
}

func TestValidate_StructTags_Success(t *testing.T) {
	if err := Validate(sampleInput{Foo: "hello", Bar: 2}); err != nil {
		t.Errorf("expected valid input, got %v", err)
	}
}

func TestValidate_StructTags_MissingRequired(t *testing.T) {
	err := Validate(sampleInput{Bar: 2})
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected one field error, got %v", appErr.Details["fields"])
	}
	if fields[0].Field != "foo" {
		t.Errorf("expected field name from json tag, got %q", fields[0].Field)
	}
}

func TestValidate_StructTags_RangeViolation(t *testing.T) {
	err := Validate(sampleInput{Foo: "x", Bar: -1})
	if err == nil {
		t.Fatal("expected error for bar < 0")
	}
}

func TestValidator_Fluent_CollectsErrors(t *testing.T) {
	v := New().
		Required("foo", "").
		Min("bar", -3, 0).
		Custom(false, "bar", "must be even")

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 3 {
		t.Errorf("expected 3 errors, got %d", len(v.Errors()))
	}
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
}

func TestValidator_Fluent_NoErrors(t *testing.T) {
	v := New().
		Required("foo", "hello").
		Min("bar", 4, 0).
		Max("bar", 4, 10).
		OneOf("mode", "fast", []string{"fast", "slow"}).
		Custom(true, "bar", "must be even")

	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}
	if v.Validate() != nil {
		t.Error("expected nil AppError")
	}
}
