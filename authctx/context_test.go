package authctx

import (
	"context"
	"testing"
)

type testContext struct {
	User string
}

func TestSetGet_RoundTrip(t *testing.T) {
	ctx := Set(context.Background(), testContext{User: "alice"})

	ac, ok := Get[testContext](ctx)
	if !ok {
		t.Fatal("expected auth context to be present")
	}
	if ac.User != "alice" {
		t.Errorf("expected user alice, got %q", ac.User)
	}
}

func TestGet_MissingReturnsFalse(t *testing.T) {
	_, ok := Get[testContext](context.Background())
	if ok {
		t.Error("expected no auth context in fresh context")
	}
}

func TestGet_WrongTypeReturnsFalse(t *testing.T) {
	ctx := Set(context.Background(), "not a struct")
	_, ok := Get[testContext](ctx)
	if ok {
		t.Error("expected type mismatch to return false")
	}
}

func TestMustGet_PanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when auth context is missing")
		}
	}()
	MustGet[testContext](context.Background())
}

func TestGetOrError(t *testing.T) {
	_, err := GetOrError[testContext](context.Background())
	if err != ErrNoAuthContext {
		t.Errorf("expected ErrNoAuthContext, got %v", err)
	}

	ctx := Set(context.Background(), testContext{User: "bob"})
	ac, err := GetOrError[testContext](ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ac.User != "bob" {
		t.Errorf("expected bob, got %q", ac.User)
	}
}
