// Package authctx provides type-safe propagation of authorization contexts
// through context.Context.
//
// It uses Go generics so each endpoint can store and retrieve its own
// authorization-context type without rpckit knowing about the specific fields.
//
// Usage:
//
//	// Store the authorization context (the pipeline does this before
//	// invoking the handler)
//	ctx = authctx.Set(ctx, ac)
//
//	// Retrieve it (in raw handlers or middleware)
//	ac, ok := authctx.Get[rpc.AuthContext](ctx)
//	ac := authctx.MustGet[rpc.AuthContext](ctx) // panics if missing
package authctx

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

// authKey is the single key used to store the authorization context.
var authKey = contextKey{}

// Set stores an authorization context in the context.
// The value can be any type — each endpoint defines its own context struct.
func Set(ctx context.Context, ac any) context.Context {
	return context.WithValue(ctx, authKey, ac)
}

// Get retrieves a typed authorization context.
// Returns the value and true if found and of the correct type,
// or zero value and false otherwise.
func Get[T any](ctx context.Context) (T, bool) {
	val := ctx.Value(authKey)
	if val == nil {
		var zero T
		return zero, false
	}
	ac, ok := val.(T)
	return ac, ok
}

// MustGet retrieves a typed authorization context.
// Panics if it is missing or of the wrong type.
// Use in handlers where the pipeline guarantees authorization already ran.
func MustGet[T any](ctx context.Context) T {
	ac, ok := Get[T](ctx)
	if !ok {
		panic("authctx: authorization context not found in context or wrong type")
	}
	return ac
}

// ErrNoAuthContext is returned when no authorization context is present.
var ErrNoAuthContext = errors.New("authctx: no authorization context in context")

// GetOrError retrieves a typed authorization context.
// Returns ErrNoAuthContext if it is missing or of the wrong type.
func GetOrError[T any](ctx context.Context) (T, error) {
	ac, ok := Get[T](ctx)
	if !ok {
		var zero T
		return zero, ErrNoAuthContext
	}
	return ac, nil
}
