package rpc

import (
	"github.com/skillsenselab/rpckit/authz"
	"github.com/skillsenselab/rpckit/errors"
)

// Authorizer decides whether a call may proceed given the request and the
// already-decoded input, and produces the authorization context the handler
// receives. A returned context is proof that authorization succeeded for this
// exact (request, input) pair; it is never cached or reused across calls.
type Authorizer[In, Ctx any] interface {
	Authorize(req Request, in In) (Ctx, error)
}

// AuthorizerFunc is an adapter to use ordinary functions as Authorizer.
type AuthorizerFunc[In, Ctx any] func(req Request, in In) (Ctx, error)

// Authorize implements Authorizer.
func (f AuthorizerFunc[In, Ctx]) Authorize(req Request, in In) (Ctx, error) {
	return f(req, in)
}

// AuthContext is the minimal authorization context: proof that a specific
// call passed authorization, carrying the resolved identity. Endpoints
// needing a richer context define their own type and context factory.
type AuthContext struct {
	// User is the resolved caller identity.
	User string
}

// Predicate is an endpoint-specific check over the fields the endpoint
// explicitly extracts from its input. A non-nil error rejects the call.
type Predicate[In any] func(in In) error

// ContextFactory builds the endpoint's authorization context after every
// check has passed. It may compute identity-derived payload (e.g., a display
// string) but must not perform further authorization.
type ContextFactory[In, Ctx any] func(identity string, in In) (Ctx, error)

// AuthContextFactory is the ContextFactory for endpoints that only need the
// plain AuthContext.
func AuthContextFactory[In any](identity string, _ In) (AuthContext, error) {
	return AuthContext{User: identity}, nil
}

// NewAuthorizer composes the generic authorization strategy from per-endpoint
// configuration. The strategy itself is written once and never inspects the
// input shape: the predicate is the only piece that sees endpoint fields.
//
// Checks run in order: identity resolution, store lookup with permission
// superset check, then the data predicate. Every rejection surfaces as the
// same generic Unauthorized error so callers cannot probe which check failed.
// A nil predicate skips the data check.
func NewAuthorizer[In, Ctx any](
	resolver IdentityResolver,
	checker authz.Checker,
	required authz.Requirement,
	predicate Predicate[In],
	factory ContextFactory[In, Ctx],
) AuthorizerFunc[In, Ctx] {
	return func(req Request, in In) (Ctx, error) {
		var zero Ctx

		identity, err := resolver(req)
		if err != nil {
			return zero, errors.Unauthorized().WithCause(err)
		}

		// Identity lookup. Checkers that expose existence reject unknown
		// subjects outright; for the rest, the superset check below covers
		// it as long as at least one permission is required.
		if store, ok := checker.(authz.Store); ok && !store.Known(identity) {
			return zero, errors.Unauthorized()
		}

		if !required.AllowedBy(checker, identity) {
			return zero, errors.Unauthorized()
		}

		if predicate != nil {
			if err := predicate(in); err != nil {
				return zero, errors.Unauthorized().WithCause(err)
			}
		}

		return factory(identity, in)
	}
}

// NewIdentityAuthorizer is a shorthand for endpoints whose context is the
// plain AuthContext and that need no data predicate.
func NewIdentityAuthorizer[In any](
	resolver IdentityResolver,
	checker authz.Checker,
	required authz.Requirement,
) AuthorizerFunc[In, AuthContext] {
	return NewAuthorizer(resolver, checker, required, nil, AuthContextFactory[In])
}
