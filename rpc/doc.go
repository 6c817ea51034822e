// Package rpc implements the typed request pipeline: decode a request body
// into a declared input type, authorize the caller against that input, invoke
// a handler, and encode the declared output type back to a transport-ready
// representation.
//
// An Endpoint binds three types at declaration time — input, authorization
// context, and output — so the authorizer and the handler can never disagree
// about shapes at runtime. Each invocation runs the strict sequence
// decode → authorize → invoke → encode; a failure at any step aborts the call
// with no partial effects.
//
//	type EchoInput struct {
//	    Foo string `json:"foo" validate:"required"`
//	    Bar int    `json:"bar"`
//	}
//	type EchoOutput struct {
//	    Fizz float64 `json:"fizz"`
//	    Buzz string  `json:"buzz"`
//	}
//
//	auth := rpc.NewAuthorizer(
//	    rpc.IdentityFromURLPath,
//	    checker,
//	    authz.Require("data:read", "data:write"),
//	    func(in EchoInput) error { ... },
//	    rpc.AuthContextFactory[EchoInput],
//	)
//
//	ep := rpc.NewEndpoint("echo", "Echoes the input.", auth,
//	    func(ctx context.Context, ac rpc.AuthContext, in EchoInput) (EchoOutput, error) {
//	        return EchoOutput{...}, nil
//	    })
//
//	out, err := ep.Invoke(ctx, rpc.Request{URL: "/rpc/echo/alice", Body: body})
//
// The authorization strategy is written once, independent of any input shape:
// endpoints supply only an identity resolver, a permission requirement, and an
// optional predicate over the fields they explicitly extract.
package rpc
