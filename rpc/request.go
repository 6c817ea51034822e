package rpc

import (
	"fmt"
	"strings"
)

// Request is the immutable inbound value the pipeline consumes. It is the
// transport-agnostic projection of an HTTP (or other) request: the server
// package builds one per call.
type Request struct {
	// URL is the request URL or path.
	URL string
	// Body is the raw encoded request body.
	Body string
	// Identity is the caller identity when an upstream gateway has already
	// resolved it. Empty unless the transport supplies one.
	Identity string
}

// IdentityResolver extracts the caller identity from a request. Resolution
// failures are internal: the authorizer maps them to a generic rejection so
// callers cannot distinguish an unknown identity from a malformed one.
type IdentityResolver func(req Request) (string, error)

// IdentityFromURLPath resolves the identity as the final "/"-delimited
// segment of the request URL (".../alice" → "alice"). This is a development
// stand-in for real credential extraction; production deployments should use
// IdentityPreResolved behind an authenticating gateway.
func IdentityFromURLPath(req Request) (string, error) {
	trimmed := strings.TrimRight(req.URL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return "", fmt.Errorf("rpc: no identity segment in url %q", req.URL)
	}
	identity := trimmed[idx+1:]
	if identity == "" {
		return "", fmt.Errorf("rpc: empty identity segment in url %q", req.URL)
	}
	return identity, nil
}

// IdentityPreResolved reads the identity an upstream collaborator already
// resolved onto the request.
func IdentityPreResolved(req Request) (string, error) {
	if req.Identity == "" {
		return "", fmt.Errorf("rpc: request carries no pre-resolved identity")
	}
	return req.Identity, nil
}

// StaticIdentity returns a resolver that always yields the given identity.
// Useful in tests.
func StaticIdentity(identity string) IdentityResolver {
	return func(Request) (string, error) {
		if identity == "" {
			return "", fmt.Errorf("rpc: static identity is empty")
		}
		return identity, nil
	}
}
