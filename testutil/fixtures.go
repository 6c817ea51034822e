package testutil

import (
	"github.com/skillsenselab/rpckit/authz"
)

// Canonical subjects used across pipeline tests. Alice can read and write,
// Bob can only read, Carol does not exist in the store.
const (
	UserAlice   = "alice"
	UserBob     = "bob"
	UserUnknown = "carol"
)

// Canonical permission tokens.
const (
	PermRead  = "data:read"
	PermWrite = "data:write"
)

// NewChecker returns the canonical permission table.
func NewChecker() *authz.MapChecker {
	return authz.NewMapChecker(map[string][]string{
		UserAlice: {PermRead, PermWrite},
		UserBob:   {PermRead},
	})
}
