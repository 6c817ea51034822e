package authz

// Checker is the core permission-store interface. The pipeline only ever
// reads from it; lifecycle and mutation belong to whatever composes the
// service.
//
// subject is typically a username, user ID, or role — whatever the project's
// identity model resolves to.
//
// permission is the required permission token (e.g., "data:write").
type Checker interface {
	HasPermission(subject string, permission string) bool
}

// Store extends Checker with subject existence. Checkers backed by an actual
// identity store implement it so callers can reject unknown subjects even
// when no specific permission is required.
type Store interface {
	Checker
	Known(subject string) bool
}

// CheckerFunc is an adapter to use ordinary functions as Checker.
type CheckerFunc func(subject string, permission string) bool

// HasPermission implements Checker.
func (f CheckerFunc) HasPermission(subject string, permission string) bool {
	return f(subject, permission)
}

// MapChecker is a read-only in-memory Checker backed by a map of
// subject → permission patterns. It is the test double for an external
// identity/permission store; concurrent reads are safe because the map is
// never mutated after construction.
type MapChecker struct {
	permissions map[string][]string
}

// NewMapChecker creates a Checker from a static map of subject → permission
// patterns.
//
// Example:
//
//	checker := authz.NewMapChecker(map[string][]string{
//	    "alice": {"data:read", "data:write"},
//	    "bob":   {"data:read"},
//	})
func NewMapChecker(permissions map[string][]string) *MapChecker {
	return &MapChecker{permissions: permissions}
}

// HasPermission implements Checker.
func (c *MapChecker) HasPermission(subject string, required string) bool {
	patterns, ok := c.permissions[subject]
	if !ok {
		return false
	}
	return MatchAny(patterns, required)
}

// Known reports whether the subject exists in the store at all. An unknown
// subject is distinguishable from one with an empty permission set.
func (c *MapChecker) Known(subject string) bool {
	_, ok := c.permissions[subject]
	return ok
}
