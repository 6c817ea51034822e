package authz

// Requirement is the permission set an endpoint declares it needs. The
// caller's permissions must be a superset: every token in the requirement
// must be granted.
type Requirement []string

// Require builds a Requirement from permission tokens.
func Require(permissions ...string) Requirement {
	return Requirement(permissions)
}

// AllowedBy reports whether the subject holds every required permission
// according to the checker. An empty Requirement is always allowed.
func (r Requirement) AllowedBy(checker Checker, subject string) bool {
	for _, perm := range r {
		if !checker.HasPermission(subject, perm) {
			return false
		}
	}
	return true
}
