// Package authz provides the authorization building blocks for the RPC
// pipeline: a permission store abstraction and the superset check endpoints
// declare their requirements against.
//
// The Checker interface is the injection seam for the identity/permission
// store. The in-memory MapChecker stands in for an external store — a
// database, Casbin, Oso, or any other authorization engine — and supports
// wildcard patterns (e.g., "data:*" matches "data:read").
//
// Usage:
//
//	checker := authz.NewMapChecker(map[string][]string{
//	    "alice": {"data:read", "data:write"},
//	    "bob":   {"data:read"},
//	})
//
//	req := authz.Require("data:read", "data:write")
//	allowed := req.AllowedBy(checker, "alice") // true
//	allowed = req.AllowedBy(checker, "bob")    // false
package authz
