// Package testutil provides shared fixtures for pipeline tests: a canonical
// permission table, request builders, and JSON helpers. It is imported by
// _test.go files only.
package testutil
