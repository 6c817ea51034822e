// Package util provides small generic helpers shared across rpckit.
package util
