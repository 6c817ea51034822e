package testutil

import (
	"encoding/json"
	"testing"

	"github.com/skillsenselab/rpckit/rpc"
)

// MustJSON encodes v to a JSON string, failing the test on error.
func MustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return string(b)
}

// NewRequest builds an rpc.Request whose URL ends in the given identity, so
// rpc.IdentityFromURLPath resolves it.
func NewRequest(t *testing.T, identity string, body any) rpc.Request {
	t.Helper()
	raw, ok := body.(string)
	if !ok {
		raw = MustJSON(t, body)
	}
	return rpc.Request{
		URL:  "/rpc/test/" + identity,
		Body: raw,
	}
}
