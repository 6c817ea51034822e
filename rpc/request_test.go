package rpc_test

import (
	"testing"

	"github.com/skillsenselab/rpckit/rpc"
)

func TestIdentityFromURLPath(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"plain path", "/rpc/echo/alice", "alice", false},
		{"trailing slash", "/rpc/echo/alice/", "alice", false},
		{"single segment", "/alice", "alice", false},
		{"no slash", "alice", "", true},
		{"empty url", "", "", true},
		{"root only", "/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rpc.IdentityFromURLPath(rpc.Request{URL: tt.url})
			if (err != nil) != tt.wantErr {
				t.Fatalf("IdentityFromURLPath(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IdentityFromURLPath(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestIdentityPreResolved(t *testing.T) {
	got, err := rpc.IdentityPreResolved(rpc.Request{Identity: "alice"})
	if err != nil || got != "alice" {
		t.Fatalf("IdentityPreResolved() = %q, %v; want %q, nil", got, err, "alice")
	}

	if _, err := rpc.IdentityPreResolved(rpc.Request{}); err == nil {
		t.Error("IdentityPreResolved() on empty identity should fail")
	}
}

func TestStaticIdentity(t *testing.T) {
	resolver := rpc.StaticIdentity("bob")
	got, err := resolver(rpc.Request{URL: "/ignored/alice"})
	if err != nil || got != "bob" {
		t.Fatalf("StaticIdentity resolver = %q, %v; want %q, nil", got, err, "bob")
	}

	if _, err := rpc.StaticIdentity("")(rpc.Request{}); err == nil {
		t.Error("StaticIdentity(\"\") resolver should fail")
	}
}
